package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"
	"unicode"
)

// Prefix starts every directive comment.
const Prefix = "//httperror:"

// Directive keys.
const (
	KeySumType  = "sumtype"
	KeyFunction = "function"
	KeyStatus   = "status"
	KeyMessage  = "message"
)

// Keys lists every known directive key.
var Keys = []string{KeySumType, KeyFunction, KeyStatus, KeyMessage}

// Directive is one //httperror: comment line.
type Directive struct {
	Key   string
	Value string
	Pos   token.Pos
}

// ParseDirectives returns the directives of the given comment groups in
// source order. Nil groups are skipped.
func ParseDirectives(groups ...*ast.CommentGroup) []Directive {
	var out []Directive

	for _, cg := range groups {
		if cg == nil {
			continue
		}

		for _, c := range cg.List {
			rest, ok := strings.CutPrefix(c.Text, Prefix)
			if !ok {
				continue
			}

			d := Directive{Key: strings.TrimSpace(rest), Pos: c.Slash}
			if i := strings.IndexFunc(d.Key, unicode.IsSpace); i >= 0 {
				d.Key, d.Value = d.Key[:i], strings.TrimSpace(d.Key[i:])
			}

			out = append(out, d)
		}
	}

	return out
}

// Status parses the value of a status directive.
func (d Directive) Status() (uint16, error) {
	code, err := strconv.ParseUint(d.Value, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid status %q: %w", d.Value, err)
	}

	return uint16(code), nil
}

// Message returns the value of a message directive. Quoted values are
// unquoted.
func (d Directive) Message() (string, error) {
	if !strings.HasPrefix(d.Value, `"`) {
		return d.Value, nil
	}

	s, err := strconv.Unquote(d.Value)
	if err != nil {
		return "", fmt.Errorf("invalid quoted message %s: %w", d.Value, err)
	}

	return s, nil
}

// directiveSet groups the directives attached to one type declaration.
type directiveSet []Directive

func (s directiveSet) lookup(key string) (Directive, bool) {
	for _, d := range s {
		if d.Key == key {
			return d, true
		}
	}

	return Directive{}, false
}

func (s directiveSet) has(key string) bool {
	_, ok := s.lookup(key)
	return ok
}
