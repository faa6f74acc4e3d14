// Package placeholder scans message templates for positional markers.
package placeholder

import "strings"

// Marker is the positional placeholder in a message template.
const Marker = "{}"

// Count returns the number of non-overlapping occurrences of Marker in s.
func Count(s string) int {
	return strings.Count(s, Marker)
}

// Split returns the literal text around each marker, left to right.
// The result always has Count(s)+1 elements.
func Split(s string) []string {
	return strings.Split(s, Marker)
}

// Scanner consumes the markers of a template left to right.
//
// Each call to Next yields the literal text preceding the next marker and
// reports whether a marker was consumed. Substituted values are never
// rescanned, so a value containing Marker does not shift later slots.
type Scanner struct {
	segments []string
	pos      int
}

// NewScanner returns a Scanner positioned before the first marker of s.
func NewScanner(s string) *Scanner {
	return &Scanner{segments: Split(s)}
}

// Remaining returns the number of markers not yet consumed.
func (sc *Scanner) Remaining() int {
	return len(sc.segments) - 1 - sc.pos
}

// Next consumes one marker and returns the literal text preceding it.
// It returns false when no marker remains.
func (sc *Scanner) Next() (string, bool) {
	if sc.Remaining() == 0 {
		return "", false
	}

	lit := sc.segments[sc.pos]
	sc.pos++

	return lit, true
}

// Rest returns the text after the last consumed marker, with every
// unconsumed marker kept verbatim.
func (sc *Scanner) Rest() string {
	return strings.Join(sc.segments[sc.pos:], Marker)
}
