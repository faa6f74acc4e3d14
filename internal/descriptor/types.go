package descriptor

import (
	"strings"

	"httperror-generator/internal/common"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind describes the underlying shape of the annotated type.
type Kind int

const (
	KindCaseSet Kind = iota // interface whose implementations are the cases
	KindStruct              // struct type, not a sum type
	KindOther               // any other underlying type
)

// SumType is the parsed form of one annotated sum type.
type SumType struct {
	// Name is the Go type name of the sum type.
	Name string
	// Kind is the underlying shape; only KindCaseSet can be generated.
	Kind Kind
	// TypeParams are passed through to the generated function unchanged.
	TypeParams []TypeParam
	// Cases are the alternatives in declaration order.
	Cases []Case
	// Function overrides the generated function name when not empty.
	Function string
}

// TypeParam is one type parameter of a generic sum type.
type TypeParam struct {
	Name       string // e.g., "T"
	Constraint string // source text, e.g., "any" or "~int | ~string"
}

// Case is one alternative of a sum type.
type Case struct {
	// Name is the Go type name of the case.
	Name string
	// Slots are the payload fields in declaration order.
	Slots []Slot
	// Status is the numeric status code of the response.
	Status uint16
	// Message is the message template; "{}" marks a placeholder.
	Message string
	// Pointer selects *Name in the type switch.
	Pointer bool
	// TypeArgs are appended to Name for generic cases.
	TypeArgs []string
}

// Slot is one payload field of a case.
type Slot struct {
	Field string // Go field name
	Type  string // source text of the field type
}

// IsCaseSet reports whether the sum type can be dispatched on.
func (s *SumType) IsCaseSet() bool {
	return s.Kind == KindCaseSet
}

// IsGeneric reports whether the sum type declares type parameters.
func (s *SumType) IsGeneric() bool {
	return !common.IsEmpty(s.TypeParams)
}

// TypeParamNames returns the type parameter names in declaration order.
func (s *SumType) TypeParamNames() []string {
	names := make([]string, 0, len(s.TypeParams))
	for _, tp := range s.TypeParams {
		names = append(names, tp.Name)
	}

	return names
}

// CaseNames returns the case names in declaration order.
func (s *SumType) CaseNames() []string {
	names := make([]string, 0, len(s.Cases))
	for i := range s.Cases {
		names = append(names, s.Cases[i].Name)
	}

	return names
}

// String returns the type expression of the case, e.g. "*Wrapped[T]".
func (c *Case) String() string {
	var b strings.Builder
	if c.Pointer {
		b.WriteByte('*')
	}

	b.WriteString(c.Name)

	if len(c.TypeArgs) > 0 {
		b.WriteByte('[')
		b.WriteString(strings.Join(c.TypeArgs, ", "))
		b.WriteByte(']')
	}

	return b.String()
}
