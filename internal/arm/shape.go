package arm

import (
	"httperror-generator/internal/binding"
	"httperror-generator/internal/descriptor"
)

// Shape is the closed set of clause layouts.
type Shape interface {
	// Accept calls the Visitor method matching the shape.
	Accept(v Visitor) error

	isShape()
}

// Visitor handles every Shape.
type Visitor interface {
	VisitZeroSlot(s ZeroSlot) error
	VisitStaticMessage(s StaticMessage) error
	VisitSubstituted(s Substituted) error
}

// ZeroSlot is a case without payload slots. The message is used verbatim,
// markers included.
type ZeroSlot struct {
	Case descriptor.Case
}

// StaticMessage is a case with payload slots and a message without
// placeholders. Slots are matched but never read.
type StaticMessage struct {
	Case descriptor.Case
}

// Substituted is a case whose bound slots are substituted into the message.
type Substituted struct {
	Case         descriptor.Case
	Bindings     []binding.Binding
	Placeholders int
}

func (ZeroSlot) isShape()      {}
func (StaticMessage) isShape() {}
func (Substituted) isShape()   {}

// Accept implements Shape.
func (s ZeroSlot) Accept(v Visitor) error { return v.VisitZeroSlot(s) }

// Accept implements Shape.
func (s StaticMessage) Accept(v Visitor) error { return v.VisitStaticMessage(s) }

// Accept implements Shape.
func (s Substituted) Accept(v Visitor) error { return v.VisitSubstituted(s) }

// Classify selects the Shape of a case.
func Classify(c descriptor.Case, bindings []binding.Binding, placeholders int) Shape {
	switch {
	case len(c.Slots) == 0:
		return ZeroSlot{Case: c}
	case placeholders == 0:
		return StaticMessage{Case: c}
	default:
		return Substituted{Case: c, Bindings: bindings, Placeholders: placeholders}
	}
}
