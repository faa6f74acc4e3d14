// Package binding decides which payload slots of a case are read.
package binding

import (
	"strconv"

	"httperror-generator/internal/common"
	"httperror-generator/internal/descriptor"
)

// namePrefix is prepended to the slot index to form a bound name.
const namePrefix = "slot"

// Binding is the decision for one payload slot.
type Binding struct {
	// Index is the position of the slot in the case.
	Index int
	// Name is the local variable holding the slot value; empty when discarded.
	Name string
	// Bound is true when the slot value is read.
	Bound bool
}

// IsDiscarded reports whether the slot is matched but not read.
func (b Binding) IsDiscarded() bool {
	return !b.Bound
}

// Name returns the stable bound name for the slot at index i.
func Name(i int) string {
	return namePrefix + strconv.Itoa(i)
}

// Bind returns one Binding per slot for a template with the given number of
// placeholders.
//
// Without placeholders every slot is discarded. Otherwise the slot whose
// index equals the placeholder count is discarded and every other slot is
// bound. Count mismatches are not rejected here.
func Bind(slots []descriptor.Slot, placeholders int) []Binding {
	bindings := make([]Binding, len(slots))

	for i := range slots {
		if placeholders == 0 || i == placeholders {
			bindings[i] = Binding{Index: i}
			continue
		}

		bindings[i] = Binding{Index: i, Name: Name(i), Bound: true}
	}

	return bindings
}

// BoundCount returns the number of bound slots.
func BoundCount(bindings []Binding) int {
	return common.Count(bindings, func(b Binding) bool { return b.Bound })
}
