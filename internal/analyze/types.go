package analyze

import (
	"httperror-generator/internal/descriptor"
	"httperror-generator/internal/diagnostic"
)

// Result holds the sum types found in one package.
type Result struct {
	PkgPath string // e.g., "httperror-generator/examples/apierror"
	Name    string // package name
	Dir     string // directory of the package sources

	// SumTypes are the annotated sum types in source order.
	SumTypes []descriptor.SumType
	// Diagnostics holds the problems found in directives.
	Diagnostics *diagnostic.Diagnostics
}

// Lookup returns the sum type with the given name.
func (r *Result) Lookup(name string) (descriptor.SumType, bool) {
	for _, st := range r.SumTypes {
		if st.Name == name {
			return st, true
		}
	}

	return descriptor.SumType{}, false
}

// Names returns the names of the sum types in source order.
func (r *Result) Names() []string {
	names := make([]string, len(r.SumTypes))
	for i, st := range r.SumTypes {
		names[i] = st.Name
	}

	return names
}
