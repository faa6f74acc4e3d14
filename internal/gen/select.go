package gen

import (
	"fmt"

	"httperror-generator/internal/descriptor"
	"httperror-generator/internal/diagnostic"
	"httperror-generator/internal/match"
)

// Select returns the sum types named in names, in the order of sums.
// Empty names selects every sum type. Unknown names are reported as errors
// with suggestions.
func Select(sums []descriptor.SumType, names []string) ([]descriptor.SumType, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}
	if len(names) == 0 {
		return sums, diags
	}

	known := make([]string, len(sums))
	for i, st := range sums {
		known[i] = st.Name
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var out []descriptor.SumType

	for _, st := range sums {
		if wanted[st.Name] {
			out = append(out, st)
			delete(wanted, st.Name)
		}
	}

	for _, name := range names {
		if !wanted[name] {
			continue
		}

		diags.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityError,
			Code:        diagnostic.CodeSumTypeNotFound,
			Message:     fmt.Sprintf("no annotated sum type named %q", name),
			SumType:     name,
			Suggestions: match.Suggest(name, known),
		})
		delete(wanted, name)
	}

	return out, diags
}
