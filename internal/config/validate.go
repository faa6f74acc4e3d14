package config

import (
	"fmt"
	"go/token"

	"httperror-generator/internal/diagnostic"
	"httperror-generator/internal/match"
)

// Validate checks a declaration file for structural problems. Status codes
// and message contents are checked later, during generation.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "declaration file is nil", "", "")
		return res
	}

	for _, d := range f.keyDiags {
		res.Add(d)
	}

	if f.Version != CurrentVersion {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported version %q", f.Version), "", "")
	}

	if f.Package == "" {
		res.AddError(diagnostic.CodeMissingName, "package name is required", "", "")
	} else if !token.IsIdentifier(f.Package) {
		res.AddError(diagnostic.CodeMissingName, fmt.Sprintf("package %q is not an identifier", f.Package), "", "")
	}

	seen := map[string]struct{}{}

	for i := range f.SumTypes {
		st := &f.SumTypes[i]
		if st.Name == "" {
			res.AddError(diagnostic.CodeMissingName, fmt.Sprintf("sumtypes[%d] has no name", i), "", "")
			continue
		}

		if _, ok := seen[st.Name]; ok {
			res.AddError(diagnostic.CodeDuplicateSumType, fmt.Sprintf("duplicate sum type %q", st.Name), st.Name, "")
			continue
		}

		seen[st.Name] = struct{}{}
		validateSumType(st, res)
	}

	return res
}

func validateSumType(st *SumType, res *diagnostic.Diagnostics) {
	known := []string{KindInterface, KindStruct, KindOther}
	if _, ok := kindOf(st.Kind); !ok {
		res.Add(diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityError,
			Code:        diagnostic.CodeNotCaseSet,
			Message:     fmt.Sprintf("unknown kind %q", st.Kind),
			SumType:     st.Name,
			Suggestions: match.Suggest(st.Kind, known),
		})
	}

	for i, tp := range st.TypeParams {
		if tp.Name == "" || tp.Constraint == "" {
			res.AddError(diagnostic.CodeMissingName, fmt.Sprintf("type_params[%d] needs a name and a constraint", i), st.Name, "")
		}
	}

	if len(st.Cases) == 0 {
		res.AddError(diagnostic.CodeNoCases, "sum type has no cases", st.Name, "")
		return
	}

	cases := map[string]struct{}{}

	for i := range st.Cases {
		c := &st.Cases[i]
		if c.Name == "" {
			res.AddError(diagnostic.CodeMissingName, fmt.Sprintf("cases[%d] has no name", i), st.Name, "")
			continue
		}

		if _, ok := cases[c.Name]; ok {
			res.AddError(diagnostic.CodeDuplicateCase, fmt.Sprintf("duplicate case %q", c.Name), st.Name, c.Name)
			continue
		}

		cases[c.Name] = struct{}{}

		if c.Status == 0 {
			res.AddError(diagnostic.CodeMissingStatus, "status is required", st.Name, c.Name)
		}

		if c.Message == nil {
			res.AddError(diagnostic.CodeMissingMessage, "message is required", st.Name, c.Name)
		}

		for j, s := range c.Slots {
			if !token.IsIdentifier(s.Field) || s.Type == "" {
				res.AddError(diagnostic.CodeMissingName, fmt.Sprintf("slots[%d] needs a field name and a type", j), st.Name, c.Name)
			}
		}
	}
}
