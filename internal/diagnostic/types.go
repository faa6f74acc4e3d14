package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"httperror-generator/internal/common"
)

// Diagnostic codes.
const (
	CodeUnknownDirective    = "unknown_directive"
	CodeInvalidDirective    = "invalid_directive"
	CodeMissingStatus       = "missing_status"
	CodeMissingMessage      = "missing_message"
	CodeDuplicateCase       = "duplicate_case"
	CodeDuplicateSumType    = "duplicate_sumtype"
	CodeNoCases             = "no_cases"
	CodeNotCaseSet          = "not_case_set"
	CodeUnsealed            = "unsealed_sumtype"
	CodeMissingName         = "missing_name"
	CodeUnknownKey          = "unknown_key"
	CodePlaceholderMismatch = "placeholder_mismatch"
	CodeSumTypeNotFound     = "sumtype_not_found"
)

// Diagnostics holds all diagnostic information from one run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// SumType identifies which sum type this relates to (if any).
	SumType string
	// Case identifies which case this relates to (if any).
	Case string
	// Pos is the source position, "file:line" (if known).
	Pos string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Add appends d to the list matching its severity.
func (d *Diagnostics) Add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, sumType, caseName string) {
	d.Add(Diagnostic{Severity: SeverityError, Code: code, Message: message, SumType: sumType, Case: caseName})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, sumType, caseName string) {
	d.Add(Diagnostic{Severity: SeverityWarning, Code: code, Message: message, SumType: sumType, Case: caseName})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, sumType, caseName string) {
	d.Add(Diagnostic{Severity: SeverityInfo, Code: code, Message: message, SumType: sumType, Case: caseName})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// All returns errors, warnings and infos in that order.
func (d *Diagnostics) All() []Diagnostic {
	all := make([]Diagnostic, 0, len(d.Errors)+len(d.Warnings)+len(d.Infos))
	all = append(all, d.Errors...)
	all = append(all, d.Warnings...)

	return append(all, d.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	var err error
	for _, e := range d.Errors {
		err = multierr.Append(err, errors.New(e.String()))
	}

	return err
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Pos != "" {
		prefix = append(prefix, d.Pos+":")
	}

	if d.SumType != "" {
		prefix = append(prefix, "["+d.SumType+"]")
	}

	if d.Case != "" {
		prefix = append(prefix, d.Case)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
