package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDiagnostics_AddAndMerge(t *testing.T) {
	var d Diagnostics
	d.AddError(CodeMissingStatus, "missing status", "APIError", "NotFound")
	d.AddWarning(CodePlaceholderMismatch, "1 marker, 2 bound slots", "APIError", "Conflict")
	d.AddInfo("note", "generated", "APIError", "")

	assert.True(t, d.HasErrors())
	assert.Len(t, d.All(), 3)

	var other Diagnostics
	other.AddError(CodeNoCases, "no cases", "Empty", "")
	d.Merge(&other)
	d.Merge(nil)

	assert.Len(t, d.Errors, 2)
	assert.Equal(t, SeverityError, d.All()[0].Severity)
	assert.Equal(t, SeverityInfo, d.All()[3].Severity)
}

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	assert.NoError(t, d.Error())

	d.AddError(CodeMissingStatus, "missing status", "APIError", "NotFound")
	d.AddError(CodeMissingMessage, "missing message", "APIError", "Gone")

	err := d.Error()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Contains(t, err.Error(), "[APIError] NotFound: [missing_status] missing status")
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Code:        CodeUnknownDirective,
		Message:     `unknown directive "stauts"`,
		Pos:         "errors.go:12",
		Case:        "NotFound",
		Suggestions: []string{"status"},
	}

	assert.Equal(t, `errors.go:12: NotFound: [unknown_directive] unknown directive "stauts" (did you mean status?)`, d.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
