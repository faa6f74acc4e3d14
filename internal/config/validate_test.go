package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"httperror-generator/internal/diagnostic"
)

func template(s string) *string {
	return &s
}

func codes(res *diagnostic.Diagnostics) []string {
	var out []string
	for _, d := range res.Errors {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	require.True(t, res.HasErrors())
	assert.Equal(t, "file_is_nil", res.Errors[0].Code)
}

func TestValidate_Problems(t *testing.T) {
	tests := []struct {
		name string
		file File
		want []string
	}{
		{
			name: "bad package",
			file: File{Version: "1", Package: "api-error"},
			want: []string{diagnostic.CodeMissingName},
		},
		{
			name: "unsupported version",
			file: File{Version: "2", Package: "p"},
			want: []string{"unsupported_version"},
		},
		{
			name: "duplicate sum type",
			file: File{Version: "1", Package: "p", SumTypes: []SumType{
				{Name: "E", Kind: KindInterface, Cases: []Case{{Name: "A", Status: 400, Message: template("a")}}},
				{Name: "E", Kind: KindInterface, Cases: []Case{{Name: "A", Status: 400, Message: template("a")}}},
			}},
			want: []string{diagnostic.CodeDuplicateSumType},
		},
		{
			name: "no cases",
			file: File{Version: "1", Package: "p", SumTypes: []SumType{{Name: "E", Kind: KindInterface}}},
			want: []string{diagnostic.CodeNoCases},
		},
		{
			name: "case problems",
			file: File{Version: "1", Package: "p", SumTypes: []SumType{{Name: "E", Kind: KindInterface, Cases: []Case{
				{Name: "A", Message: template("a")},
				{Name: "A", Status: 400, Message: template("a")},
				{Name: "B", Status: 400},
				{Name: "C", Status: 400, Message: template("c"), Slots: []Slot{{Field: "1x", Type: "int"}}},
				{Status: 400, Message: template("anon")},
			}}}},
			want: []string{
				diagnostic.CodeMissingStatus,
				diagnostic.CodeDuplicateCase,
				diagnostic.CodeMissingMessage,
				diagnostic.CodeMissingName,
				diagnostic.CodeMissingName,
			},
		},
		{
			name: "unknown kind",
			file: File{Version: "1", Package: "p", SumTypes: []SumType{
				{Name: "E", Kind: "interfce", Cases: []Case{{Name: "A", Status: 400, Message: template("a")}}},
			}},
			want: []string{diagnostic.CodeNotCaseSet},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codes(Validate(&tt.file)))
		})
	}
}

func TestValidate_UnknownKindSuggestion(t *testing.T) {
	f := File{Version: "1", Package: "p", SumTypes: []SumType{
		{Name: "E", Kind: "interfce", Cases: []Case{{Name: "A", Status: 400, Message: template("a")}}},
	}}

	res := Validate(&f)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, []string{"interface"}, res.Errors[0].Suggestions)
}

func TestValidate_StructKindIsAccepted(t *testing.T) {
	f := File{Version: "1", Package: "p", SumTypes: []SumType{
		{Name: "E", Kind: KindStruct, Cases: []Case{{Name: "A", Status: 400, Message: template("a")}}},
	}}

	assert.False(t, Validate(&f).HasErrors())
}

func TestValidate_EmptyMessageIsATemplate(t *testing.T) {
	f := File{Version: "1", Package: "p", SumTypes: []SumType{
		{Name: "E", Kind: KindInterface, Cases: []Case{{Name: "A", Status: 400, Message: template("")}}},
	}}

	assert.False(t, Validate(&f).HasErrors())
	assert.Equal(t, "", f.Descriptors()[0].Cases[0].Message)
}
