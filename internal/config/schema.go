package config

import (
	"httperror-generator/internal/diagnostic"
)

// CurrentVersion is the declaration file format version.
const CurrentVersion = "1"

// Kind names accepted by the "kind" key.
const (
	KindInterface = "interface"
	KindStruct    = "struct"
	KindOther     = "other"
)

// File is a parsed declaration file.
type File struct {
	Version         string    `yaml:"version"`
	Package         string    `yaml:"package"`
	ImportPath      string    `yaml:"import_path,omitempty"`
	ResponsePackage string    `yaml:"response_package,omitempty"`
	Output          string    `yaml:"output,omitempty"`
	Strict          bool      `yaml:"strict,omitempty"`
	SumTypes        []SumType `yaml:"sumtypes"`

	// keyDiags holds unknown key reports collected while parsing.
	keyDiags []diagnostic.Diagnostic
}

// SumType declares one sum type.
type SumType struct {
	Name       string      `yaml:"name"`
	Function   string      `yaml:"function,omitempty"`
	Kind       string      `yaml:"kind,omitempty"`
	TypeParams []TypeParam `yaml:"type_params,omitempty"`
	Cases      []Case      `yaml:"cases"`
}

// TypeParam declares one type parameter.
type TypeParam struct {
	Name       string `yaml:"name"`
	Constraint string `yaml:"constraint"`
}

// Case declares one case of a sum type.
type Case struct {
	Name     string   `yaml:"name"`
	Status   uint16   `yaml:"status"`
	Message  *string  `yaml:"message"`
	Pointer  bool     `yaml:"pointer,omitempty"`
	TypeArgs []string `yaml:"type_args,omitempty"`
	Slots    []Slot   `yaml:"slots,omitempty"`
}

// Template returns the message template, or "" when none is declared.
func (c Case) Template() string {
	if c.Message == nil {
		return ""
	}

	return *c.Message
}

// Slot declares one payload field of a case.
type Slot struct {
	Field string `yaml:"field"`
	Type  string `yaml:"type"`
}

// Known keys per mapping level, used for unknown key reports.
var (
	fileKeys      = []string{"version", "package", "import_path", "response_package", "output", "strict", "sumtypes"}
	sumTypeKeys   = []string{"name", "function", "kind", "type_params", "cases"}
	typeParamKeys = []string{"name", "constraint"}
	caseKeys      = []string{"name", "status", "message", "pointer", "type_args", "slots"}
	slotKeys      = []string{"field", "type"}
)
