package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
	"go.uber.org/zap"

	"httperror-generator/internal/arm"
	"httperror-generator/internal/binding"
	"httperror-generator/internal/common"
	"httperror-generator/internal/descriptor"
	"httperror-generator/internal/diagnostic"
	"httperror-generator/internal/emit"
	"httperror-generator/internal/placeholder"
)

// Header is the first line of every generated file.
const Header = "Code generated by httperror-generator. DO NOT EDIT."

// FileSuffix is appended to the snake case sum type name.
const FileSuffix = "_response.go"

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the package the files belong to.
	PackageName string
	// PackagePath is the import path of that package. Optional.
	PackagePath string
	// ResponsePackage is the import path of the Response type.
	ResponsePackage string
	// OutputDir receives debug sidecar files when formatting fails.
	OutputDir string
	// Strict turns placeholder mismatches into errors.
	Strict bool
	// Logger receives per arm debug logs and mismatch warnings.
	Logger *zap.Logger
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		ResponsePackage: arm.DefaultResponsePackage,
		Logger:          zap.NewNop(),
	}
}

// Generator generates converter files from sum type descriptors.
// It is not safe for concurrent use.
type Generator struct {
	config GeneratorConfig
	log    *zap.Logger
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	if config.ResponsePackage == "" {
		config.ResponsePackage = arm.DefaultResponsePackage
	}

	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Generator{config: config, log: log}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "api_error_response.go").
	Filename string
	// SumType is the sum type the file converts.
	SumType string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per sum type, in order.
//
// Placeholder mismatches are reported as diagnostics, as errors in strict
// mode. The returned error is set for problems that abort the run: a sum
// type that is not an interface, a sum type without cases, a malformed
// status code or unformattable output.
func (g *Generator) Generate(sums []descriptor.SumType) ([]GeneratedFile, *diagnostic.Diagnostics, error) {
	if g.config.PackageName == "" {
		return nil, nil, fmt.Errorf("package name is required")
	}

	diags := &diagnostic.Diagnostics{}
	files := make([]GeneratedFile, 0, len(sums))

	for _, sum := range sums {
		file, err := g.generateSumType(sum, diags)
		if err != nil {
			return nil, diags, fmt.Errorf("generating %s: %w", sum.Name, err)
		}

		files = append(files, *file)
	}

	return files, diags, nil
}

// FileName returns the name of the file generated for sum.
func FileName(sum descriptor.SumType) string {
	return strcase.ToSnake(sum.Name) + FileSuffix
}

func (g *Generator) generateSumType(sum descriptor.SumType, diags *diagnostic.Diagnostics) (*GeneratedFile, error) {
	log := g.log.With(zap.String("sum_type", sum.Name))
	builder := arm.Builder{ResponsePackage: g.config.ResponsePackage}
	arms := make([]arm.Arm, 0, len(sum.Cases))

	for _, c := range sum.Cases {
		p := placeholder.Count(c.Message)

		a, err := builder.Build(c, binding.Bind(c.Slots, p), p)
		if err != nil {
			return nil, err
		}

		log.Debug("built arm",
			zap.String("case", c.String()),
			zap.String("shape", fmt.Sprintf("%T", a.Shape)),
			zap.Int("placeholders", p),
			zap.Int("bound", binding.BoundCount(a.Bindings)),
		)

		if a.Mismatch() {
			g.reportMismatch(log, sum, &a, diags)
		}

		arms = append(arms, a)
	}

	opts := emit.Options{ResponsePackage: g.config.ResponsePackage}

	fn, err := emit.Emit(sum, arms, opts)
	if err != nil {
		return nil, err
	}

	f := g.newFile()
	f.Comment(emit.Doc(sum, opts))
	f.Add(fn)

	filename := FileName(sum)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", filename, err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	log.Debug("generated file", zap.String("file", filename), zap.Int("cases", len(arms)))

	return &GeneratedFile{
		Filename: filename,
		SumType:  sum.Name,
		Content:  formatted,
	}, nil
}

// newFile returns an empty file of the configured package.
func (g *Generator) newFile() *jen.File {
	var f *jen.File
	if g.config.PackagePath != "" {
		f = jen.NewFilePathName(g.config.PackagePath, g.config.PackageName)
	} else {
		f = jen.NewFile(g.config.PackageName)
	}

	f.HeaderComment(Header)
	f.ImportNames(map[string]string{
		"fmt":                     "fmt",
		"net/http":                "http",
		"strconv":                 "strconv",
		g.config.ResponsePackage: common.PkgAlias(g.config.ResponsePackage),
	})
	// go/format runs afterwards, so the sidecar keeps the raw output.
	f.NoFormat = true

	return f
}

// reportMismatch records a case whose bound slots and markers did not pair up.
func (g *Generator) reportMismatch(log *zap.Logger, sum descriptor.SumType, a *arm.Arm, diags *diagnostic.Diagnostics) {
	unconsumed := make([]string, 0, len(a.Unconsumed))
	for _, i := range a.Unconsumed {
		unconsumed = append(unconsumed, a.Case.Slots[i].Field)
	}

	msg := fmt.Sprintf("%d bound slots for %d placeholders", binding.BoundCount(a.Bindings), a.Placeholders)
	if len(unconsumed) > 0 {
		msg += fmt.Sprintf("; slots %s are not substituted", strings.Join(unconsumed, ", "))
	}

	if a.LeftoverMarkers > 0 {
		msg += fmt.Sprintf("; %d placeholders stay literal", a.LeftoverMarkers)
	}

	log.Warn("placeholder mismatch",
		zap.String("case", a.Case.Name),
		zap.Strings("unconsumed", unconsumed),
		zap.Int("leftover_markers", a.LeftoverMarkers),
	)

	if g.config.Strict {
		diags.AddError(diagnostic.CodePlaceholderMismatch, msg, sum.Name, a.Case.Name)
		return
	}

	diags.AddWarning(diagnostic.CodePlaceholderMismatch, msg, sum.Name, a.Case.Name)
}
