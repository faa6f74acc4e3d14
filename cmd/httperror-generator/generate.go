package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"httperror-generator/internal/analyze"
	"httperror-generator/internal/config"
	"httperror-generator/internal/descriptor"
	"httperror-generator/internal/diagnostic"
	"httperror-generator/internal/gen"
)

// errDiagnostics is returned when error diagnostics were reported.
var errDiagnostics = errors.New("errors reported")

// dumper prints descriptors field by field.
var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true}

// unit is one package worth of sum types to generate.
type unit struct {
	name     string
	path     string
	dir      string
	response string
	strict   bool
	sums     []descriptor.SumType
	diags    *diagnostic.Diagnostics
}

func generate(opts *options, stdout, stderr io.Writer, log *zap.Logger) error {
	var (
		units []*unit
		err   error
	)

	if opts.config != "" {
		units, err = fromConfig(opts)
	} else {
		units, err = fromSources(opts)
	}

	if err != nil {
		return err
	}

	failed := false
	for _, u := range units {
		failed = report(log, u.diags) || failed
	}

	if failed {
		return errDiagnostics
	}

	var all []descriptor.SumType
	for _, u := range units {
		all = append(all, u.sums...)
	}

	if _, diags := gen.Select(all, opts.types); report(log, diags) {
		return errDiagnostics
	}

	if opts.export != "" && len(units) != 1 {
		return fmt.Errorf("-export needs exactly one package, got %d", len(units))
	}

	for _, u := range units {
		u.sums = keep(u.sums, opts.types)
		if len(u.sums) == 0 {
			log.Debug("no sum types", zap.String("package", u.path))
			continue
		}

		if err := generateUnit(opts, u, stdout, stderr, log); err != nil {
			return err
		}
	}

	return nil
}

func generateUnit(opts *options, u *unit, stdout, stderr io.Writer, log *zap.Logger) error {
	if opts.dump {
		dumper.Fdump(stderr, u.sums)
	}

	if opts.export != "" {
		if err := config.WriteFile(config.FromDescriptors(u.name, u.sums), opts.export); err != nil {
			return err
		}

		log.Info("exported declarations", zap.String("file", opts.export))
	}

	outDir := u.dir
	if opts.output != "" {
		outDir = opts.output
	}

	g := gen.NewGenerator(gen.GeneratorConfig{
		PackageName:     u.name,
		PackagePath:     u.path,
		ResponsePackage: u.response,
		OutputDir:       outDir,
		Strict:          u.strict,
		Logger:          log,
	})

	files, diags, err := g.Generate(u.sums)
	if diags != nil && report(log, diags) {
		return errDiagnostics
	}

	if err != nil {
		return err
	}

	if opts.stdout {
		return gen.PrintFiles(stdout, files)
	}

	if err := gen.WriteFiles(files, outDir); err != nil {
		return err
	}

	for _, f := range files {
		log.Info("generated", zap.String("file", filepath.Join(outDir, f.Filename)), zap.String("sum_type", f.SumType))
	}

	return nil
}

// fromSources loads sum types from Go packages.
func fromSources(opts *options) ([]*unit, error) {
	results, err := analyze.NewAnalyzer().LoadPackages(opts.patterns...)
	if err != nil {
		return nil, err
	}

	units := make([]*unit, 0, len(results))
	for _, res := range results {
		u := &unit{
			name:     res.Name,
			path:     res.PkgPath,
			dir:      res.Dir,
			response: opts.response,
			strict:   opts.strict,
			sums:     res.SumTypes,
			diags:    res.Diagnostics,
		}

		if opts.pkg != "" && len(results) == 1 {
			u.name = opts.pkg
		}

		units = append(units, u)
	}

	return units, nil
}

// fromConfig loads sum types from a YAML declaration file. Flags override
// the options of the file.
func fromConfig(opts *options) ([]*unit, error) {
	f, err := config.LoadFile(opts.config)
	if err != nil {
		return nil, err
	}

	if opts.pkg != "" {
		f.Package = opts.pkg
	}

	u := &unit{
		name:     f.Package,
		path:     f.ImportPath,
		dir:      f.Output,
		response: f.ResponsePackage,
		strict:   f.Strict || opts.strict,
		sums:     f.Descriptors(),
		diags:    config.Validate(f),
	}

	if u.dir == "" {
		u.dir = filepath.Dir(opts.config)
	}

	if opts.response != "" {
		u.response = opts.response
	}

	return []*unit{u}, nil
}

// report logs every diagnostic and reports whether any is an error.
func report(log *zap.Logger, diags *diagnostic.Diagnostics) bool {
	for _, d := range diags.All() {
		fields := []zap.Field{zap.String("code", d.Code)}

		switch d.Severity {
		case diagnostic.SeverityError:
			log.Error(d.String(), fields...)
		case diagnostic.SeverityWarning:
			log.Warn(d.String(), fields...)
		default:
			log.Info(d.String(), fields...)
		}
	}

	return diags.HasErrors()
}

// keep returns the sum types named in names; all of them when names is empty.
func keep(sums []descriptor.SumType, names []string) []descriptor.SumType {
	if len(names) == 0 {
		return sums
	}

	return slices.DeleteFunc(slices.Clone(sums), func(st descriptor.SumType) bool {
		return !slices.Contains(names, st.Name)
	})
}
