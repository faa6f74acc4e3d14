package analyze

import (
	"fmt"
	"path/filepath"

	"go.uber.org/multierr"
	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Analyzer loads Go packages and extracts annotated sum types.
type Analyzer struct {
	// Dir is the directory patterns are resolved in. Empty means the
	// current directory.
	Dir string
	// BuildFlags are passed to the build system, e.g. "-tags=integration".
	BuildFlags []string
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// LoadPackages loads the specified packages and extracts their sum types.
// Patterns are standard Go package patterns (e.g., ".", "httperror-generator/examples/apierror").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*Result, error) {
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	cfg := &packages.Config{
		Mode:       LoadMode,
		Dir:        a.Dir,
		BuildFlags: a.BuildFlags,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = multierr.Append(errs, e)
		}
	}

	if errs != nil {
		return nil, fmt.Errorf("package errors: %w", errs)
	}

	results := make([]*Result, 0, len(pkgs))
	for _, pkg := range pkgs {
		res := analyzePackage(pkg.PkgPath, pkg.Fset, pkg.Syntax, pkg.Types, pkg.TypesInfo)
		if len(pkg.GoFiles) > 0 {
			res.Dir = filepath.Dir(pkg.GoFiles[0])
		}

		results = append(results, res)
	}

	return results, nil
}
