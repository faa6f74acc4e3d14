package gen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"httperror-generator/internal/analyze"
)

// TestExamples regenerates the example packages and compares the output
// with the checked-in files.
func TestExamples(t *testing.T) {
	tests := []struct {
		pkgPath string
		file    string
	}{
		{pkgPath: "httperror-generator/examples/apierror", file: "api_error_response.go"},
		{pkgPath: "httperror-generator/examples/lookup", file: "error_response.go"},
	}

	for _, tt := range tests {
		t.Run(filepath.Base(tt.pkgPath), func(t *testing.T) {
			results, err := analyze.NewAnalyzer().LoadPackages(tt.pkgPath)
			require.NoError(t, err)
			require.Len(t, results, 1)

			res := results[0]
			require.False(t, res.Diagnostics.HasErrors(), "%v", res.Diagnostics.Error())

			cfg := DefaultGeneratorConfig()
			cfg.PackageName = res.Name
			cfg.PackagePath = res.PkgPath

			files, diags, err := NewGenerator(cfg).Generate(res.SumTypes)
			require.NoError(t, err)
			assert.Empty(t, diags.All())
			require.Len(t, files, 1)
			assert.Equal(t, tt.file, files[0].Filename)

			checkedIn, err := os.ReadFile(filepath.Join(res.Dir, tt.file))
			require.NoError(t, err)

			assert.Equal(t, string(checkedIn), string(files[0].Content))
		})
	}
}
