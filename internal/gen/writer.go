package gen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist.
func WriteFiles(files []GeneratedFile, outputDir string) error {
	err := os.MkdirAll(outputDir, dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		err := os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}

// PrintFiles writes all generated files to w, each preceded by a line
// naming the file.
func PrintFiles(w io.Writer, files []GeneratedFile) error {
	for _, file := range files {
		if _, err := fmt.Fprintf(w, "// >>> %s\n%s", file.Filename, file.Content); err != nil {
			return fmt.Errorf("printing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
