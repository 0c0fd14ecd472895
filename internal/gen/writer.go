package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrOutputNotEmpty is returned by WriteFiles when the output directory
// already has entries and force is not set.
var ErrOutputNotEmpty = errors.New("output directory is not empty")

// WriteFiles writes all generated files to the output directory.
// It creates the directory if it doesn't exist. An existing, non-empty
// directory is only written to when force is set.
func WriteFiles(files []GeneratedFile, outputDir string, force bool) error {
	entries, err := os.ReadDir(outputDir)

	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return fmt.Errorf("reading output directory: %w", err)
	case len(entries) > 0 && !force:
		return fmt.Errorf("%s: %w", outputDir, ErrOutputNotEmpty)
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	for _, file := range files {
		outputPath := filepath.Join(outputDir, file.Filename)

		if err := os.WriteFile(outputPath, file.Content, filePerm); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Filename, err)
		}
	}

	return nil
}
