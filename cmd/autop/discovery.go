package main

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileToFormat pairs an input file with its output path.
type FileToFormat struct {
	InputPath  string
	OutputPath string
}

// planOutputs maps every input to its output path. Inputs that would be
// overwritten by their own output are rejected before any work starts.
func planOutputs(inputs []string, outputDir, ext string) ([]FileToFormat, error) {
	files := make([]FileToFormat, 0, len(inputs))
	for _, in := range inputs {
		out := resolveOutputPath(in, outputDir, ext)
		if sameFile(in, out) {
			return nil, fmt.Errorf("%w: %s (use --output-dir)", ErrOutputIsInput, in)
		}
		files = append(files, FileToFormat{InputPath: in, OutputPath: out})
	}
	return files, nil
}

// resolveOutputPath swaps the input extension for ext and moves the file to
// outputDir when one is set.
func resolveOutputPath(inputPath, outputDir, ext string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+ext)
	}
	return filepath.Join(outputDir, base+ext)
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxWorkers)
	}
	return nil
}
