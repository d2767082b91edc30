package main

import (
	"errors"
	"os"

	autop "github.com/alnah/go-autop"
	"github.com/alnah/go-autop/internal/config"
	"github.com/alnah/go-autop/internal/hints"
)

// Exit codes for the autop CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error, interrupts included
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if isCanceled(err) {
		return ExitGeneral
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigTooLarge) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrTooManyShortcodes) ||
		errors.Is(err, config.ErrInvalidShortcode) ||
		errors.Is(err, config.ErrInvalidExtension) ||
		errors.Is(err, autop.ErrInvalidShortcode) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrOutputIsInput) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable suffix for err, or "".
func hintFor(err error) string {
	var notFound *config.NotFoundError
	if errors.As(err, &notFound) {
		return hints.ForConfigNotFound(notFound.Tried)
	}

	var scErr *config.ShortcodeError
	if errors.As(err, &scErr) {
		return hints.ForInvalidShortcode(scErr.Name)
	}

	switch {
	case errors.Is(err, ErrInvalidWorkerCount):
		return hints.ForWorkers(MaxWorkers)
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
