package main

import (
	"errors"

	"github.com/alnah/go-pdf2md/internal/config"
)

// Exit codes for the pdf2md CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
// Pipeline failures (missing input, missing document structure) all map to 1;
// only malformed invocations map to 2.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // Any conversion error
	ExitUsage   = 2 // Invalid flags or arguments
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidPattern) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyMarker) {
		return ExitUsage
	}

	return ExitGeneral
}
