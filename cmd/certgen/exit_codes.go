package main

import (
	"errors"
	"os"

	certgen "github.com/avezina/go-certgen"
	"github.com/avezina/go-certgen/internal/dateutil"
)

// Exit codes for the certgen CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess  = 0 // Every certificate rendered
	ExitFailures = 1 // Batch completed with failed items, or unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // Missing files, permission denied
)

// exitCodeFor returns the appropriate exit code for a pre-batch error.
// It uses errors.Is to check wrapped errors, so callers must wrap with
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, certgen.ErrFileNotFound) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrEmptyConfigName) ||
		errors.Is(err, ErrNoData) ||
		errors.Is(err, dateutil.ErrInvalidDate) ||
		errors.Is(err, certgen.ErrInvalidConfig) ||
		errors.Is(err, certgen.ErrDataValidation) {
		return ExitUsage
	}

	return ExitFailures
}
