package main

import (
	"errors"
	"os"

	yearplanner "github.com/rohingosling/yearplanner"
	"github.com/rohingosling/yearplanner/internal/config"
)

// Exit codes for the year-planner CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful generation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, yearplanner.ErrBrowserConnect) ||
		errors.Is(err, yearplanner.ErrPageCreate) ||
		errors.Is(err, yearplanner.ErrPageLoad) ||
		errors.Is(err, yearplanner.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadContent) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, yearplanner.ErrInvalidYear) ||
		errors.Is(err, yearplanner.ErrInvalidGeometry) ||
		errors.Is(err, yearplanner.ErrNonPositiveExtent) ||
		errors.Is(err, yearplanner.ErrInvalidSection) ||
		errors.Is(err, ErrInvalidArgs) ||
		errors.Is(err, ErrNoYear) {
		return ExitUsage
	}

	return ExitGeneral
}
