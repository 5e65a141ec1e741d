package main

import (
	"context"
	"errors"
	"os"

	siteprint "github.com/siteprint/siteprint"
	"github.com/siteprint/siteprint/internal/config"
)

// Exit codes for siteprint CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful export
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
	ExitConnect = 5 // Local server unreachable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Server connectivity errors (exit 5)
	if errors.Is(err, siteprint.ErrServerUnreachable) {
		return ExitConnect
	}

	// Browser errors (exit 4)
	if errors.Is(err, siteprint.ErrBrowserConnect) ||
		errors.Is(err, siteprint.ErrPageCreate) ||
		errors.Is(err, siteprint.ErrPageLoad) ||
		errors.Is(err, siteprint.ErrPDFGeneration) ||
		errors.Is(err, context.DeadlineExceeded) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, siteprint.ErrWritePDF) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, siteprint.ErrEmptySourceURL) ||
		errors.Is(err, siteprint.ErrInvalidURL) ||
		errors.Is(err, siteprint.ErrEmptyOutputPath) ||
		errors.Is(err, siteprint.ErrInvalidMargin) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
