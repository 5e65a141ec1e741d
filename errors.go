package siteprint

import "errors"

// Sentinel errors for export operations. Each maps to one pipeline
// stage so failures can be attributed to connect, navigate, print, or
// write.
var (
	// Connect stage.
	ErrServerUnreachable = errors.New("source server unreachable")

	// Navigate stage.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Print stage.
	ErrPDFGeneration = errors.New("PDF generation failed")

	// Write stage.
	ErrWritePDF = errors.New("failed to write PDF file")

	// Job validation errors.
	ErrEmptySourceURL  = errors.New("source URL cannot be empty")
	ErrInvalidURL      = errors.New("source URL must be HTTP or HTTPS")
	ErrEmptyOutputPath = errors.New("output path cannot be empty")
	ErrInvalidMargin   = errors.New("invalid margin")
)
