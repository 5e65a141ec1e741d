package siteprint

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"
)

// Default job constants. These mirror the hard-coded values the export
// was originally run with; the CLI and config file can override all of
// them.
const (
	DefaultSourceURL  = "http://localhost:1313/resume/"
	DefaultOutputPath = "static/resume.pdf"
)

// Margin bounds in CSS pixels.
const (
	MinMarginPx = 0
	MaxMarginPx = 192 // 2 inches at 96 dpi
)

// defaultTimeout bounds navigation and printing when no timeout is
// specified. Chrome's own navigation timeout is library-dependent, so
// an explicit value is used instead.
const defaultTimeout = 30 * time.Second

// Margins holds print margins in CSS pixels. They are converted to
// inches at 96 dpi for Chrome's print call.
type Margins struct {
	Top    float64
	Left   float64
	Right  float64
	Bottom float64
}

// Validate checks that all margins are within bounds.
func (m Margins) Validate() error {
	for _, v := range []struct {
		side  string
		value float64
	}{
		{"top", m.Top},
		{"left", m.Left},
		{"right", m.Right},
		{"bottom", m.Bottom},
	} {
		if v.value < MinMarginPx || v.value > MaxMarginPx {
			return fmt.Errorf("%w: %s %.1fpx (must be between %d and %d)",
				ErrInvalidMargin, v.side, v.value, MinMarginPx, MaxMarginPx)
		}
	}
	return nil
}

// PrintOptions configures the print-to-PDF render.
type PrintOptions struct {
	// PreferCSSPageSize lets the page's @page CSS rule govern output
	// dimensions instead of a default paper size.
	PreferCSSPageSize bool

	// PrintBackground includes background colors and images defined by
	// the page's stylesheet.
	PrintBackground bool

	// Margin overrides the default print margins, in CSS pixels.
	Margin Margins
}

// DefaultPrintOptions returns the print options used for the résumé
// page: CSS-driven page size, backgrounds on, no top margin, 10px on
// the sides.
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		PreferCSSPageSize: true,
		PrintBackground:   true,
		Margin:            Margins{Top: 0, Left: 10, Right: 10, Bottom: 0},
	}
}

// Job describes a single export: which page to render and where to
// write the PDF. A Job is built once from configuration, consumed by
// Export, and discarded.
type Job struct {
	SourceURL  string
	OutputPath string
	Options    PrintOptions
}

// DefaultJob returns the export job with all default constants.
func DefaultJob() Job {
	return Job{
		SourceURL:  DefaultSourceURL,
		OutputPath: DefaultOutputPath,
		Options:    DefaultPrintOptions(),
	}
}

// Validate checks that the job is runnable: a well-formed HTTP(S)
// source URL, a .pdf output path, and margins within bounds.
func (j Job) Validate() error {
	if j.SourceURL == "" {
		return ErrEmptySourceURL
	}
	parsed, err := url.ParseRequestURI(j.SourceURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("%w: %q", ErrInvalidURL, j.SourceURL)
	}
	if j.OutputPath == "" {
		return ErrEmptyOutputPath
	}
	if !strings.EqualFold(filepath.Ext(j.OutputPath), ".pdf") {
		return fmt.Errorf("%w: %q must end with .pdf", ErrEmptyOutputPath, j.OutputPath)
	}
	return j.Options.Margin.Validate()
}

// Option configures an Exporter.
type Option func(*Exporter)

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	timeout    time.Duration
	waitFor    time.Duration
	browserBin string
	noSandbox  bool
}

// WithTimeout sets the navigation-and-print timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("siteprint: WithTimeout duration must be positive")
	}
	return func(e *Exporter) {
		e.cfg.timeout = d
	}
}

// WithWaitFor makes Export poll the source URL until it becomes
// reachable, for at most d. Zero means a single probe with no polling.
func WithWaitFor(d time.Duration) Option {
	return func(e *Exporter) {
		e.cfg.waitFor = d
	}
}

// WithBrowserBin points the exporter at a preinstalled Chrome/Chromium
// binary instead of the rod-managed download.
func WithBrowserBin(path string) Option {
	return func(e *Exporter) {
		e.cfg.browserBin = path
	}
}

// WithNoSandbox disables the Chrome sandbox. Required inside most
// containers and CI runners.
func WithNoSandbox(disable bool) Option {
	return func(e *Exporter) {
		e.cfg.noSandbox = disable
	}
}
