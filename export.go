package siteprint

import (
	"context"
	"fmt"

	"github.com/siteprint/siteprint/internal/fileutil"
)

// Exporter runs the page-to-PDF pipeline. It owns one browser
// instance, connected lazily on first use and released by Close.
type Exporter struct {
	cfg      exporterConfig
	probe    probeFunc
	renderer pageRenderer
}

// New creates an Exporter with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Exporter {
	e := &Exporter{
		cfg: exporterConfig{timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.probe == nil {
		e.probe = probeHTTP
	}
	// Create renderer if not injected (e.g., by tests)
	if e.renderer == nil {
		e.renderer = newRodRenderer(e.cfg)
	}

	return e
}

// Export runs one job: probe, render, write. The stages run strictly
// in order and the first failure surfaces with its stage's sentinel
// error. The output file is only touched after a successful render,
// and is replaced atomically so a write failure never leaves a partial
// or truncated PDF behind.
func (e *Exporter) Export(ctx context.Context, job Job) error {
	if err := job.Validate(); err != nil {
		return err
	}

	// Connect stage: fail before any browser work when the server is
	// not up, so the output path is never created for a dead source.
	if err := e.awaitServer(ctx, job.SourceURL); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, e.cfg.timeout)
	defer cancel()

	pdfBuf, err := e.renderer.RenderURL(ctx, job.SourceURL, job.Options)
	if err != nil {
		return err
	}

	if err := fileutil.WriteFileAtomic(job.OutputPath, pdfBuf, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}

	return nil
}

// Close releases the browser. Safe to call when nothing was launched.
func (e *Exporter) Close() error {
	if e.renderer != nil {
		return e.renderer.Close()
	}
	return nil
}
