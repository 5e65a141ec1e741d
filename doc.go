// Package siteprint exports pages of a locally served website to
// print-formatted PDF files using headless Chrome.
//
// # Quick Start
//
// Create an exporter, run a job, and close when done:
//
//	exp := siteprint.New()
//	defer exp.Close()
//
//	err := exp.Export(ctx, siteprint.Job{
//	    SourceURL:  "http://localhost:1313/resume/",
//	    OutputPath: "static/resume.pdf",
//	    Options:    siteprint.DefaultPrintOptions(),
//	})
//
// The page must already be served; Export does not start a server. It
// probes the URL over plain HTTP before launching a browser, so an
// unreachable server fails fast without touching the output path.
//
// # Pipeline
//
// Export runs a single linear pipeline:
//
//  1. Probe the source URL (connect stage)
//  2. Launch headless Chrome and open a tab (go-rod)
//  3. Navigate and wait for the load event (navigate stage, bounded)
//  4. Print to PDF with the job's print options (print stage)
//  5. Atomically replace the output file (write stage)
//
// Each stage has its own sentinel error (ErrServerUnreachable,
// ErrPageLoad, ErrPDFGeneration, ErrWritePDF, ...) so callers can name
// the failing stage. There is no retry logic and no internal
// concurrency; the browser is owned by the Exporter and released by
// Close on every path.
//
// # Print Options
//
// PrintOptions map onto Chrome's Page.printToPDF parameters. With
// PreferCSSPageSize set, the page's own @page CSS rule governs the
// output dimensions instead of a default paper size. Margins are given
// in CSS pixels and converted at 96 dpi.
//
// # Browser Requirements
//
// PDF generation requires Chrome/Chromium. The go-rod library downloads
// a managed Chromium on first run (~/.cache/rod/browser/). For
// containers and CI, set ROD_NO_SANDBOX=1 to disable the Chrome sandbox
// and ROD_BROWSER_BIN (or SITEPRINT_BROWSER_BIN) to use a preinstalled
// binary.
package siteprint
