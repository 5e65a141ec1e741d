package siteprint

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// pageRenderer abstracts the navigate-and-print step to enable testing
// without a browser.
type pageRenderer interface {
	RenderURL(ctx context.Context, url string, opts PrintOptions) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ pageRenderer = (*rodRenderer)(nil)

// pixelsPerInch converts CSS pixel margins to the inch values Chrome's
// print call expects.
const pixelsPerInch = 96.0

// Default paper dimensions in inches (US Letter), used only when the
// page's CSS is not allowed to pick the size.
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
)

// rodRenderer implements pageRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser   *rod.Browser
	timeout   time.Duration
	bin       string
	noSandbox bool
}

// newRodRenderer creates a rodRenderer from exporter configuration.
func newRodRenderer(cfg exporterConfig) *rodRenderer {
	return &rodRenderer{
		timeout:   cfg.timeout,
		bin:       cfg.browserBin,
		noSandbox: cfg.noSandbox,
	}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use a preinstalled browser if specified (Docker/containerized
	// environments); exporter config wins over the rod env var.
	bin := r.bin
	if bin == "" {
		bin = os.Getenv("ROD_BROWSER_BIN")
	}
	if bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments.
	if r.noSandbox || os.Getenv("CI") == "true" || bin != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	if r.browser != nil {
		err := r.browser.Close()
		r.browser = nil
		return err
	}
	return nil
}

// RenderURL opens the URL in a headless Chrome tab, waits for the load
// event, and prints the page to PDF. The tab is closed on every path;
// the browser stays up for reuse until Close.
func (r *rodRenderer) RenderURL(ctx context.Context, url string, opts PrintOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Navigation blocks until the load event or the timeout. The
	// context deadline wins when it is tighter.
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPrintToPDF(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// buildPrintToPDF maps PrintOptions to Chrome's native print
// parameters. When the CSS page size is preferred, no paper dimensions
// are forced so the page's @page rule governs the output.
func buildPrintToPDF(opts PrintOptions) *proto.PagePrintToPDF {
	req := &proto.PagePrintToPDF{
		PrintBackground:   opts.PrintBackground,
		PreferCSSPageSize: opts.PreferCSSPageSize,
		MarginTop:         floatPtr(opts.Margin.Top / pixelsPerInch),
		MarginLeft:        floatPtr(opts.Margin.Left / pixelsPerInch),
		MarginRight:       floatPtr(opts.Margin.Right / pixelsPerInch),
		MarginBottom:      floatPtr(opts.Margin.Bottom / pixelsPerInch),
	}

	if !opts.PreferCSSPageSize {
		req.PaperWidth = floatPtr(paperWidthInches)
		req.PaperHeight = floatPtr(paperHeightInches)
	}

	return req
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
