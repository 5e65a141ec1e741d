package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// marginSentinel detects whether a margin flag was explicitly set.
// 0 is a valid margin, so an out-of-range sentinel is used instead.
const marginSentinel = -1.0

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// printFlags holds print-to-PDF layout flags. The positive options
// default to on in config, so only the negative forms are exposed.
type printFlags struct {
	noCSSPageSize bool
	noBackground  bool
	marginTop     float64
	marginLeft    float64
	marginRight   float64
	marginBottom  float64
}

// browserFlags holds browser engine flags.
type browserFlags struct {
	bin       string
	noSandbox bool
}

// exportFlags holds all flags for the export command.
type exportFlags struct {
	common  commonFlags
	url     string
	output  string
	timeout string
	wait    string
	print   printFlags
	browser browserFlags
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common commonFlags
	dir    string
	addr   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

// addPrintFlags adds print layout flags to a FlagSet.
func addPrintFlags(fs *flag.FlagSet, f *printFlags) {
	fs.BoolVar(&f.noCSSPageSize, "no-css-page-size", false, "ignore the page's @page size rule, use default paper")
	fs.BoolVar(&f.noBackground, "no-background", false, "omit background colors and images")
	fs.Float64Var(&f.marginTop, "margin-top", marginSentinel, "top margin in CSS pixels")
	fs.Float64Var(&f.marginLeft, "margin-left", marginSentinel, "left margin in CSS pixels")
	fs.Float64Var(&f.marginRight, "margin-right", marginSentinel, "right margin in CSS pixels")
	fs.Float64Var(&f.marginBottom, "margin-bottom", marginSentinel, "bottom margin in CSS pixels")
}

// addBrowserFlags adds browser engine flags to a FlagSet.
func addBrowserFlags(fs *flag.FlagSet, f *browserFlags) {
	fs.StringVar(&f.bin, "browser-bin", "", "path to a preinstalled Chrome/Chromium binary")
	fs.BoolVar(&f.noSandbox, "no-sandbox", false, "disable the Chrome sandbox (Docker/CI)")
}

// parseExportFlags parses export command flags and returns positional args.
func parseExportFlags(args []string) (*exportFlags, []string, error) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	f := &exportFlags{}

	fs.StringVarP(&f.url, "url", "u", "", "page URL to export")
	fs.StringVarP(&f.output, "output", "o", "", "output PDF path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "navigation timeout (e.g., 30s, 2m)")
	fs.StringVar(&f.wait, "wait", "", "poll until the server is reachable (e.g., 10s)")

	addCommonFlags(fs, &f.common)
	addPrintFlags(fs, &f.print)
	addBrowserFlags(fs, &f.browser)

	fs.Usage = func() { printExportUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags.
func parseServeFlags(args []string) (*serveFlags, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	f := &serveFlags{}

	fs.StringVarP(&f.dir, "dir", "d", "", "directory with the rendered site")
	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (host:port)")

	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printServeUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return f, nil
}
