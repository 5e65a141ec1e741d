package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: siteprint [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  export      Export the configured page to PDF (default)")
	fmt.Fprintln(w, "  serve       Serve the rendered site over HTTP")
	fmt.Fprintln(w, "  doctor      Check the environment for export readiness")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Running siteprint with no command exports using the configured")
	fmt.Fprintln(w, "defaults (http://localhost:1313/resume/ -> static/resume.pdf).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'siteprint help <command>' for details on a specific command.")
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: siteprint export [url] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render a locally served page to a PDF file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  url    Page URL to export (optional, defaults to config source.url)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -u, --url <url>           Page URL to export")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF path")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Timing:")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Navigation timeout (default 30s)")
	fmt.Fprintln(w, "      --wait <dur>          Poll until the server is reachable")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print Layout:")
	fmt.Fprintln(w, "      --no-css-page-size    Ignore the page's @page size rule")
	fmt.Fprintln(w, "      --no-background       Omit background colors and images")
	fmt.Fprintln(w, "      --margin-top <px>     Top margin in CSS pixels")
	fmt.Fprintln(w, "      --margin-left <px>    Left margin in CSS pixels")
	fmt.Fprintln(w, "      --margin-right <px>   Right margin in CSS pixels")
	fmt.Fprintln(w, "      --margin-bottom <px>  Bottom margin in CSS pixels")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Browser:")
	fmt.Fprintln(w, "      --browser-bin <path>  Preinstalled Chrome/Chromium binary")
	fmt.Fprintln(w, "      --no-sandbox          Disable the Chrome sandbox (Docker/CI)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: siteprint serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve the rendered site directory over HTTP. Blocks until")
	fmt.Fprintln(w, "interrupted (Ctrl+C).")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -d, --dir <path>          Directory with the rendered site (default public)")
	fmt.Fprintln(w, "  -a, --addr <host:port>    Listen address (default 127.0.0.1:1313)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug output")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: siteprint doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check Chrome availability, server reachability, and filesystem")
	fmt.Fprintln(w, "permissions before exporting.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json                Output diagnostics as JSON")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "export":
		printExportUsage(deps.Stdout)
	case "serve":
		printServeUsage(deps.Stdout)
	case "doctor":
		printDoctorUsage(deps.Stdout)
	case "completion":
		printCompletionUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: siteprint version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: siteprint help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
