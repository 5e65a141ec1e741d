package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	os.Exit(run(os.Args[1:], DefaultDeps()))
}

// run dispatches to a subcommand and returns the process exit code.
// A missing command, or a leading flag, means "export" (the base form
// takes no arguments at all).
func run(args []string, deps *Dependencies) int {
	cmd := "export"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd = args[0]
		args = args[1:]
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	switch cmd {
	case "export":
		return runExportCmd(ctx, args, deps)
	case "serve":
		return runServeCmd(ctx, args, deps)
	case "doctor":
		return runDoctorCmd(args, deps)
	case "completion":
		return runCompletionCmd(args, deps)
	case "version":
		fmt.Fprintf(deps.Stdout, "siteprint %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(args, deps)
		return ExitSuccess
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", cmd)
		printUsage(deps.Stderr)
		return ExitUsage
	}
}
