package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	flag "github.com/spf13/pflag"

	"github.com/siteprint/siteprint/internal/logging"
)

// shutdownGrace bounds how long in-flight requests may run after an
// interrupt before the server is torn down.
const shutdownGrace = 5 * time.Second

// runServeCmd serves the rendered site directory over HTTP so the
// export command has something to print. Blocks until interrupted.
func runServeCmd(ctx context.Context, args []string, deps *Dependencies) int {
	flags, err := parseServeFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	warnUnknownEnvVars(deps.Stderr)

	cfg, err := resolveConfig(flags.common.config)
	if err != nil {
		reportExportError(err, "", deps)
		return exitCodeFor(err)
	}

	if flags.dir != "" {
		cfg.Serve.Dir = flags.dir
	}
	if flags.addr != "" {
		cfg.Serve.Addr = flags.addr
	}

	initLogging(cfg, flags.common.quiet, flags.common.verbose)

	info, err := os.Stat(cfg.Serve.Dir)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(deps.Stderr, "Error: serve directory %q does not exist\n  hint: render the site first, or pass --dir\n", cfg.Serve.Dir)
		return ExitIO
	}

	app := newServeApp(cfg.Serve.Dir)

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Serving %s at http://%s (Ctrl+C to stop)\n", cfg.Serve.Dir, cfg.Serve.Addr)
	}
	logging.Info("server starting", "dir", cfg.Serve.Dir, "addr", cfg.Serve.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Serve.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
			return ExitGeneral
		}
		return ExitSuccess
	case <-ctx.Done():
		logging.Info("server stopping", "grace", shutdownGrace.String())
		if err := app.ShutdownWithTimeout(shutdownGrace); err != nil {
			logging.Warn("shutdown incomplete", "error", err.Error())
		}
		return ExitSuccess
	}
}

// newServeApp builds the static file server. Split out so tests can
// exercise routing with app.Test without binding a port.
func newServeApp(dir string) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
	})

	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		logging.Debug("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode())
		return err
	})

	app.Static("/", dir, fiber.Static{
		Index: "index.html",
	})

	return app
}
