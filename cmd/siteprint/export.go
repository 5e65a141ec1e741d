package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	flag "github.com/spf13/pflag"

	siteprint "github.com/siteprint/siteprint"
	"github.com/siteprint/siteprint/internal/config"
	"github.com/siteprint/siteprint/internal/hints"
	"github.com/siteprint/siteprint/internal/logging"
)

// exporter is the interface for the export pipeline.
type exporter interface {
	Export(ctx context.Context, job siteprint.Job) error
	Close() error
}

// Compile-time interface implementation check.
var _ exporter = (*siteprint.Exporter)(nil)

// newExporter builds the production exporter from resolved config.
// Package variable so tests can inject a fake.
var newExporter = func(cfg *config.Config) exporter {
	opts := []siteprint.Option{}
	if cfg.Browser.Timeout > 0 {
		opts = append(opts, siteprint.WithTimeout(cfg.Browser.Timeout))
	}
	if cfg.Source.WaitFor > 0 {
		opts = append(opts, siteprint.WithWaitFor(cfg.Source.WaitFor))
	}
	if cfg.Browser.Bin != "" {
		opts = append(opts, siteprint.WithBrowserBin(cfg.Browser.Bin))
	}
	if cfg.Browser.NoSandbox {
		opts = append(opts, siteprint.WithNoSandbox(true))
	}
	return siteprint.New(opts...)
}

// runExportCmd renders the configured page to a PDF file.
func runExportCmd(ctx context.Context, args []string, deps *Dependencies) int {
	flags, positional, err := parseExportFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		return ExitUsage
	}
	if len(positional) > 1 {
		fmt.Fprintf(deps.Stderr, "Error: export takes at most one URL argument, got %d\n", len(positional))
		return ExitUsage
	}

	warnUnknownEnvVars(deps.Stderr)

	cfg, err := resolveConfig(flags.common.config)
	if err != nil {
		reportExportError(err, "", deps)
		return exitCodeFor(err)
	}

	if err := mergeExportFlags(flags, positional, cfg); err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %v\n", err)
		return ExitUsage
	}

	initLogging(cfg, flags.common.quiet, flags.common.verbose)

	if err := cfg.Validate(); err != nil {
		reportExportError(err, cfg.Source.URL, deps)
		return exitCodeFor(err)
	}

	job := buildJob(cfg)

	exp := newExporter(cfg)
	defer func() {
		if cerr := exp.Close(); cerr != nil {
			logging.Warn("browser close failed", "error", cerr.Error())
		}
	}()

	logging.Debug("starting export",
		"url", job.SourceURL,
		"output", job.OutputPath,
		"timeout", cfg.Browser.Timeout.String())

	start := deps.Now()
	if err := exp.Export(ctx, job); err != nil {
		reportExportError(err, job.SourceURL, deps)
		return exitCodeFor(err)
	}
	elapsed := deps.Now().Sub(start)

	logging.Info("export complete",
		"output", job.OutputPath,
		"duration", elapsed.Round(time.Millisecond).String())

	if !flags.common.quiet {
		fmt.Fprintf(deps.Stdout, "Exported %s -> %s (%v)\n",
			job.SourceURL, job.OutputPath, elapsed.Round(time.Millisecond))
	}
	return ExitSuccess
}

// resolveConfig loads config from an explicit flag, the SITEPRINT_CONFIG
// env var, or falls back to defaults, then layers env var overrides on
// top. Flag values are merged afterwards and win over everything.
func resolveConfig(flagConfig string) (*config.Config, error) {
	env := loadEnvConfig()

	nameOrPath := flagConfig
	if nameOrPath == "" {
		nameOrPath = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if nameOrPath != "" {
		loaded, err := config.LoadConfig(nameOrPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// mergeExportFlags merges CLI flags into config. CLI values override
// config and env values.
func mergeExportFlags(flags *exportFlags, positional []string, cfg *config.Config) error {
	if len(positional) == 1 {
		cfg.Source.URL = positional[0]
	}
	if flags.url != "" {
		cfg.Source.URL = flags.url
	}
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid --timeout %q: expected a positive duration like 30s", flags.timeout)
		}
		cfg.Browser.Timeout = d
	}
	if flags.wait != "" {
		d, err := time.ParseDuration(flags.wait)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid --wait %q: expected a positive duration like 10s", flags.wait)
		}
		cfg.Source.WaitFor = d
	}

	if flags.print.noCSSPageSize {
		cfg.Print.PreferCSSPageSize = false
	}
	if flags.print.noBackground {
		cfg.Print.PrintBackground = false
	}
	if flags.print.marginTop != marginSentinel {
		cfg.Print.Margin.Top = flags.print.marginTop
	}
	if flags.print.marginLeft != marginSentinel {
		cfg.Print.Margin.Left = flags.print.marginLeft
	}
	if flags.print.marginRight != marginSentinel {
		cfg.Print.Margin.Right = flags.print.marginRight
	}
	if flags.print.marginBottom != marginSentinel {
		cfg.Print.Margin.Bottom = flags.print.marginBottom
	}

	if flags.browser.bin != "" {
		cfg.Browser.Bin = flags.browser.bin
	}
	if flags.browser.noSandbox {
		cfg.Browser.NoSandbox = true
	}

	return nil
}

// buildJob creates the export job from resolved config.
func buildJob(cfg *config.Config) siteprint.Job {
	return siteprint.Job{
		SourceURL:  cfg.Source.URL,
		OutputPath: cfg.Output.Path,
		Options: siteprint.PrintOptions{
			PreferCSSPageSize: cfg.Print.PreferCSSPageSize,
			PrintBackground:   cfg.Print.PrintBackground,
			Margin: siteprint.Margins{
				Top:    cfg.Print.Margin.Top,
				Left:   cfg.Print.Margin.Left,
				Right:  cfg.Print.Margin.Right,
				Bottom: cfg.Print.Margin.Bottom,
			},
		},
	}
}

// initLogging configures the logger from config, with quiet/verbose
// flags taking precedence over the configured level.
func initLogging(cfg *config.Config, quiet, verbose bool) {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	if quiet {
		level = "error"
	}
	logging.Init(level, logging.FileConfig{
		Path:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
}

// stageFor names the pipeline stage an error belongs to. Used in error
// output so the user knows how far the export got.
func stageFor(err error) string {
	switch {
	case errors.Is(err, siteprint.ErrServerUnreachable):
		return "connect"
	case errors.Is(err, siteprint.ErrBrowserConnect),
		errors.Is(err, siteprint.ErrPageCreate),
		errors.Is(err, siteprint.ErrPageLoad):
		return "navigate"
	case errors.Is(err, siteprint.ErrPDFGeneration):
		return "print"
	case errors.Is(err, siteprint.ErrWritePDF):
		return "write"
	default:
		return ""
	}
}

// reportExportError prints an error with its pipeline stage and an
// actionable hint when one applies.
func reportExportError(err error, url string, deps *Dependencies) {
	var hint string
	switch {
	case errors.Is(err, siteprint.ErrServerUnreachable):
		hint = hints.ForServerUnreachable(url)
	case errors.Is(err, siteprint.ErrBrowserConnect):
		hint = hints.ForBrowserConnect()
	case errors.Is(err, siteprint.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		hint = hints.ForTimeout()
	case errors.Is(err, siteprint.ErrWritePDF):
		hint = hints.ForWriteFailure()
	case errors.Is(err, config.ErrConfigNotFound):
		hint = hints.ForConfigNotFound(nil)
	}

	if stage := stageFor(err); stage != "" {
		fmt.Fprintf(deps.Stderr, "Error [%s]: %v%s\n", stage, err, hint)
		return
	}
	fmt.Fprintf(deps.Stderr, "Error: %v%s\n", err, hint)
}
