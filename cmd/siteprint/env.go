package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/siteprint/siteprint/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // SITEPRINT_CONFIG: config file name or path
	URL        string        // SITEPRINT_URL: page URL to export
	Output     string        // SITEPRINT_OUTPUT: output PDF path
	Timeout    time.Duration // SITEPRINT_TIMEOUT: navigation timeout
	WaitFor    time.Duration // SITEPRINT_WAIT: server readiness polling window
	BrowserBin string        // SITEPRINT_BROWSER_BIN: Chrome/Chromium binary path
	NoSandbox  bool          // SITEPRINT_NO_SANDBOX: disable the Chrome sandbox
	ServeDir   string        // SITEPRINT_SERVE_DIR: directory with the rendered site
	ServeAddr  string        // SITEPRINT_SERVE_ADDR: serve listen address
	LogLevel   string        // SITEPRINT_LOG_LEVEL: debug, info, warn, error
	LogFile    string        // SITEPRINT_LOG_FILE: rotating log file path
}

// knownEnvVars lists valid SITEPRINT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SITEPRINT_CONFIG":      true,
	"SITEPRINT_URL":         true,
	"SITEPRINT_OUTPUT":      true,
	"SITEPRINT_TIMEOUT":     true,
	"SITEPRINT_WAIT":        true,
	"SITEPRINT_BROWSER_BIN": true,
	"SITEPRINT_NO_SANDBOX":  true,
	"SITEPRINT_SERVE_DIR":   true,
	"SITEPRINT_SERVE_ADDR":  true,
	"SITEPRINT_LOG_LEVEL":   true,
	"SITEPRINT_LOG_FILE":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized SITEPRINT_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("SITEPRINT_CONFIG"),
		URL:        os.Getenv("SITEPRINT_URL"),
		Output:     os.Getenv("SITEPRINT_OUTPUT"),
		BrowserBin: os.Getenv("SITEPRINT_BROWSER_BIN"),
		ServeDir:   os.Getenv("SITEPRINT_SERVE_DIR"),
		ServeAddr:  os.Getenv("SITEPRINT_SERVE_ADDR"),
		LogLevel:   os.Getenv("SITEPRINT_LOG_LEVEL"),
		LogFile:    os.Getenv("SITEPRINT_LOG_FILE"),
	}

	if timeout := os.Getenv("SITEPRINT_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if wait := os.Getenv("SITEPRINT_WAIT"); wait != "" {
		if d, err := time.ParseDuration(wait); err == nil && d > 0 {
			cfg.WaitFor = d
		}
	}

	switch strings.ToLower(os.Getenv("SITEPRINT_NO_SANDBOX")) {
	case "1", "true", "yes":
		cfg.NoSandbox = true
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized SITEPRINT_* variables.
// Helps catch typos like SITEPRINT_TIMOUT instead of SITEPRINT_TIMEOUT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "SITEPRINT_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Env vars override file values unconditionally; flags are applied
// later and win over both: CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.URL != "" {
		cfg.Source.URL = env.URL
	}
	if env.Output != "" {
		cfg.Output.Path = env.Output
	}
	if env.Timeout > 0 {
		cfg.Browser.Timeout = env.Timeout
	}
	if env.WaitFor > 0 {
		cfg.Source.WaitFor = env.WaitFor
	}
	if env.BrowserBin != "" {
		cfg.Browser.Bin = env.BrowserBin
	}
	if env.NoSandbox {
		cfg.Browser.NoSandbox = true
	}
	if env.ServeDir != "" {
		cfg.Serve.Dir = env.ServeDir
	}
	if env.ServeAddr != "" {
		cfg.Serve.Addr = env.ServeAddr
	}
	if env.LogLevel != "" {
		cfg.Log.Level = env.LogLevel
	}
	if env.LogFile != "" {
		cfg.Log.File = env.LogFile
	}
}
