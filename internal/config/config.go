// Package config loads siteprint configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/siteprint/siteprint/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Default values. These are the constants the export was originally
// hard-coded with, now overridable via file, env, and flags.
const (
	DefaultSourceURL  = "http://localhost:1313/resume/"
	DefaultOutputPath = "static/resume.pdf"
	DefaultTimeout    = 30 * time.Second
	DefaultServeDir   = "public"
	DefaultServeAddr  = "127.0.0.1:1313"
	DefaultLogLevel   = "info"
)

// Config holds all configuration for the exporter and the preview
// server.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Output  OutputConfig  `yaml:"output"`
	Print   PrintConfig   `yaml:"print"`
	Browser BrowserConfig `yaml:"browser"`
	Serve   ServeConfig   `yaml:"serve"`
	Log     LogConfig     `yaml:"log"`
}

// SourceConfig defines the page to export.
type SourceConfig struct {
	URL     string        `yaml:"url"`
	WaitFor time.Duration `yaml:"waitFor"` // 0 = single probe, no polling
}

// OutputConfig defines the artifact destination.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// PrintConfig defines the print-to-PDF options.
type PrintConfig struct {
	PreferCSSPageSize bool         `yaml:"preferCSSPageSize"`
	PrintBackground   bool         `yaml:"printBackground"`
	Margin            MarginConfig `yaml:"margin"`
}

// MarginConfig holds print margins in CSS pixels.
type MarginConfig struct {
	Top    float64 `yaml:"top"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// BrowserConfig defines how the headless browser is obtained.
type BrowserConfig struct {
	Bin       string        `yaml:"bin"`       // "" = rod-managed Chromium
	NoSandbox bool          `yaml:"noSandbox"` // required in most containers
	Timeout   time.Duration `yaml:"timeout"`
}

// ServeConfig defines the preview file server.
type ServeConfig struct {
	Dir  string `yaml:"dir"`
	Addr string `yaml:"addr"`
}

// LogConfig defines structured logging output.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // "" = stderr only
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
	Compress   bool   `yaml:"compress"`
}

// DefaultConfig returns the configuration matching the original
// hard-coded export job.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{URL: DefaultSourceURL},
		Output: OutputConfig{Path: DefaultOutputPath},
		Print: PrintConfig{
			PreferCSSPageSize: true,
			PrintBackground:   true,
			Margin:            MarginConfig{Top: 0, Left: 10, Right: 10, Bottom: 0},
		},
		Browser: BrowserConfig{Timeout: DefaultTimeout},
		Serve:   ServeConfig{Dir: DefaultServeDir, Addr: DefaultServeAddr},
		Log: LogConfig{
			Level:      DefaultLogLevel,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
	}
}

// Validate checks value ranges and formats. Called automatically by
// LoadConfig, but available for consumers who construct Config
// manually.
func (c *Config) Validate() error {
	if c.Source.URL != "" {
		parsed, err := url.ParseRequestURI(c.Source.URL)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
			return fmt.Errorf("%w: source.url %q must be an HTTP(S) URL", ErrInvalidValue, c.Source.URL)
		}
	}
	if c.Source.WaitFor < 0 {
		return fmt.Errorf("%w: source.waitFor must not be negative", ErrInvalidValue)
	}
	if c.Browser.Timeout < 0 {
		return fmt.Errorf("%w: browser.timeout must not be negative", ErrInvalidValue)
	}
	for _, m := range []struct {
		name  string
		value float64
	}{
		{"top", c.Print.Margin.Top},
		{"left", c.Print.Margin.Left},
		{"right", c.Print.Margin.Right},
		{"bottom", c.Print.Margin.Bottom},
	} {
		if m.value < 0 {
			return fmt.Errorf("%w: print.margin.%s must not be negative", ErrInvalidValue, m.name)
		}
	}
	if c.Log.Level != "" {
		switch strings.ToLower(c.Log.Level) {
		case "trace", "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("%w: log.level %q (must be trace, debug, info, warn, or error)", ErrInvalidValue, c.Log.Level)
		}
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/siteprint/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "siteprint", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
