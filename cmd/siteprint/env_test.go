package main

// Notes:
// - Env var tests use t.Setenv, so none of them are parallel.
// - Precedence under test: flags > env vars > config file > defaults.

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/siteprint/siteprint/internal/config"
)

func clearSiteprintEnv(t *testing.T) {
	t.Helper()
	for name := range knownEnvVars {
		t.Setenv(name, "")
	}
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Environment parsing
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	clearSiteprintEnv(t)
	t.Setenv("SITEPRINT_URL", "http://localhost:8080/cv/")
	t.Setenv("SITEPRINT_OUTPUT", "dist/cv.pdf")
	t.Setenv("SITEPRINT_TIMEOUT", "45s")
	t.Setenv("SITEPRINT_WAIT", "10s")
	t.Setenv("SITEPRINT_NO_SANDBOX", "true")
	t.Setenv("SITEPRINT_LOG_LEVEL", "debug")

	env := loadEnvConfig()

	if env.URL != "http://localhost:8080/cv/" {
		t.Errorf("URL = %q", env.URL)
	}
	if env.Output != "dist/cv.pdf" {
		t.Errorf("Output = %q", env.Output)
	}
	if env.Timeout != 45*time.Second {
		t.Errorf("Timeout = %v", env.Timeout)
	}
	if env.WaitFor != 10*time.Second {
		t.Errorf("WaitFor = %v", env.WaitFor)
	}
	if !env.NoSandbox {
		t.Error("NoSandbox = false")
	}
	if env.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", env.LogLevel)
	}
}

func TestLoadEnvConfig_InvalidDurationsIgnored(t *testing.T) {
	clearSiteprintEnv(t)
	t.Setenv("SITEPRINT_TIMEOUT", "not-a-duration")
	t.Setenv("SITEPRINT_WAIT", "-5s")

	env := loadEnvConfig()
	if env.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0 for invalid input", env.Timeout)
	}
	if env.WaitFor != 0 {
		t.Errorf("WaitFor = %v, want 0 for negative input", env.WaitFor)
	}
}

func TestLoadEnvConfig_NoSandboxValues(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"0", false},
		{"false", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("value "+tt.value, func(t *testing.T) {
			clearSiteprintEnv(t)
			t.Setenv("SITEPRINT_NO_SANDBOX", tt.value)
			if got := loadEnvConfig().NoSandbox; got != tt.want {
				t.Errorf("NoSandbox(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env over file precedence
// ---------------------------------------------------------------------------

func TestApplyEnvConfig_OverridesFileValues(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Source.URL = "http://from-file/"
	cfg.Output.Path = "file.pdf"

	env := &envConfig{
		URL:       "http://from-env/",
		Output:    "env.pdf",
		Timeout:   time.Minute,
		NoSandbox: true,
		LogLevel:  "warn",
	}
	applyEnvConfig(env, cfg)

	if cfg.Source.URL != "http://from-env/" {
		t.Errorf("Source.URL = %q, env must win over file", cfg.Source.URL)
	}
	if cfg.Output.Path != "env.pdf" {
		t.Errorf("Output.Path = %q", cfg.Output.Path)
	}
	if cfg.Browser.Timeout != time.Minute {
		t.Errorf("Browser.Timeout = %v", cfg.Browser.Timeout)
	}
	if !cfg.Browser.NoSandbox {
		t.Error("Browser.NoSandbox not applied")
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestApplyEnvConfig_EmptyEnvKeepsConfig(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Source.URL = "http://from-file/"

	applyEnvConfig(&envConfig{}, cfg)

	if cfg.Source.URL != "http://from-file/" {
		t.Errorf("Source.URL = %q, unset env must not clobber", cfg.Source.URL)
	}
	if cfg.Browser.Timeout != config.DefaultTimeout {
		t.Errorf("Browser.Timeout = %v", cfg.Browser.Timeout)
	}
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	clearSiteprintEnv(t)
	t.Setenv("SITEPRINT_TIMOUT", "30s") // typo

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	if !strings.Contains(buf.String(), "SITEPRINT_TIMOUT") {
		t.Errorf("warning missing for typo var: %q", buf.String())
	}
}

func TestWarnUnknownEnvVars_KnownVarsSilent(t *testing.T) {
	clearSiteprintEnv(t)
	t.Setenv("SITEPRINT_URL", "http://localhost:1313/")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	if strings.Contains(buf.String(), "SITEPRINT_URL") {
		t.Errorf("known var flagged as unknown: %q", buf.String())
	}
}
