package main

// Notes:
// - run: dispatch table, including the default-to-export behavior when
//   no command (or a leading flag) is given.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRun - Command dispatch
// ---------------------------------------------------------------------------

func TestRun_UnknownCommand(t *testing.T) {
	deps, _, stderr := testDeps()

	code := run([]string{"frobnicate"}, deps)
	if code != ExitUsage {
		t.Fatalf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "Unknown command: frobnicate") {
		t.Errorf("stderr = %q", stderr.String())
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Error("usage not printed for unknown command")
	}
}

func TestRun_Version(t *testing.T) {
	deps, stdout, _ := testDeps()

	if code := run([]string{"version"}, deps); code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), "siteprint") {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stdout.String(), Version) {
		t.Errorf("version string missing: %q", stdout.String())
	}
}

func TestRun_Help(t *testing.T) {
	deps, stdout, _ := testDeps()

	if code := run([]string{"help"}, deps); code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	for _, cmd := range []string{"export", "serve", "doctor", "completion", "version"} {
		if !strings.Contains(stdout.String(), cmd) {
			t.Errorf("help missing command %q", cmd)
		}
	}
}

func TestRun_HelpForCommand(t *testing.T) {
	deps, stdout, _ := testDeps()

	if code := run([]string{"help", "export"}, deps); code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout.String(), "--margin-top") {
		t.Errorf("export help missing flags: %q", stdout.String())
	}
}

func TestRun_DefaultsToExport(t *testing.T) {
	clearSiteprintEnv(t)
	fake := &fakeExporter{}
	injectExporter(t, fake)
	deps, _, _ := testDeps()

	// No command at all: the plain invocation that replaces the old
	// hard-coded export binary.
	if code := run(nil, deps); code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if fake.calls != 1 {
		t.Errorf("exporter called %d times, want 1", fake.calls)
	}
}

func TestRun_LeadingFlagMeansExport(t *testing.T) {
	clearSiteprintEnv(t)
	fake := &fakeExporter{}
	injectExporter(t, fake)
	deps, _, _ := testDeps()

	if code := run([]string{"--quiet"}, deps); code != ExitSuccess {
		t.Fatalf("exit code = %d", code)
	}
	if fake.calls != 1 {
		t.Errorf("exporter called %d times, want 1", fake.calls)
	}
}
