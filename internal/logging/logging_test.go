package logging

// Notes:
// - Uses a buffer-backed zerolog logger via SetLoggerForTest so tests
//   can assert on emitted JSON without touching stderr or files.

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func captureLogger(t *testing.T, level zerolog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLoggerForTest(zerolog.New(&buf).Level(level))
	t.Cleanup(func() {
		SetLoggerForTest(zerolog.New(zerolog.ConsoleWriter{Out: &bytes.Buffer{}}))
	})
	return &buf
}

// ---------------------------------------------------------------------------
// TestEmit - Key-value field handling
// ---------------------------------------------------------------------------

func TestInfo_EmitsFields(t *testing.T) {
	buf := captureLogger(t, zerolog.InfoLevel)

	Info("export complete", "output", "static/resume.pdf", "attempts", 1)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["message"] != "export complete" {
		t.Errorf("message = %v", entry["message"])
	}
	if entry["output"] != "static/resume.pdf" {
		t.Errorf("output field = %v", entry["output"])
	}
	if entry["attempts"] != float64(1) {
		t.Errorf("attempts field = %v", entry["attempts"])
	}
}

func TestEmit_OddKeyValueCount(t *testing.T) {
	buf := captureLogger(t, zerolog.InfoLevel)

	Info("msg", "dangling")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if _, ok := entry["dangling"]; !ok {
		t.Error("trailing key was dropped, want logged with nil value")
	}
}

func TestEmit_NonStringKeySkipped(t *testing.T) {
	buf := captureLogger(t, zerolog.InfoLevel)

	Info("msg", 42, "value", "key", "kept")

	out := buf.String()
	if !strings.Contains(out, `"key":"kept"`) {
		t.Errorf("valid pair missing from output: %s", out)
	}
}

// ---------------------------------------------------------------------------
// TestLevels - Level filtering
// ---------------------------------------------------------------------------

func TestDebug_FilteredAtInfoLevel(t *testing.T) {
	buf := captureLogger(t, zerolog.InfoLevel)

	Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug message emitted at info level: %q", buf.String())
	}

	Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("warn message not emitted at info level")
	}
}

func TestSetLevel(t *testing.T) {
	buf := captureLogger(t, zerolog.InfoLevel)

	SetLevel("error")
	Warn("hidden")
	if buf.Len() != 0 {
		t.Errorf("warn emitted at error level: %q", buf.String())
	}

	Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("error message not emitted")
	}
}

func TestParseLevel_FallsBackToInfo(t *testing.T) {
	t.Parallel()

	if got := parseLevel("bogus"); got != zerolog.InfoLevel {
		t.Errorf("parseLevel(bogus) = %v, want info", got)
	}
	if got := parseLevel("debug"); got != zerolog.DebugLevel {
		t.Errorf("parseLevel(debug) = %v", got)
	}
}
