package siteprint

// Notes:
// - probeHTTP: tests against live httptest servers; a closed listener
//   stands in for "nothing serving on that port".
// - awaitServer: tests the polling path with a probe that recovers
//   after a few attempts.

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestProbeHTTP - Single reachability check
// ---------------------------------------------------------------------------

func TestProbeHTTP_Reachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>resume</html>"))
	}))
	defer srv.Close()

	if err := probeHTTP(context.Background(), srv.URL); err != nil {
		t.Fatalf("probeHTTP() = %v, want nil", err)
	}
}

func TestProbeHTTP_NotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	err := probeHTTP(context.Background(), srv.URL+"/resume/")
	if !errors.Is(err, ErrServerUnreachable) {
		t.Fatalf("probeHTTP() = %v, want ErrServerUnreachable", err)
	}
}

func TestProbeHTTP_ConnectionRefused(t *testing.T) {
	t.Parallel()

	// Grab a port, then free it so nothing is listening there.
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := probeHTTP(context.Background(), url)
	if !errors.Is(err, ErrServerUnreachable) {
		t.Fatalf("probeHTTP() = %v, want ErrServerUnreachable", err)
	}
}

func TestProbeHTTP_InvalidURL(t *testing.T) {
	t.Parallel()

	err := probeHTTP(context.Background(), "http://invalid url with spaces")
	if !errors.Is(err, ErrServerUnreachable) {
		t.Fatalf("probeHTTP() = %v, want ErrServerUnreachable", err)
	}
}

// ---------------------------------------------------------------------------
// TestAwaitServer - Connect stage polling
// ---------------------------------------------------------------------------

func TestAwaitServer_SingleProbeNoWait(t *testing.T) {
	t.Parallel()

	calls := 0
	e := New(
		withRenderer(&fakeRenderer{}),
		withProbe(func(context.Context, string) error {
			calls++
			return fmt.Errorf("%w: refused", ErrServerUnreachable)
		}),
	)

	err := e.awaitServer(context.Background(), "http://localhost:1313/")
	if !errors.Is(err, ErrServerUnreachable) {
		t.Fatalf("awaitServer() = %v, want ErrServerUnreachable", err)
	}
	if calls != 1 {
		t.Errorf("probe called %d times, want 1 (no polling without waitFor)", calls)
	}
}

func TestAwaitServer_RecoversWithinWait(t *testing.T) {
	t.Parallel()

	calls := 0
	e := New(
		withRenderer(&fakeRenderer{}),
		WithWaitFor(5*time.Second),
		withProbe(func(context.Context, string) error {
			calls++
			if calls < 3 {
				return fmt.Errorf("%w: not yet", ErrServerUnreachable)
			}
			return nil
		}),
	)

	if err := e.awaitServer(context.Background(), "http://localhost:1313/"); err != nil {
		t.Fatalf("awaitServer() = %v, want nil after recovery", err)
	}
	if calls < 3 {
		t.Errorf("probe called %d times, want at least 3", calls)
	}
}

func TestAwaitServer_CanceledContext(t *testing.T) {
	t.Parallel()

	e := New(
		withRenderer(&fakeRenderer{}),
		WithWaitFor(time.Minute),
		withProbe(func(context.Context, string) error {
			return fmt.Errorf("%w: refused", ErrServerUnreachable)
		}),
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.awaitServer(ctx, "http://localhost:1313/")
	if !errors.Is(err, ErrServerUnreachable) {
		t.Fatalf("awaitServer() = %v, want ErrServerUnreachable", err)
	}
}
