package siteprint

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// probeFunc checks that a URL answers over plain HTTP. Abstracted so
// tests can run without a listening server.
type probeFunc func(ctx context.Context, url string) error

// probeTimeout bounds a single reachability check. The probe is a
// cheap GET, not a render; anything slower than this means the server
// is not ready.
const probeTimeout = 5 * time.Second

// pollInterval is the delay between probes while waiting for the
// server to come up.
const pollInterval = 500 * time.Millisecond

// probeHTTP performs one GET against the source URL. Connection
// failures and HTTP error statuses both count as unreachable: a 404
// means the server is up but the page is not where the job expects it,
// which is the same deployment mistake from the exporter's view.
func probeHTTP(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServerUnreachable, err)
	}
	defer resp.Body.Close()

	// Drain a bounded amount so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: %s returned %s", ErrServerUnreachable, url, resp.Status)
	}
	return nil
}

// awaitServer runs the connect stage. With waitFor zero it is a single
// probe; otherwise it polls until the server answers or the wait
// budget is spent, returning the last probe error.
func (e *Exporter) awaitServer(ctx context.Context, url string) error {
	err := e.probe(ctx, url)
	if err == nil || e.cfg.waitFor <= 0 {
		return err
	}

	deadline := time.Now().Add(e.cfg.waitFor)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrServerUnreachable, ctx.Err())
		case <-ticker.C:
		}
		if err = e.probe(ctx, url); err == nil {
			return nil
		}
	}
	return err
}
