// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by the collect sources.
package httputil

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// RetryBaseDelay is the base duration for exponential backoff on
// retryable responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 5 * time.Second

const defaultMaxRetries = 3

// DoWithRetry executes an HTTP request and retries on HTTP 429 and 503,
// the two statuses public song databases answer with when a client gets
// ahead of its welcome. The delay starts at RetryBaseDelay and doubles
// each attempt.
//
// When maxRetries is 0 the default (3) is used. Before each retry the
// response body is drained and closed. A context cancelled during the
// backoff wait returns ctx.Err(). After exhausting retries the last
// response is returned as-is so the caller can report its status.
func DoWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if !retryable(resp.StatusCode) {
			return resp, nil
		}
		if attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

func retryable(status int) bool {
	return status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable
}

// UserAgent joins the configured agent string with an optional contact
// address, the form site operators ask automated clients to send.
func UserAgent(agent, contact string) string {
	if contact == "" {
		return agent
	}
	return fmt.Sprintf("%s (%s)", agent, contact)
}
