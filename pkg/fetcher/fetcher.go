// Package fetcher performs single authenticated GET requests against the CMS
// API with bounded retry. It is the only package that touches the network.
package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
)

const (
	// DefaultMaxRetries is how many attempts one fetch makes in total.
	DefaultMaxRetries = 3

	defaultTimeout = 30 * time.Second
)

// Client wraps an http.Client with the retry policy.
type Client struct {
	httpClient *http.Client
	maxRetries int
	delayUnit  time.Duration
}

// New returns a Client with the default retry policy: three attempts with a
// one-second backoff unit.
func New() *Client {
	return NewWithOptions(&http.Client{Timeout: defaultTimeout}, DefaultMaxRetries, time.Second)
}

// NewWithOptions returns a Client with explicit transport and retry knobs.
// Tests shrink delayUnit so backoff does not dominate the run.
func NewWithOptions(httpClient *http.Client, maxRetries int, delayUnit time.Duration) *Client {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Client{
		httpClient: httpClient,
		maxRetries: maxRetries,
		delayUnit:  delayUnit,
	}
}

// linearBackOff waits unit, 2*unit, 3*unit... between attempts. The remote
// API rate-limits bursts, so the ramp is linear rather than exponential.
type linearBackOff struct {
	unit    time.Duration
	attempt int
}

var _ backoff.BackOff = (*linearBackOff)(nil)

func (b *linearBackOff) NextBackOff() time.Duration {
	b.attempt++
	return time.Duration(b.attempt) * b.unit
}

func (b *linearBackOff) Reset() {
	b.attempt = 0
}

// GetJSON fetches url and decodes the response body as a JSON object. Any
// non-2xx status, transport error or undecodable body counts as a failed
// attempt; after the final attempt the last error is returned as-is.
func (c *Client) GetJSON(ctx context.Context, url string) (map[string]interface{}, error) {
	bo := &linearBackOff{unit: c.delayUnit}

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		payload, err := c.get(ctx, url)
		if err == nil {
			return payload, nil
		}
		lastErr = err

		if attempt == c.maxRetries {
			break
		}
		select {
		case <-time.After(bo.NextBackOff()):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

func (c *Client) get(ctx context.Context, url string) (map[string]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, snippetOf(body))
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}
	return payload, nil
}

// snippetOf keeps error messages readable when the API returns an HTML error
// page instead of JSON.
func snippetOf(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > 120 {
		s = s[:120] + "..."
	}
	if s == "" {
		return "(empty body)"
	}
	return s
}
