// Package httpfetch implements the driven.Fetcher port over plain HTTPS.
// Documentation mirrors are public llms.txt-style endpoints; no
// authentication is involved.
package httpfetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
	"github.com/permaweb-tools/permadocs-cli/internal/core/ports/driven"
	"github.com/permaweb-tools/permadocs-cli/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

const (
	// DefaultTimeout bounds each individual fetch. Expiry cancels only
	// that request.
	DefaultTimeout = 30 * time.Second

	// ProactiveRate throttles fetches so preload bursts do not hammer
	// the doc mirrors (req/sec).
	ProactiveRate = 2.0

	// BurstSize allows a small initial burst for concurrent preloads.
	BurstSize = 4

	// userAgent identifies the client to doc mirrors.
	userAgent = "permadocs-cli"
)

// Fetcher retrieves documentation text over HTTP with a per-request
// deadline and proactive rate limiting.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	timeout time.Duration
}

// Option configures the fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request deadline.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithHTTPClient swaps the underlying HTTP client. Useful for testing.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// New creates a fetcher with the given options.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:  &http.Client{},
		limiter: rate.NewLimiter(rate.Limit(ProactiveRate), BurstSize),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the response body for the given URL, narrowing every
// failure to a domain error type immediately after the network call.
func (f *Fetcher) Fetch(ctx context.Context, dom, url string) (string, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", dom, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/plain, text/markdown;q=0.9, */*;q=0.5")

	logger.Debug("Fetching %s from %s", dom, url)
	start := time.Now()

	resp, err := f.client.Do(req)
	if err != nil {
		return "", narrowFetchError(dom, f.timeout, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &domain.HTTPStatusError{Domain: dom, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", narrowFetchError(dom, f.timeout, err)
	}

	logger.Debug("Fetched %s: %d bytes in %s", dom, len(body), time.Since(start).Round(time.Millisecond))
	return string(body), nil
}

// narrowFetchError maps transport failures onto the domain error taxonomy.
func narrowFetchError(dom string, timeout time.Duration, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &domain.FetchTimeoutError{Domain: dom, Timeout: timeout}
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &domain.FetchTimeoutError{Domain: dom, Timeout: timeout}
	}

	if errors.Is(err, io.ErrUnexpectedEOF) || strings.Contains(err.Error(), "connection reset") ||
		strings.Contains(err.Error(), "broken pipe") {
		return fmt.Errorf("%s: %w: %v", dom, domain.ErrConnectionClosed, err)
	}

	return fmt.Errorf("fetch %s: %w", dom, err)
}
