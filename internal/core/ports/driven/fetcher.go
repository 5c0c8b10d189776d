package driven

import "context"

// Fetcher retrieves raw documentation text from a URL.
//
// Implementations own the per-request deadline: every call carries its own
// bound, and expiry cancels only that request. Failures are narrowed to the
// domain error types immediately after the network call:
//
//   - *domain.FetchTimeoutError when the deadline is exceeded
//   - *domain.HTTPStatusError on a non-2xx response
//   - domain.ErrConnectionClosed when the remote hangs up mid-transfer
type Fetcher interface {
	// Fetch returns the response body for the given URL.
	// The dom parameter identifies the domain for error reporting.
	Fetch(ctx context.Context, dom, url string) (string, error)
}
