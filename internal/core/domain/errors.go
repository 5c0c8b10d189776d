package domain

import (
	"errors"
	"fmt"
	"time"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrUnknownDomain indicates a caller or config references a domain
	// absent from the source registry.
	ErrUnknownDomain = errors.New("unknown domain")

	// ErrEmptyContent indicates a fetch succeeded but the body was blank.
	ErrEmptyContent = errors.New("empty content")

	// ErrNotChunkable indicates fetched content produced no fragments and
	// is treated as corrupt source data. The fetch is discarded.
	ErrNotChunkable = errors.New("content not chunkable")

	// ErrConnectionClosed indicates the remote terminated the connection.
	// Treated like a timeout: unlikely to succeed on immediate retry.
	ErrConnectionClosed = errors.New("connection closed")
)

// FetchTimeoutError indicates a fetch exceeded its deadline.
type FetchTimeoutError struct {
	// Domain is the domain whose fetch timed out.
	Domain string

	// Timeout is the bound that was exceeded.
	Timeout time.Duration
}

func (e *FetchTimeoutError) Error() string {
	return fmt.Sprintf("fetch for %s timed out after %s", e.Domain, e.Timeout)
}

// HTTPStatusError indicates a non-success HTTP response.
type HTTPStatusError struct {
	// Domain is the domain whose fetch failed.
	Domain string

	// Status is the HTTP status code.
	Status int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("fetch for %s returned status %d", e.Domain, e.Status)
}

// RetryExhaustedError wraps the last failure after all retries are spent.
type RetryExhaustedError struct {
	// Domain is the domain that failed to load.
	Domain string

	// Attempts is the total number of load attempts made.
	Attempts int

	// Err is the last underlying failure.
	Err error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("load %s failed after %d attempts: %v", e.Domain, e.Attempts, e.Err)
}

// Unwrap exposes the underlying failure for errors.Is/As.
func (e *RetryExhaustedError) Unwrap() error {
	return e.Err
}
