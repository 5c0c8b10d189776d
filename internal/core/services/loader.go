package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
	"github.com/permaweb-tools/permadocs-cli/internal/core/ports/driven"
	"github.com/permaweb-tools/permadocs-cli/internal/logger"
)

const (
	// DefaultMaxRetries is how many times a failed load is retried.
	DefaultMaxRetries = 2

	// validationPrefix bounds how much content the pre-commit chunkability
	// check runs over.
	validationPrefix = 10000
)

// Loader fetches documentation for a domain and writes it through to the
// cache. Fetched content is validated (non-empty, chunkable) before the
// cache is touched; a failed load leaves any previous entry intact.
type Loader struct {
	registry *Registry
	fetcher  driven.Fetcher
	cache    driven.CacheStore
	chunker  *Chunker

	// sleep is swapped out in tests to avoid real backoff delays.
	sleep func(ctx context.Context, d time.Duration) error

	// lastErr records the most recent load failure per domain for
	// status reporting. Cleared on success.
	mu      sync.Mutex
	lastErr map[string]error
}

// NewLoader creates a loader over the given ports.
func NewLoader(registry *Registry, fetcher driven.Fetcher, cache driven.CacheStore, chunker *Chunker) *Loader {
	return &Loader{
		registry: registry,
		fetcher:  fetcher,
		cache:    cache,
		chunker:  chunker,
		sleep:    sleepCtx,
		lastErr:  make(map[string]error),
	}
}

// Load fetches a domain's documentation and commits it to the cache.
func (l *Loader) Load(ctx context.Context, dom string) error {
	src, err := l.registry.Get(dom)
	if err != nil {
		return err
	}

	content, err := l.fetcher.Fetch(ctx, dom, src.URL)
	if err != nil {
		return err
	}

	if content == "" {
		return fmt.Errorf("%s: %w", dom, domain.ErrEmptyContent)
	}

	// Validate chunkability over a bounded prefix before committing.
	prefix := content
	if len(prefix) > validationPrefix {
		prefix = prefix[:validationPrefix]
	}
	if len(l.chunker.Split(dom, prefix)) == 0 {
		return fmt.Errorf("%s: %w", dom, domain.ErrNotChunkable)
	}

	l.cache.Put(ctx, dom, content)
	logger.Info("Loaded %s: %d chars", dom, len(content))
	return nil
}

// LoadWithRetry loads a domain, retrying transient failures with
// exponential backoff (2^n seconds before attempt n).
//
// Timeouts and terminated connections fail fast: an immediate retry is
// unlikely to succeed against an unresponsive mirror. Unknown domains are
// programmer errors and are returned as-is.
func (l *Loader) LoadWithRetry(ctx context.Context, dom string, maxRetries int) error {
	var lastErr error

	attempts := 0
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(1<<uint(attempt-1)) * time.Second
			logger.Debug("Retrying %s in %s (attempt %d)", dom, delay, attempt+1)
			if err := l.sleep(ctx, delay); err != nil {
				lastErr = err
				break
			}
		}

		attempts++
		err := l.Load(ctx, dom)
		if err == nil {
			l.setLastError(dom, nil)
			return nil
		}
		lastErr = err

		if errors.Is(err, domain.ErrUnknownDomain) {
			l.setLastError(dom, err)
			return err
		}
		if !isRetryable(err) {
			logger.Warn("Load %s failed fast: %v", dom, err)
			break
		}
		logger.Warn("Load %s failed: %v", dom, err)
	}

	wrapped := &domain.RetryExhaustedError{Domain: dom, Attempts: attempts, Err: lastErr}
	l.setLastError(dom, wrapped)
	return wrapped
}

// loadOutcome is one domain's result from a concurrent EnsureLoaded.
type loadOutcome struct {
	domain string
	err    error
}

// EnsureLoaded makes sure every listed domain has a usable cached
// document. Stale or missing entries are loaded concurrently; one
// domain's failure never aborts or cancels the others. Failures are
// logged and recorded, never returned: the caller proceeds with whichever
// domains have content, stale entries included.
func (l *Loader) EnsureLoaded(ctx context.Context, domains []string) {
	var needed []string
	for _, dom := range domains {
		if !l.cache.Fresh(ctx, dom) {
			needed = append(needed, dom)
		}
	}
	if len(needed) == 0 {
		logger.Debug("All %d domains fresh, no loads needed", len(domains))
		return
	}

	logger.Debug("Loading %d stale/missing domains: %v", len(needed), needed)

	outcomes := make([]loadOutcome, len(needed))
	var wg sync.WaitGroup
	for i, dom := range needed {
		wg.Add(1)
		go func(i int, dom string) {
			defer wg.Done()
			outcomes[i] = loadOutcome{domain: dom, err: l.LoadWithRetry(ctx, dom, DefaultMaxRetries)}
		}(i, dom)
	}
	wg.Wait()

	for _, out := range outcomes {
		if out.err == nil {
			continue
		}
		if _, ok := l.cache.Get(ctx, out.domain); ok {
			logger.Warn("Load %s failed, serving stale cache: %v", out.domain, out.err)
		} else {
			logger.Warn("Load %s failed, no cached fallback: %v", out.domain, out.err)
		}
	}
}

// LastError returns the most recent load failure for a domain, if any.
func (l *Loader) LastError(dom string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr[dom]
}

func (l *Loader) setLastError(dom string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err == nil {
		delete(l.lastErr, dom)
		return
	}
	l.lastErr[dom] = err
}

// isRetryable reports whether a load failure is worth an immediate retry.
func isRetryable(err error) bool {
	var timeout *domain.FetchTimeoutError
	if errors.As(err, &timeout) {
		return false
	}
	if errors.Is(err, domain.ErrConnectionClosed) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	return true
}

// sleepCtx waits for the duration or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
