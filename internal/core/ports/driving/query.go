package driving

import (
	"context"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

// QueryService answers documentation queries for external actors.
//
// Query never fails for ordinary network flakiness: unreachable domains are
// skipped or served from stale cache, and an empty result list is a valid
// answer. The only hard failures are programmer errors, such as an
// explicitly requested domain that is not in the registry.
type QueryService interface {
	// Query returns relevant documentation fragments for the text,
	// sorted by descending score and capped at opts.MaxResults.
	Query(ctx context.Context, text string, opts domain.QueryOptions) ([]domain.Fragment, error)

	// Preload eagerly warms the cache for the given domains
	// (all registered domains when empty). Individual load failures
	// are logged, not returned.
	Preload(ctx context.Context, domains []string) error

	// AvailableDomains lists every registered domain identifier.
	AvailableDomains() []string

	// Sources lists every registered documentation source in domain order.
	Sources() []domain.Source

	// DomainContent returns the cached documentation for a domain,
	// loading it on demand. Stale content is acceptable.
	DomainContent(ctx context.Context, dom string) (string, error)

	// IsLoaded reports whether a domain has a fresh cached document.
	IsLoaded(ctx context.Context, dom string) bool

	// CacheStatus reports per-domain cache state.
	CacheStatus(ctx context.Context) map[string]domain.CacheEntryStatus

	// ClearCache invalidates one domain, or every domain when dom is empty.
	ClearCache(ctx context.Context, dom string) error

	// EstimateTokens estimates the LLM token count of a text.
	EstimateTokens(text string) int

	// EstimateResponseTokens estimates the combined token count of fragments.
	EstimateResponseTokens(fragments []domain.Fragment) int
}

// Refresher keeps cached documentation fresh in the background.
type Refresher interface {
	// Start begins the refresh loop. It blocks until the context is
	// cancelled or Stop is called.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the refresh loop.
	Stop() error
}
