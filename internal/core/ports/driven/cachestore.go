package driven

import (
	"context"
	"time"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

// CacheStore holds at most one cached document per domain.
//
// Writes replace the whole entry, so concurrent readers never observe a
// half-written document. The cache is process-local and rebuilt from
// source on restart.
type CacheStore interface {
	// Get retrieves the cached document for a domain.
	// The second return is false when no entry exists.
	Get(ctx context.Context, dom string) (*domain.CachedDoc, bool)

	// Put stores content for a domain, stamping the current time.
	Put(ctx context.Context, dom, content string)

	// Fresh reports whether a fresh entry exists for the domain.
	Fresh(ctx context.Context, dom string) bool

	// Invalidate removes the entry for a domain.
	Invalidate(ctx context.Context, dom string)

	// InvalidateAll removes every entry.
	InvalidateAll(ctx context.Context)

	// Status reports loaded/fresh/age for every known entry.
	Status(ctx context.Context) map[string]domain.CacheEntryStatus

	// Len returns the number of cached entries.
	Len(ctx context.Context) int
}

// Clock abstracts time for freshness checks. Production code uses the
// real clock; tests inject a fixed one.
type Clock func() time.Time
