package domain

import "time"

// CacheMaxAge is how long a cached document counts as fresh.
const CacheMaxAge = 24 * time.Hour

// CachedDoc is a fetched documentation file held in the in-memory cache.
// There is at most one per domain; a successful fetch replaces the whole
// entry, a failed fetch leaves the previous (possibly stale) entry intact.
type CachedDoc struct {
	// Domain links to the Source that produced this document.
	Domain string

	// Content is the full raw text as fetched.
	Content string

	// FetchedAt is when the content was retrieved.
	FetchedAt time.Time
}

// Age returns how long ago the document was fetched.
func (d *CachedDoc) Age(now time.Time) time.Duration {
	return now.Sub(d.FetchedAt)
}

// Fresh reports whether the document is within the freshness window.
func (d *CachedDoc) Fresh(now time.Time) bool {
	return d.Age(now) < CacheMaxAge
}

// CacheEntryStatus describes one domain's cache state for status reporting.
type CacheEntryStatus struct {
	// Loaded is true when a cached document exists for the domain.
	Loaded bool

	// Fresh is true when the entry exists and is within the freshness window.
	Fresh bool

	// Age is the time since the entry was fetched. Zero when not loaded.
	Age time.Duration

	// LastError is the most recent load failure for the domain, if any.
	LastError string
}
