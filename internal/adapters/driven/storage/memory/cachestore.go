// Package memory provides in-memory implementations of driven storage
// ports. The cache is process-local and rebuilt from source on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
	"github.com/permaweb-tools/permadocs-cli/internal/core/ports/driven"
)

// Ensure CacheStore implements the interface.
var _ driven.CacheStore = (*CacheStore)(nil)

// CacheStore is an in-memory implementation of driven.CacheStore.
// Writes replace whole entries under the lock, so readers never observe a
// partially updated document.
type CacheStore struct {
	mu      sync.RWMutex
	entries map[string]domain.CachedDoc
	now     driven.Clock
}

// NewCacheStore creates a new in-memory cache store.
func NewCacheStore() *CacheStore {
	return &CacheStore{
		entries: make(map[string]domain.CachedDoc),
		now:     time.Now,
	}
}

// SetClock replaces the freshness clock. Useful for testing expiry.
func (s *CacheStore) SetClock(clock driven.Clock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if clock != nil {
		s.now = clock
	}
}

// Get retrieves the cached document for a domain.
func (s *CacheStore) Get(_ context.Context, dom string) (*domain.CachedDoc, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[dom]
	if !ok {
		return nil, false
	}
	return &entry, true
}

// Put stores content for a domain, stamping the current time.
func (s *CacheStore) Put(_ context.Context, dom, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[dom] = domain.CachedDoc{
		Domain:    dom,
		Content:   content,
		FetchedAt: s.now(),
	}
}

// Fresh reports whether a fresh entry exists for the domain.
func (s *CacheStore) Fresh(_ context.Context, dom string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[dom]
	if !ok {
		return false
	}
	return entry.Fresh(s.now())
}

// Invalidate removes the entry for a domain.
func (s *CacheStore) Invalidate(_ context.Context, dom string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, dom)
}

// InvalidateAll removes every entry.
func (s *CacheStore) InvalidateAll(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]domain.CachedDoc)
}

// Status reports loaded/fresh/age for every cached entry.
func (s *CacheStore) Status(_ context.Context) map[string]domain.CacheEntryStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now()
	status := make(map[string]domain.CacheEntryStatus, len(s.entries))
	for dom := range s.entries {
		entry := s.entries[dom]
		status[dom] = domain.CacheEntryStatus{
			Loaded: true,
			Fresh:  entry.Fresh(now),
			Age:    entry.Age(now),
		}
	}
	return status
}

// Len returns the number of cached entries.
func (s *CacheStore) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
