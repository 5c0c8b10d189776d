package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
	"github.com/permaweb-tools/permadocs-cli/internal/core/ports/driven"
	"github.com/permaweb-tools/permadocs-cli/internal/core/ports/driving"
	"github.com/permaweb-tools/permadocs-cli/internal/logger"
)

// Ensure QueryEngine implements the interface.
var _ driving.QueryService = (*QueryEngine)(nil)

const (
	// baseThreshold is the minimum score a fragment needs to be kept.
	baseThreshold = 2.0

	// relaxedPrefixLen is the prefix length for relaxed word containment.
	relaxedPrefixLen = 4
)

// strategy is one escalation step of the query pipeline.
type strategy struct {
	// name identifies the strategy in logs.
	name string

	// expand appends synonym expansions to the query text.
	expand bool

	// allDomains ignores domain detection and searches everything.
	allDomains bool

	// relaxed lowers the threshold and loosens word containment to
	// 4-character prefix matching.
	relaxed bool
}

// strategies are tried strictly in order; the first non-empty result set
// wins and later strategies are never paid for.
var strategies = []strategy{
	{name: "standard"},
	{name: "expanded", expand: true},
	{name: "broad", allDomains: true},
	{name: "relaxed", allDomains: true, relaxed: true},
}

// QueryEngine is the public entry point of the retrieval engine.
// It coordinates domain detection, loading, chunking and scoring across
// four escalating strategies.
type QueryEngine struct {
	registry *Registry
	detector *Detector
	loader   *Loader
	chunker  *Chunker
	cache    driven.CacheStore
}

// NewQueryEngine creates a query engine over the given collaborators.
func NewQueryEngine(
	registry *Registry,
	detector *Detector,
	loader *Loader,
	chunker *Chunker,
	cache driven.CacheStore,
) *QueryEngine {
	return &QueryEngine{
		registry: registry,
		detector: detector,
		loader:   loader,
		chunker:  chunker,
		cache:    cache,
	}
}

// Query answers a documentation query.
//
// Strategies run sequentially: standard, expanded, broad, relaxed. Each
// ensures its candidate domains are loaded (tolerating partial failure and
// stale cache), chunks the cached content, scores every chunk and keeps
// those meeting the strategy's threshold and containment rule. The first
// strategy with results short-circuits. Exhausting all four returns an
// empty list, not an error.
func (e *QueryEngine) Query(ctx context.Context, text string, opts domain.QueryOptions) ([]domain.Fragment, error) {
	logger.Section("Query Execution")
	logger.Debug("Query: %q", text)

	text = strings.TrimSpace(text)
	if text == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.Fragment{}, nil
	}

	// An explicitly requested unknown domain is a programmer error.
	for _, dom := range opts.Domains {
		if !e.registry.Has(dom) {
			return nil, fmt.Errorf("query domain %q: %w", dom, domain.ErrUnknownDomain)
		}
	}

	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = domain.DefaultMaxResults
	}

	for _, strat := range strategies {
		fragments := e.runStrategy(ctx, strat, text, opts.Domains, maxResults)
		if len(fragments) > 0 {
			logger.Info("Strategy %s: %d results", strat.name, len(fragments))
			return fragments, nil
		}
		logger.Debug("Strategy %s: no results, escalating", strat.name)
	}

	logger.Info("All strategies exhausted, returning empty result")
	return []domain.Fragment{}, nil
}

// runStrategy executes one escalation step and returns its ranked,
// capped fragments.
func (e *QueryEngine) runStrategy(
	ctx context.Context, strat strategy, text string, override []string, maxResults int,
) []domain.Fragment {
	domains := e.candidateDomains(strat, text, override)
	queryText := text
	if strat.expand {
		queryText = expandQuery(text)
		logger.Debug("Expanded query: %q", queryText)
	}

	threshold := baseThreshold
	if strat.relaxed {
		threshold = baseThreshold - 2
		if threshold < 1 {
			threshold = 1
		}
	}

	e.loader.EnsureLoaded(ctx, domains)

	var results []domain.Fragment
	for _, dom := range domains {
		doc, ok := e.cache.Get(ctx, dom)
		if !ok {
			logger.Debug("Strategy %s: no content for %s, skipping", strat.name, dom)
			continue
		}

		src, err := e.registry.Get(dom)
		if err != nil {
			// Cache never holds unregistered domains.
			continue
		}

		for _, frag := range e.chunker.Fragments(src, doc.Content) {
			score := Score(queryText, frag.Content, src)
			if score < threshold {
				continue
			}
			if !containsQueryWord(queryText, frag.Content, strat.relaxed) {
				continue
			}
			frag.Score = score
			results = append(results, frag)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results
}

// candidateDomains picks the domains a strategy searches.
func (e *QueryEngine) candidateDomains(strat strategy, text string, override []string) []string {
	if strat.allDomains {
		return e.registry.Domains()
	}
	if len(override) > 0 {
		return override
	}
	return e.detector.Detect(text)
}

// containsQueryWord applies the strategy's word-containment rule: exact
// substring normally, first-4-characters prefix matching when relaxed.
func containsQueryWord(query, chunk string, relaxed bool) bool {
	chunkLower := strings.ToLower(chunk)
	for _, word := range strings.Fields(strings.ToLower(query)) {
		if relaxed && len(word) >= 3 {
			prefix := word
			if len(prefix) > relaxedPrefixLen {
				prefix = prefix[:relaxedPrefixLen]
			}
			if strings.Contains(chunkLower, prefix) {
				return true
			}
			continue
		}
		if strings.Contains(chunkLower, word) {
			return true
		}
	}
	return false
}

// Preload eagerly warms the cache for the given domains, or every
// registered domain when the list is empty. Load failures degrade exactly
// like query-time loads.
func (e *QueryEngine) Preload(ctx context.Context, domains []string) error {
	if len(domains) == 0 {
		domains = e.registry.Domains()
	}
	for _, dom := range domains {
		if !e.registry.Has(dom) {
			return fmt.Errorf("preload domain %q: %w", dom, domain.ErrUnknownDomain)
		}
	}

	logger.Section("Preload")
	e.loader.EnsureLoaded(ctx, domains)
	return nil
}

// AvailableDomains lists every registered domain identifier.
func (e *QueryEngine) AvailableDomains() []string {
	return e.registry.Domains()
}

// Sources lists every registered documentation source in domain order.
func (e *QueryEngine) Sources() []domain.Source {
	return e.registry.Sources()
}

// DomainContent returns the cached documentation for a domain, loading it
// on demand. Stale content is served when a refresh fails.
func (e *QueryEngine) DomainContent(ctx context.Context, dom string) (string, error) {
	if !e.registry.Has(dom) {
		return "", fmt.Errorf("domain content %q: %w", dom, domain.ErrUnknownDomain)
	}

	e.loader.EnsureLoaded(ctx, []string{dom})

	doc, ok := e.cache.Get(ctx, dom)
	if !ok {
		if err := e.loader.LastError(dom); err != nil {
			return "", err
		}
		return "", fmt.Errorf("domain content %q: nothing cached", dom)
	}
	return doc.Content, nil
}

// IsLoaded reports whether a domain has a fresh cached document.
func (e *QueryEngine) IsLoaded(ctx context.Context, dom string) bool {
	return e.cache.Fresh(ctx, dom)
}

// CacheStatus reports per-domain cache state, including the last load
// failure recorded by the loader.
func (e *QueryEngine) CacheStatus(ctx context.Context) map[string]domain.CacheEntryStatus {
	status := e.cache.Status(ctx)

	// Registered-but-never-loaded domains still appear in the report.
	out := make(map[string]domain.CacheEntryStatus, len(e.registry.order))
	for _, dom := range e.registry.Domains() {
		entry := status[dom]
		if err := e.loader.LastError(dom); err != nil {
			entry.LastError = err.Error()
		}
		out[dom] = entry
	}
	return out
}

// ClearCache invalidates one domain, or every domain when dom is empty.
func (e *QueryEngine) ClearCache(ctx context.Context, dom string) error {
	if dom == "" {
		e.cache.InvalidateAll(ctx)
		logger.Info("Cache cleared for all domains")
		return nil
	}
	if !e.registry.Has(dom) {
		return fmt.Errorf("clear cache %q: %w", dom, domain.ErrUnknownDomain)
	}
	e.cache.Invalidate(ctx, dom)
	logger.Info("Cache cleared for %s", dom)
	return nil
}

// EstimateTokens estimates the LLM token count of a text.
func (e *QueryEngine) EstimateTokens(text string) int {
	return EstimateTokens(text)
}

// EstimateResponseTokens estimates the combined token count of fragments.
func (e *QueryEngine) EstimateResponseTokens(fragments []domain.Fragment) int {
	return EstimateResponseTokens(fragments)
}
