package services

import (
	"fmt"
	"sort"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

// Registry is the immutable source table: one entry per documentation
// domain, loaded once at construction and never mutated afterwards.
type Registry struct {
	sources map[string]domain.Source
	order   []string
}

// NewRegistry builds a registry from the given sources.
// URL overrides replace a source's fetch location; an override for an
// unregistered domain is rejected.
func NewRegistry(sources []domain.Source, overrides map[string]string) (*Registry, error) {
	r := &Registry{
		sources: make(map[string]domain.Source, len(sources)),
		order:   make([]string, 0, len(sources)),
	}

	for _, src := range sources {
		r.sources[src.Domain] = src
		r.order = append(r.order, src.Domain)
	}

	for dom, url := range overrides {
		src, ok := r.sources[dom]
		if !ok {
			return nil, fmt.Errorf("source override %q: %w", dom, domain.ErrUnknownDomain)
		}
		src.URL = url
		r.sources[dom] = src
	}

	return r, nil
}

// NewDefaultRegistry builds a registry over the built-in source set.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(domain.DefaultSources(), nil)
	if err != nil {
		// Built-in sources carry no overrides; this cannot fail.
		panic(err)
	}
	return r
}

// Get returns the source for a domain.
func (r *Registry) Get(dom string) (domain.Source, error) {
	src, ok := r.sources[dom]
	if !ok {
		return domain.Source{}, fmt.Errorf("%q: %w", dom, domain.ErrUnknownDomain)
	}
	return src, nil
}

// Has reports whether a domain is registered.
func (r *Registry) Has(dom string) bool {
	_, ok := r.sources[dom]
	return ok
}

// Domains returns every registered domain in registration order.
func (r *Registry) Domains() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Sources returns every source, sorted by domain for stable output.
func (r *Registry) Sources() []domain.Source {
	out := make([]domain.Source, 0, len(r.sources))
	for _, src := range r.sources {
		out = append(out, src)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Domain < out[j].Domain })
	return out
}
