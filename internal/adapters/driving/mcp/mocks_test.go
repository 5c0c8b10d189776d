package mcp

import (
	"context"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

// mockQueryService is a mock implementation of driving.QueryService.
type mockQueryService struct {
	fragments []domain.Fragment
	sources   []domain.Source
	status    map[string]domain.CacheEntryStatus
	content   string
	err       error

	preloaded []string
	cleared   []string
}

func (m *mockQueryService) Query(
	_ context.Context,
	_ string,
	_ domain.QueryOptions,
) ([]domain.Fragment, error) {
	return m.fragments, m.err
}

func (m *mockQueryService) Preload(_ context.Context, domains []string) error {
	m.preloaded = append(m.preloaded, domains...)
	return m.err
}

func (m *mockQueryService) AvailableDomains() []string {
	domains := make([]string, len(m.sources))
	for i, src := range m.sources {
		domains[i] = src.Domain
	}
	return domains
}

func (m *mockQueryService) Sources() []domain.Source {
	return m.sources
}

func (m *mockQueryService) DomainContent(_ context.Context, _ string) (string, error) {
	return m.content, m.err
}

func (m *mockQueryService) IsLoaded(_ context.Context, dom string) bool {
	return m.status[dom].Fresh
}

func (m *mockQueryService) CacheStatus(_ context.Context) map[string]domain.CacheEntryStatus {
	return m.status
}

func (m *mockQueryService) ClearCache(_ context.Context, dom string) error {
	if m.err != nil {
		return m.err
	}
	m.cleared = append(m.cleared, dom)
	return nil
}

func (m *mockQueryService) EstimateTokens(text string) int {
	return (len(text) + 3) / 4
}

func (m *mockQueryService) EstimateResponseTokens(fragments []domain.Fragment) int {
	total := 0
	for _, frag := range fragments {
		total += m.EstimateTokens(frag.Content)
	}
	return total
}
