package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/permaweb-tools/permadocs-cli/internal/adapters/driven/config/file"
	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

// --- Mock implementations ---

// mockQueryService is a mock implementation of driving.QueryService.
type mockQueryService struct {
	fragments []domain.Fragment
	sources   []domain.Source
	status    map[string]domain.CacheEntryStatus
	loaded    map[string]bool
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
	if m.err != nil {
		return m.err
	}
	m.preloaded = append(m.preloaded, domains...)
	return nil
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
	return m.loaded[dom]
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

// mockQueryServiceError always fails.
type mockQueryServiceError struct {
	mockQueryService
}

func newMockQueryServiceError() *mockQueryServiceError {
	return &mockQueryServiceError{mockQueryService{err: errors.New("service unavailable")}}
}

// setupTestServices installs a default mock query service and returns a
// cleanup func restoring the previous wiring.
func setupTestServices() func() {
	oldQuery := queryService
	queryService = &mockQueryService{
		fragments: []domain.Fragment{
			{
				Domain:  "ao",
				Content: "Processes communicate by passing messages.",
				Score:   4,
				URL:     "https://example.com/ao.txt",
			},
		},
		sources: []domain.Source{
			{Domain: "ao", Name: "AO", URL: "https://example.com/ao.txt"},
			{Domain: "arweave", Name: "Arweave", URL: "https://example.com/arweave.txt"},
		},
		status: map[string]domain.CacheEntryStatus{
			"ao": {Loaded: true, Fresh: true},
		},
		loaded: map[string]bool{"ao": true},
	}

	return func() {
		queryService = oldQuery
	}
}

// setupTestConfigStore installs a config store backed by a temp dir.
func setupTestConfigStore(t *testing.T) func() {
	t.Helper()

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	oldStore := configStore
	configStore = store

	return func() {
		configStore = oldStore
	}
}
