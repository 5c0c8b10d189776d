package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

func TestServer_handleQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("returns ranked fragments", func(t *testing.T) {
		mockQuery := &mockQueryService{
			fragments: []domain.Fragment{
				{
					Domain:         "ao",
					Content:        "Processes communicate via messages",
					Score:          5,
					URL:            "https://example.com/ao.txt",
					IsFullDocument: false,
				},
			},
		}

		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		input := QueryInput{Query: "ao messages"}
		_, output, err := server.handleQuery(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Results, 1)
		assert.Equal(t, "ao", output.Results[0].Domain)
		assert.Equal(t, "Processes communicate via messages", output.Results[0].Content)
		assert.Equal(t, 5.0, output.Results[0].Score)
		assert.Equal(t, "https://example.com/ao.txt", output.Results[0].URL)
		assert.Positive(t, output.EstimatedTokens)
	})

	t.Run("empty result set is not an error", func(t *testing.T) {
		server, err := NewServer(&Ports{Query: &mockQueryService{}})
		require.NoError(t, err)

		_, output, err := server.handleQuery(ctx, nil, QueryInput{Query: "nothing"})

		require.NoError(t, err)
		assert.Equal(t, 0, output.Count)
		assert.Empty(t, output.Results)
	})

	t.Run("returns error on unknown domain", func(t *testing.T) {
		mockQuery := &mockQueryService{err: domain.ErrUnknownDomain}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		input := QueryInput{Query: "test", Domains: []string{"nope"}}
		_, _, err = server.handleQuery(ctx, nil, input)

		assert.ErrorIs(t, err, domain.ErrUnknownDomain)
	})
}

func TestServer_handlePreload(t *testing.T) {
	ctx := context.Background()

	t.Run("preloads requested domains", func(t *testing.T) {
		mockQuery := &mockQueryService{}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		_, output, err := server.handlePreload(ctx, nil, PreloadInput{Domains: []string{"ao"}})

		require.NoError(t, err)
		assert.Equal(t, []string{"ao"}, output.Loaded)
		assert.Equal(t, []string{"ao"}, mockQuery.preloaded)
	})

	t.Run("empty input preloads all domains", func(t *testing.T) {
		mockQuery := &mockQueryService{
			sources: []domain.Source{{Domain: "ao"}, {Domain: "arweave"}},
		}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		_, output, err := server.handlePreload(ctx, nil, PreloadInput{})

		require.NoError(t, err)
		assert.Equal(t, []string{"ao", "arweave"}, output.Loaded)
	})

	t.Run("returns error on preload failure", func(t *testing.T) {
		mockQuery := &mockQueryService{err: errors.New("preload failed")}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		_, _, err = server.handlePreload(ctx, nil, PreloadInput{Domains: []string{"ao"}})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "preload failed")
	})
}

func TestServer_handleCacheStatus(t *testing.T) {
	ctx := context.Background()

	mockQuery := &mockQueryService{
		status: map[string]domain.CacheEntryStatus{
			"ao":      {Loaded: true, Fresh: true, Age: 90 * time.Minute},
			"arweave": {LastError: "fetch for arweave returned status 503"},
		},
	}
	server, err := NewServer(&Ports{Query: mockQuery})
	require.NoError(t, err)

	_, output, err := server.handleCacheStatus(ctx, nil, struct{}{})

	require.NoError(t, err)
	assert.Len(t, output.Domains, 2)
	assert.True(t, output.Domains["ao"].Loaded)
	assert.Equal(t, "1h30m0s", output.Domains["ao"].Age)
	assert.False(t, output.Domains["arweave"].Loaded)
	assert.Empty(t, output.Domains["arweave"].Age)
	assert.Contains(t, output.Domains["arweave"].LastError, "503")
}

func TestServer_handleClearCache(t *testing.T) {
	ctx := context.Background()

	t.Run("clears a single domain", func(t *testing.T) {
		mockQuery := &mockQueryService{}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		_, output, err := server.handleClearCache(ctx, nil, ClearCacheInput{Domain: "ao"})

		require.NoError(t, err)
		assert.Equal(t, "ao", output.Cleared)
		assert.Equal(t, []string{"ao"}, mockQuery.cleared)
	})

	t.Run("empty domain clears everything", func(t *testing.T) {
		mockQuery := &mockQueryService{}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		_, output, err := server.handleClearCache(ctx, nil, ClearCacheInput{})

		require.NoError(t, err)
		assert.Equal(t, "all", output.Cleared)
	})

	t.Run("returns error on unknown domain", func(t *testing.T) {
		mockQuery := &mockQueryService{err: domain.ErrUnknownDomain}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		_, _, err = server.handleClearCache(ctx, nil, ClearCacheInput{Domain: "nope"})

		assert.ErrorIs(t, err, domain.ErrUnknownDomain)
	})
}

func TestServer_handleEstimate(t *testing.T) {
	server, err := NewServer(&Ports{Query: &mockQueryService{}})
	require.NoError(t, err)

	_, output, err := server.handleEstimate(context.Background(), nil, EstimateInput{
		Text: "0123456789abcdef",
	})

	require.NoError(t, err)
	assert.Equal(t, 4, output.Tokens)
}
