package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

func TestServer_handleDomainsResource(t *testing.T) {
	mockQuery := &mockQueryService{
		sources: []domain.Source{
			{Domain: "ao", Name: "AO", URL: "https://example.com/ao.txt"},
			{Domain: "arweave", Name: "Arweave", URL: "https://example.com/arweave.txt"},
		},
		status: map[string]domain.CacheEntryStatus{
			"ao": {Loaded: true, Fresh: true, Age: time.Minute},
		},
	}
	server, err := NewServer(&Ports{Query: mockQuery})
	require.NoError(t, err)

	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uriScheme + "domains"},
	}
	result, err := server.handleDomainsResource(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, `"domain": "ao"`)
	assert.Contains(t, result.Contents[0].Text, `"loaded": true`)
	assert.Contains(t, result.Contents[0].Text, "https://example.com/arweave.txt")
}

func TestServer_handleDomainContentResource(t *testing.T) {
	t.Run("returns cached content", func(t *testing.T) {
		mockQuery := &mockQueryService{content: "AO is a decentralized compute layer."}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: uriScheme + "domains/ao"},
		}
		result, err := server.handleDomainContentResource(context.Background(), req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
		assert.Equal(t, "AO is a decentralized compute layer.", result.Contents[0].Text)
	})

	t.Run("rejects malformed URI", func(t *testing.T) {
		server, err := NewServer(&Ports{Query: &mockQueryService{}})
		require.NoError(t, err)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: uriScheme + "other/ao"},
		}
		_, err = server.handleDomainContentResource(context.Background(), req)

		assert.Error(t, err)
	})

	t.Run("propagates unknown domain", func(t *testing.T) {
		mockQuery := &mockQueryService{err: domain.ErrUnknownDomain}
		server, err := NewServer(&Ports{Query: mockQuery})
		require.NoError(t, err)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: uriScheme + "domains/nope"},
		}
		_, err = server.handleDomainContentResource(context.Background(), req)

		assert.ErrorIs(t, err, domain.ErrUnknownDomain)
	})
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"valid", "permadocs://domains/ao", "ao"},
		{"glossary", "permadocs://domains/permaweb-glossary", "permaweb-glossary"},
		{"wrong prefix", "permadocs://sources/ao", ""},
		{"trailing segment", "permadocs://domains/ao/extra", ""},
		{"bare list URI", "permadocs://domains", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDomain(tt.uri))
		})
	}
}
