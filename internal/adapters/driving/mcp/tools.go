package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

// QueryInput is the input schema for the query_docs tool.
type QueryInput struct {
	Query      string   `json:"query" jsonschema:"the documentation question or topic to search for"`
	Domains    []string `json:"domains,omitempty" jsonschema:"restrict the search to specific doc domains (default: auto-detect)"`
	MaxResults int      `json:"max_results,omitempty" jsonschema:"maximum number of fragments to return (default 20)"`
}

// QueryOutput is the output schema for the query_docs tool.
type QueryOutput struct {
	Results         []FragmentOutput `json:"results"`
	Count           int              `json:"count"`
	EstimatedTokens int              `json:"estimated_tokens"`
}

// FragmentOutput represents a single documentation fragment.
type FragmentOutput struct {
	Domain         string  `json:"domain"`
	Content        string  `json:"content"`
	Score          float64 `json:"score"`
	URL            string  `json:"url"`
	IsFullDocument bool    `json:"is_full_document"`
}

// PreloadInput is the input schema for the preload_docs tool.
type PreloadInput struct {
	Domains []string `json:"domains,omitempty" jsonschema:"doc domains to warm (default: all)"`
}

// PreloadOutput is the output schema for the preload_docs tool.
type PreloadOutput struct {
	Loaded []string `json:"loaded"`
}

// CacheStatusOutput is the output schema for the cache_status tool.
type CacheStatusOutput struct {
	Domains map[string]CacheEntryOutput `json:"domains"`
}

// CacheEntryOutput describes one domain's cache state.
type CacheEntryOutput struct {
	Loaded    bool   `json:"loaded"`
	Fresh     bool   `json:"fresh"`
	Age       string `json:"age,omitempty"`
	LastError string `json:"last_error,omitempty"`
}

// ClearCacheInput is the input schema for the clear_cache tool.
type ClearCacheInput struct {
	Domain string `json:"domain,omitempty" jsonschema:"domain to clear (default: all)"`
}

// ClearCacheOutput is the output schema for the clear_cache tool.
type ClearCacheOutput struct {
	Cleared string `json:"cleared"`
}

// EstimateInput is the input schema for the estimate_tokens tool.
type EstimateInput struct {
	Text string `json:"text" jsonschema:"the text to estimate a token count for"`
}

// EstimateOutput is the output schema for the estimate_tokens tool.
type EstimateOutput struct {
	Tokens int `json:"tokens"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "query_docs",
		Description: "Search permaweb documentation (AO, Arweave, AR.IO, HyperBEAM, glossary) for relevant fragments",
	}, s.handleQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "preload_docs",
		Description: "Eagerly fetch and cache documentation for faster queries",
	}, s.handlePreload)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "cache_status",
		Description: "Report per-domain documentation cache state",
	}, s.handleCacheStatus)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "clear_cache",
		Description: "Invalidate cached documentation for one domain or all domains",
	}, s.handleClearCache)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "estimate_tokens",
		Description: "Estimate the LLM token count of a text",
	}, s.handleEstimate)
}

// handleQuery handles the query_docs tool invocation.
func (s *Server) handleQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, QueryOutput, error) {
	opts := domain.QueryOptions{
		Domains:    input.Domains,
		MaxResults: input.MaxResults,
	}

	fragments, err := s.ports.Query.Query(ctx, input.Query, opts)
	if err != nil {
		return nil, QueryOutput{}, err
	}

	output := QueryOutput{
		Results:         make([]FragmentOutput, len(fragments)),
		Count:           len(fragments),
		EstimatedTokens: s.ports.Query.EstimateResponseTokens(fragments),
	}

	for i := range fragments {
		output.Results[i] = FragmentOutput{
			Domain:         fragments[i].Domain,
			Content:        fragments[i].Content,
			Score:          fragments[i].Score,
			URL:            fragments[i].URL,
			IsFullDocument: fragments[i].IsFullDocument,
		}
	}

	return nil, output, nil
}

// handlePreload handles the preload_docs tool invocation.
func (s *Server) handlePreload(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PreloadInput,
) (*mcp.CallToolResult, PreloadOutput, error) {
	if err := s.ports.Query.Preload(ctx, input.Domains); err != nil {
		return nil, PreloadOutput{}, err
	}

	domains := input.Domains
	if len(domains) == 0 {
		domains = s.ports.Query.AvailableDomains()
	}
	return nil, PreloadOutput{Loaded: domains}, nil
}

// handleCacheStatus handles the cache_status tool invocation.
func (s *Server) handleCacheStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, CacheStatusOutput, error) {
	status := s.ports.Query.CacheStatus(ctx)

	output := CacheStatusOutput{Domains: make(map[string]CacheEntryOutput, len(status))}
	for dom, entry := range status {
		out := CacheEntryOutput{
			Loaded:    entry.Loaded,
			Fresh:     entry.Fresh,
			LastError: entry.LastError,
		}
		if entry.Loaded {
			out.Age = entry.Age.Round(time.Second).String()
		}
		output.Domains[dom] = out
	}

	return nil, output, nil
}

// handleClearCache handles the clear_cache tool invocation.
func (s *Server) handleClearCache(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ClearCacheInput,
) (*mcp.CallToolResult, ClearCacheOutput, error) {
	if err := s.ports.Query.ClearCache(ctx, input.Domain); err != nil {
		return nil, ClearCacheOutput{}, err
	}

	cleared := input.Domain
	if cleared == "" {
		cleared = "all"
	}
	return nil, ClearCacheOutput{Cleared: cleared}, nil
}

// handleEstimate handles the estimate_tokens tool invocation.
func (s *Server) handleEstimate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input EstimateInput,
) (*mcp.CallToolResult, EstimateOutput, error) {
	return nil, EstimateOutput{Tokens: s.ports.Query.EstimateTokens(input.Text)}, nil
}
