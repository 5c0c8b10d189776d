package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for Permadocs resources.
	uriScheme = "permadocs://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing doc domains.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "domains",
		Name:        "domains",
		Description: "List of all registered documentation domains",
		MIMEType:    "application/json",
	}, s.handleDomainsResource)

	// Template for cached domain content.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "domains/{domain}",
		Name:        "domain-content",
		Description: "Cached documentation content for a specific domain",
		MIMEType:    "text/plain",
	}, s.handleDomainContentResource)
}

// handleDomainsResource returns a list of all registered doc domains.
func (s *Server) handleDomainsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	sources := s.ports.Query.Sources()
	status := s.ports.Query.CacheStatus(ctx)

	// Build simplified domain list.
	type domainInfo struct {
		Domain string `json:"domain"`
		Name   string `json:"name"`
		URL    string `json:"url"`
		Loaded bool   `json:"loaded"`
	}

	infos := make([]domainInfo, len(sources))
	for i, src := range sources {
		infos[i] = domainInfo{
			Domain: src.Domain,
			Name:   src.Name,
			URL:    src.URL,
			Loaded: status[src.Domain].Loaded,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling domains: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDomainContentResource returns the cached content of a domain.
func (s *Server) handleDomainContentResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract domain from URI: permadocs://domains/{domain}
	dom := extractDomain(req.Params.URI)
	if dom == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	content, err := s.ports.Query.DomainContent(ctx, dom)
	if err != nil {
		return nil, fmt.Errorf("getting domain content: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     content,
		}},
	}, nil
}

// extractDomain extracts the domain from a URI like permadocs://domains/{domain}.
func extractDomain(uri string) string {
	const prefix = uriScheme + "domains/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	dom := strings.TrimPrefix(uri, prefix)
	if strings.Contains(dom, "/") {
		return ""
	}
	return dom
}
