// Package mcp provides an MCP (Model Context Protocol) server adapter for
// Permadocs. It lets AI assistants query permaweb documentation and manage
// the documentation cache.
package mcp

import "errors"

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("mcp: query service is required")
