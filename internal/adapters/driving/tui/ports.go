// Package tui implements the interactive terminal UI for permadocs
// using Bubbletea. The single view combines a query input with a
// scrollable results pane.
package tui

import (
	"errors"

	"github.com/permaweb-tools/permadocs-cli/internal/core/ports/driving"
)

// ErrMissingQueryService is returned when the query service is not provided.
var ErrMissingQueryService = errors.New("tui: query service is required")

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Query answers documentation queries.
	Query driving.QueryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Query == nil {
		return ErrMissingQueryService
	}
	return nil
}
