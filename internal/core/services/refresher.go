package services

import (
	"context"
	"sync"
	"time"

	"github.com/permaweb-tools/permadocs-cli/internal/core/ports/driving"
	"github.com/permaweb-tools/permadocs-cli/internal/logger"
)

// Ensure Refresher implements the interface.
var _ driving.Refresher = (*Refresher)(nil)

// DefaultRefreshInterval is how often the refresher checks for stale domains.
const DefaultRefreshInterval = 30 * time.Minute

// Refresher periodically re-loads stale cached documentation while a
// long-running surface (MCP server, TUI) is up. Failures degrade the same
// way query-time loads do: logged, stale entries kept.
type Refresher struct {
	loader   *Loader
	registry *Registry
	interval time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	wg      sync.WaitGroup
}

// NewRefresher creates a refresher with the given check interval.
// A non-positive interval falls back to the default.
func NewRefresher(loader *Loader, registry *Registry, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		loader:   loader,
		registry: registry,
		interval: interval,
	}
}

// Start begins the refresh loop. This method blocks until Stop is called
// or the context is cancelled.
func (r *Refresher) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil // Already running
	}
	r.running = true
	r.stopCh = make(chan struct{})
	stopCh := r.stopCh
	r.mu.Unlock()

	logger.Info("Refresher started: interval %s", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			r.wg.Add(1)
			func() {
				defer r.wg.Done()
				logger.Debug("Refresher tick: checking %d domains", len(r.registry.Domains()))
				r.loader.EnsureLoaded(ctx, r.registry.Domains())
			}()
		}
	}
}

// Stop gracefully shuts down the refresh loop.
func (r *Refresher) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.running = false
	close(r.stopCh)
	r.mu.Unlock()

	// Wait for an in-flight refresh to finish
	r.wg.Wait()
	return nil
}
