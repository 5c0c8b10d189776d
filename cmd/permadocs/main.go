// Command permadocs is the permaweb documentation CLI and MCP server.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/permaweb-tools/permadocs-cli/internal/adapters/driven/config/file"
	"github.com/permaweb-tools/permadocs-cli/internal/adapters/driven/fetch/httpfetch"
	"github.com/permaweb-tools/permadocs-cli/internal/adapters/driven/storage/memory"
	"github.com/permaweb-tools/permadocs-cli/internal/adapters/driving/cli"
	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
	"github.com/permaweb-tools/permadocs-cli/internal/core/services"
	"github.com/permaweb-tools/permadocs-cli/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the composition root: it wires driven adapters into the core
// services and injects the result into the CLI.
func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	if configStore.GetBool(file.KeyDebug) {
		logger.SetDebug(true)
	}

	registry, err := services.NewRegistry(domain.DefaultSources(), configStore.SourceOverrides())
	if err != nil {
		return fmt.Errorf("building source registry: %w", err)
	}

	chunkerOpts := []services.ChunkerOption{}
	if size := configStore.GetInt(file.KeyChunkSize); size > 0 {
		chunkerOpts = append(chunkerOpts, services.WithChunkSize(size))
	}
	chunker := services.NewChunker(chunkerOpts...)

	cache := memory.NewCacheStore()
	fetcher := httpfetch.New()
	loader := services.NewLoader(registry, fetcher, cache, chunker)
	detector := services.NewDetector(registry)
	engine := services.NewQueryEngine(registry, detector, loader, chunker, cache)

	refreshInterval := time.Duration(configStore.GetInt(file.KeyRefreshMinutes)) * time.Minute
	refresher := services.NewRefresher(loader, registry, refreshInterval)

	cli.SetServices(engine, refresher)
	cli.SetConfigStore(configStore)
	cli.SetConfigReloadHook(func() {
		if size := configStore.GetInt(file.KeyChunkSize); size > 0 {
			chunker.SetChunkSize(size)
		}
	})

	return cli.Execute()
}
