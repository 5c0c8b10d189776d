// Package cli implements the cobra command tree for permadocs.
//
// Commands talk to the core exclusively through driving ports. The
// composition root in cmd/permadocs wires concrete services into this
// package before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/permaweb-tools/permadocs-cli/internal/adapters/driven/config/file"
	"github.com/permaweb-tools/permadocs-cli/internal/core/ports/driving"
	"github.com/permaweb-tools/permadocs-cli/internal/logger"
)

// version is the CLI version, overridable at build time via ldflags.
var version = "0.1.0"

// Services injected by the composition root.
var (
	queryService driving.QueryService
	refresher    driving.Refresher
	configStore  *file.ConfigStore
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "permadocs",
	Short: "Permaweb documentation from your terminal",
	Long: `Permadocs fetches, caches and searches documentation for the
permaweb ecosystem: AO, Arweave, AR.IO, HyperBEAM and the community
glossary.

Queries auto-detect which documentation domains are relevant, load them
on demand and return the best-scoring fragments. Run the MCP server to
give AI assistants the same capabilities.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if debugFlag {
			logger.SetDebug(true)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
}

// SetServices injects the driving services used by the commands.
func SetServices(query driving.QueryService, r driving.Refresher) {
	queryService = query
	refresher = r
}

// SetConfigStore injects the config store used by the config commands.
func SetConfigStore(store *file.ConfigStore) {
	configStore = store
}

// onConfigReload runs after each config reload while serving. The
// composition root uses it to reapply settings that live outside this
// package, such as the chunk size.
var onConfigReload func()

// SetConfigReloadHook registers a callback applied after config reloads.
func SetConfigReloadHook(fn func()) {
	onConfigReload = fn
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
