package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/permaweb-tools/permadocs-cli/internal/adapters/driven/config/file"
	"github.com/permaweb-tools/permadocs-cli/internal/adapters/driving/mcp"
	"github.com/permaweb-tools/permadocs-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

While serving, cached documentation is refreshed in the background and
configuration changes are picked up without a restart.

Examples:
  # Stdio mode (default, for Claude Desktop)
  permadocs mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  permadocs mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "permadocs": {
        "command": "/path/to/permadocs",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{Query: queryService})
	if err != nil {
		return err
	}

	// The server is long-running: keep the cache warm in the background.
	if refresher != nil {
		refreshCtx, refreshCancel := context.WithCancel(context.Background())
		defer refreshCancel()

		go func() {
			if err := refresher.Start(refreshCtx); err != nil && refreshCtx.Err() == nil {
				logger.Warn("Refresher stopped: %v", err)
			}
		}()

		defer func() {
			if err := refresher.Stop(); err != nil {
				logger.Warn("Refresher stop error: %v", err)
			}
		}()
	}

	// Pick up config edits without a restart.
	if configStore != nil {
		if err := configStore.Watch(applyConfigReload); err != nil {
			logger.Warn("Config watch unavailable: %v", err)
		}
		defer configStore.Close() //nolint:errcheck
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// applyConfigReload reapplies reloadable settings after a config change:
// the debug toggle here, everything else via the reload hook.
func applyConfigReload() {
	logger.SetDebug(debugFlag || configStore.GetBool(file.KeyDebug))
	if onConfigReload != nil {
		onConfigReload()
	}
}
