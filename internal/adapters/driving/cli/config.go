package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/permaweb-tools/permadocs-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and edit permadocs configuration.

Settings:
  chunk_size                - maximum fragment size in characters
  debug                     - enable debug logging
  refresh_interval_minutes  - background refresh interval for the MCP server

Per-domain source URL overrides live in the [sources] table and can be
set with 'config set sources.<domain> <url>'.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println("Configuration")
	cmd.Println("=============")
	cmd.Println()
	cmd.Printf("  %s: %d\n", file.KeyChunkSize, configStore.GetInt(file.KeyChunkSize))
	cmd.Printf("  %s: %t\n", file.KeyDebug, configStore.GetBool(file.KeyDebug))
	cmd.Printf("  %s: %d\n", file.KeyRefreshMinutes, configStore.GetInt(file.KeyRefreshMinutes))

	overrides := configStore.SourceOverrides()
	if len(overrides) > 0 {
		cmd.Println()
		cmd.Println("  [sources]")
		for dom, url := range overrides {
			cmd.Printf("  %s = %s\n", dom, url)
		}
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, value := args[0], args[1]

	if dom, ok := strings.CutPrefix(key, "sources."); ok {
		if err := configStore.SetSourceOverride(dom, value); err != nil {
			return fmt.Errorf("setting source override: %w", err)
		}
		cmd.Printf("Set sources.%s = %s\n", dom, value)
		cmd.Println("Restart for the change to take effect.")
		return nil
	}

	var parsed any
	switch key {
	case file.KeyChunkSize, file.KeyRefreshMinutes:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s expects an integer: %w", key, err)
		}
		parsed = int64(n)
	case file.KeyDebug:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects a boolean: %w", key, err)
		}
		parsed = b
	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	if err := configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Println(configStore.Path())
	return nil
}
