package cli

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect and manage the documentation cache",
	RunE:  runCacheStatus,
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show per-domain cache state",
	RunE:  runCacheStatus,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear [domain]",
	Short: "Clear cached documentation",
	Long: `Clears the cached documentation for one domain, or for every domain
when no argument is given. The next query re-downloads the content.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheStatus(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	status := queryService.CacheStatus(cmd.Context())

	domains := make([]string, 0, len(status))
	for dom := range status {
		domains = append(domains, dom)
	}
	sort.Strings(domains)

	cmd.Println("Cache status:")
	cmd.Println()
	for _, dom := range domains {
		entry := status[dom]
		switch {
		case entry.Loaded && entry.Fresh:
			cmd.Printf("  %-20s fresh      age %s\n", dom, entry.Age.Round(time.Second))
		case entry.Loaded:
			cmd.Printf("  %-20s stale      age %s\n", dom, entry.Age.Round(time.Second))
		default:
			cmd.Printf("  %-20s not loaded\n", dom)
		}
		if entry.LastError != "" {
			cmd.Printf("  %-20s last error: %s\n", "", entry.LastError)
		}
	}

	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	dom := ""
	if len(args) > 0 {
		dom = args[0]
	}

	if err := queryService.ClearCache(cmd.Context(), dom); err != nil {
		return fmt.Errorf("cache clear failed: %w", err)
	}

	if dom == "" {
		cmd.Println("Cache cleared for all domains.")
	} else {
		cmd.Printf("Cache cleared for %s.\n", dom)
	}

	return nil
}
