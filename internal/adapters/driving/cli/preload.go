package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var preloadCmd = &cobra.Command{
	Use:   "preload [domain...]",
	Short: "Warm the documentation cache",
	Long: `Fetches and caches documentation up front so that later queries do not
pay the download cost. With no arguments every registered domain is
loaded; otherwise only the named domains are.

Individual download failures are logged and skipped, so a flaky domain
never blocks the rest.`,
	RunE: runPreload,
}

func init() {
	rootCmd.AddCommand(preloadCmd)
}

func runPreload(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	if err := queryService.Preload(cmd.Context(), args); err != nil {
		return fmt.Errorf("preload failed: %w", err)
	}

	loaded := 0
	for _, dom := range queryService.AvailableDomains() {
		if queryService.IsLoaded(cmd.Context(), dom) {
			loaded++
		}
	}
	cmd.Printf("Cache warm: %d/%d domains loaded.\n", loaded, len(queryService.AvailableDomains()))

	return nil
}
