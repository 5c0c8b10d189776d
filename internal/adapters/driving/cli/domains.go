package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "List registered documentation domains",
	RunE:  runDomains,
}

func init() {
	rootCmd.AddCommand(domainsCmd)
}

func runDomains(cmd *cobra.Command, _ []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	status := queryService.CacheStatus(cmd.Context())

	cmd.Println("Domains:")
	cmd.Println()
	for _, src := range queryService.Sources() {
		state := "not loaded"
		entry := status[src.Domain]
		switch {
		case entry.Loaded && entry.Fresh:
			state = "fresh"
		case entry.Loaded:
			state = "stale"
		}
		cmd.Printf("  %-20s %-10s %s\n", src.Domain, state, src.URL)
	}

	return nil
}
