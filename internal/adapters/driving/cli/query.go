package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/permaweb-tools/permadocs-cli/internal/core/domain"
)

var (
	queryDomains    []string
	queryMaxResults int
	queryJSON       bool
)

var queryCmd = &cobra.Command{
	Use:   "query [text]",
	Short: "Search permaweb documentation",
	Long: `Searches cached permaweb documentation for fragments relevant to the
query. Relevant domains are auto-detected from the query text unless
--domains restricts the search explicitly.

Strategies escalate automatically: an exact search is followed by
synonym expansion, then an all-domain search, then relaxed prefix
matching. The first strategy with results wins.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringSliceVarP(&queryDomains, "domains", "d", nil, "restrict search to these domains")
	queryCmd.Flags().IntVarP(&queryMaxResults, "max-results", "n", 0, "maximum number of fragments (default 20)")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if queryService == nil {
		return errors.New("query service not configured")
	}

	opts := domain.QueryOptions{
		Domains:    queryDomains,
		MaxResults: queryMaxResults,
	}

	results, err := queryService.Query(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if queryJSON {
		return outputQueryJSON(cmd, results)
	}

	return outputQueryText(cmd, results)
}

func outputQueryJSON(cmd *cobra.Command, results []domain.Fragment) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputQueryText(cmd *cobra.Command, results []domain.Fragment) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results (%d, ~%d tokens):\n", len(results), queryService.EstimateResponseTokens(results))
	cmd.Println()
	for i := range results {
		cmd.Printf("  [%d] %s (%.1f)\n", i+1, results[i].Domain, results[i].Score)
		if results[i].URL != "" {
			cmd.Printf("      Source: %s\n", results[i].URL)
		}
		cmd.Printf("      %s\n", snippet(results[i].Content))
		cmd.Println()
	}

	return nil
}

// snippet flattens a fragment to a single preview line.
func snippet(content string) string {
	const maxLen = 200

	flat := strings.Join(strings.Fields(content), " ")
	if len(flat) > maxLen {
		flat = flat[:maxLen] + "..."
	}
	return flat
}
