package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/designctx-cli/internal/core/domain"
)

var (
	searchLimit     int
	searchJSON      bool
	searchFileKeys  []string
	searchNodeTypes []string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search stored context documents",
	Long: `Scans stored context documents for substring matches against node,
component and style names. Results are ranked by match count blended with
each document's confidence.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultSearchLimit, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringSliceVar(&searchFileKeys, "file-keys", nil, "restrict the search to these file keys")
	searchCmd.Flags().StringSliceVar(&searchNodeTypes, "node-types", nil, "restrict node matching to these types")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts := domain.SearchOptions{
		Limit:     searchLimit,
		FileKeys:  searchFileKeys,
		NodeTypes: searchNodeTypes,
	}

	report, err := searchService.Search(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return printJSON(cmd, report)
	}
	return outputSearchTable(cmd, report)
}

func outputSearchTable(cmd *cobra.Command, report domain.SearchReport) error {
	if report.TotalResults == 0 {
		cmd.Println("No results found.")
		if report.Suggestion != "" {
			cmd.Println(report.Suggestion)
		}
		return nil
	}

	cmd.Printf("Results for %q:\n\n", report.Query)
	for i := range report.Results {
		hit := &report.Results[i]

		label := hit.FileKey
		if hit.NodeID != "" {
			label = domain.ContextKey(hit.FileKey, hit.NodeID)
		}
		cmd.Printf("  [%d] %s (%.2f)\n", i+1, label, hit.Score)
		if hit.FileName != "" {
			cmd.Printf("      File: %s\n", hit.FileName)
		}
		if len(hit.MatchedNodes) > 0 {
			cmd.Printf("      Nodes: %s\n", strings.Join(hit.MatchedNodes, ", "))
		}
		if len(hit.MatchedComponents) > 0 {
			cmd.Printf("      Components: %s\n", strings.Join(hit.MatchedComponents, ", "))
		}
		if len(hit.MatchedStyles) > 0 {
			cmd.Printf("      Styles: %s\n", strings.Join(hit.MatchedStyles, ", "))
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d matched documents\n", report.TotalResults)
	return nil
}
