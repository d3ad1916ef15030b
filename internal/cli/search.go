package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/ops"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Free-text search across open databases",
	Long: `Runs the application's own query syntax; operators like AND, OR,
name: and tags: are passed through verbatim. Results are capped by
--limit, and the total match count is always reported.

Examples:
  dtk search "budget 2026"
  dtk search "tags:urgent kind:markdown" --database Work --limit 10 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		svc := newService()
		start := time.Now()

		result, err := svc.Search(cmd.Context(), ops.SearchParams{
			Query:    args[0],
			Database: cfg.DefaultDatabase,
			Limit:    limit,
		})
		if err != nil {
			return opError(err)
		}
		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccess(result, &Meta{Count: len(result.Records), QueryTimeMs: elapsed})
			return nil
		}

		if result.Total == 0 {
			fmt.Println("No matches.")
			return nil
		}

		fmt.Printf("Matches (%d of %d):\n\n", len(result.Records), result.Total)
		for _, r := range result.Records {
			printRecordLine(r)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("limit", ops.DefaultSearchLimit, "Maximum results to return")
	rootCmd.AddCommand(searchCmd)
}
