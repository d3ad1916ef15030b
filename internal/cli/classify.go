package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Get filing suggestions for a record",
	Long: `Asks the application's classifier where a record should be filed
and prints the proposed destination groups, best match first.

Examples:
  dtk classify --name "Invoice 2026-033"
  dtk classify --uuid 5F0C2A6E-... --limit 3 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		svc := newService()
		start := time.Now()

		proposals, err := svc.Classify(cmd.Context(), lookupFromCmd(cmd), limit)
		if err != nil {
			return opError(err)
		}
		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"proposals": proposals,
			}, &Meta{Count: len(proposals), QueryTimeMs: elapsed})
			return nil
		}

		if len(proposals) == 0 {
			fmt.Println("No filing suggestions.")
			return nil
		}

		fmt.Printf("Filing suggestions (%d):\n\n", len(proposals))
		for _, p := range proposals {
			fmt.Printf("  %s:%s\n", p.Database, p.Location)
		}
		return nil
	},
}

func init() {
	addLookupFlags(classifyCmd)
	classifyCmd.Flags().Int("limit", 10, "Maximum proposals to return")
	rootCmd.AddCommand(classifyCmd)
}
