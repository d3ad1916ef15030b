package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/ui"
)

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a record (moves it to the database trash)",
	Long: `Deletes a record. The application moves it to the database trash,
so this is recoverable from within the application itself.

Examples:
  dtk delete --name "Old Draft" --database Work
  dtk delete --uuid 5F0C2A6E-... --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		start := time.Now()

		info, err := svc.DeleteRecord(cmd.Context(), lookupFromCmd(cmd))
		if err != nil {
			return opError(err)
		}
		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"record": info,
			}, &Meta{QueryTimeMs: elapsed})
			return nil
		}

		fmt.Println(ui.Successf("Deleted %s", ui.Record(info.Name)))
		fmt.Println(ui.Hint("  moved to the database trash"))
		return nil
	},
}

func init() {
	addLookupFlags(deleteCmd)
	rootCmd.AddCommand(deleteCmd)
}
