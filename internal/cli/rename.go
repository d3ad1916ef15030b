package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/ui"
)

var renameCmd = &cobra.Command{
	Use:   "rename <new-name>",
	Short: "Rename a record",
	Long: `Renames a record. The new name is a positional argument; the record
itself is identified with the usual lookup flags.

Examples:
  dtk rename "Q3 Report (final)" --uuid 5F0C2A6E-...
  dtk rename "Notes 2026" --name "Notes" --database Personal`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		start := time.Now()

		info, err := svc.RenameRecord(cmd.Context(), lookupFromCmd(cmd), args[0])
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

		fmt.Println(ui.Successf("Renamed to %s", ui.Record(info.Name)))
		return nil
	},
}

func init() {
	addLookupFlags(renameCmd)
	rootCmd.AddCommand(renameCmd)
}
