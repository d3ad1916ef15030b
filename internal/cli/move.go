package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/ui"
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move a record to another group",
	Long: `Moves a record into a destination group. Identify the record with
the usual lookup flags and the destination with --to (a group location
path) or --to-uuid.

Examples:
  dtk move --name Report --to /Archive
  dtk move --uuid 5F0C2A6E-... --to-uuid 9A1B3C5D-... --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dest := destinationFromCmd(cmd)
		if dest.IsEmpty() {
			return handleErrorMsg(ErrMissingArgument, "specify a destination with --to or --to-uuid", "")
		}

		svc := newService()
		start := time.Now()

		info, err := svc.MoveRecord(cmd.Context(), lookupFromCmd(cmd), dest)
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

		fmt.Println(ui.Successf("Moved %s to %s", ui.Record(info.Name), info.Location))
		return nil
	},
}

func init() {
	addLookupFlags(moveCmd)
	addDestinationFlags(moveCmd)
	rootCmd.AddCommand(moveCmd)
}
