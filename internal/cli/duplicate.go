package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/ui"
)

var duplicateCmd = &cobra.Command{
	Use:   "duplicate",
	Short: "Duplicate a record into a destination group",
	Long: `Creates an independent copy of a record in the destination group.
Duplicates may cross databases.

Examples:
  dtk duplicate --name Report --to /Backups
  dtk duplicate --uuid 5F0C2A6E-... --to /Inbox --to-database Personal`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dest := destinationFromCmd(cmd)
		if dest.IsEmpty() {
			return handleErrorMsg(ErrMissingArgument, "specify a destination with --to or --to-uuid", "")
		}

		svc := newService()
		start := time.Now()

		info, err := svc.DuplicateRecord(cmd.Context(), lookupFromCmd(cmd), dest)
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

		fmt.Println(ui.Successf("Duplicated %s", ui.Record(info.Name)))
		fmt.Println(ui.Hint(fmt.Sprintf("  copy at %s:%s  uuid %s", info.Database, info.Location, info.UUID)))
		return nil
	},
}

func init() {
	addLookupFlags(duplicateCmd)
	addDestinationFlags(duplicateCmd)
	rootCmd.AddCommand(duplicateCmd)
}
