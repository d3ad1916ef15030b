package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/ui"
)

var replicateCmd = &cobra.Command{
	Use:   "replicate",
	Short: "Replicate a record into a destination group",
	Long: `Creates a replica of a record in the destination group. A replica
is the same record filed in more than one place, so replication cannot
cross databases.

Examples:
  dtk replicate --name Report --to /Projects/Q3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dest := destinationFromCmd(cmd)
		if dest.IsEmpty() {
			return handleErrorMsg(ErrMissingArgument, "specify a destination with --to or --to-uuid", "")
		}

		svc := newService()
		start := time.Now()

		info, err := svc.ReplicateRecord(cmd.Context(), lookupFromCmd(cmd), dest)
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

		fmt.Println(ui.Successf("Replicated %s", ui.Record(info.Name)))
		return nil
	},
}

func init() {
	addLookupFlags(replicateCmd)
	addDestinationFlags(replicateCmd)
	rootCmd.AddCommand(replicateCmd)
}
