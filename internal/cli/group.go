package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/ops"
	"github.com/dtkit/dtk/internal/ui"
)

var groupCmd = &cobra.Command{
	Use:   "group <location>",
	Short: "Create a group at a location path",
	Long: `Creates the group at the given location, creating intermediate
groups as needed. Creating an existing location returns the existing
group, so the command is safe to repeat.

Examples:
  dtk group /Projects/Q3
  dtk group /Archive/2026 --database Work --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		start := time.Now()

		info, err := svc.CreateGroup(cmd.Context(), ops.GroupParams{
			Location: args[0],
			Database: cfg.DefaultDatabase,
		})
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

		fmt.Println(ui.Successf("Group %s", ui.Record(info.Location)))
		fmt.Println(ui.Hint(fmt.Sprintf("  %s  uuid %s", info.Database, info.UUID)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupCmd)
}
