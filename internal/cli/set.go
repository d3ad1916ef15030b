package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/ops"
	"github.com/dtkit/dtk/internal/ui"
)

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Set record properties",
	Long: `Updates record metadata. Only the flags you pass are written;
properties that already hold the requested value are reported as
skipped, so re-running the same update is safe.

Examples:
  dtk set --name Report --rating 5 --flagged
  dtk set --uuid 5F0C2A6E-... --comment "reviewed" --unread=false --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var props ops.Properties
		if cmd.Flags().Changed("comment") {
			v, _ := cmd.Flags().GetString("comment")
			props.Comment = &v
		}
		if cmd.Flags().Changed("url") {
			v, _ := cmd.Flags().GetString("url")
			props.URL = &v
		}
		if cmd.Flags().Changed("rating") {
			v, _ := cmd.Flags().GetInt("rating")
			props.Rating = &v
		}
		if cmd.Flags().Changed("label") {
			v, _ := cmd.Flags().GetInt("label")
			props.Label = &v
		}
		if cmd.Flags().Changed("flagged") {
			v, _ := cmd.Flags().GetBool("flagged")
			props.Flagged = &v
		}
		if cmd.Flags().Changed("unread") {
			v, _ := cmd.Flags().GetBool("unread")
			props.Unread = &v
		}

		svc := newService()
		start := time.Now()

		result, err := svc.SetProperties(cmd.Context(), lookupFromCmd(cmd), props)
		if err != nil {
			return opError(err)
		}
		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccess(result, &Meta{QueryTimeMs: elapsed})
			return nil
		}

		fmt.Println(ui.Successf("Updated %s", ui.Record(result.Record.Name)))
		if len(result.Applied) > 0 {
			fmt.Printf("  applied: %s\n", strings.Join(result.Applied, ", "))
		}
		if len(result.Skipped) > 0 {
			fmt.Println(ui.Hint(fmt.Sprintf("  unchanged: %s", strings.Join(result.Skipped, ", "))))
		}
		return nil
	},
}

func init() {
	addLookupFlags(setCmd)
	setCmd.Flags().String("comment", "", "Finder comment")
	setCmd.Flags().String("url", "", "Record URL")
	setCmd.Flags().Int("rating", 0, "Rating 0-5")
	setCmd.Flags().Int("label", 0, "Label index 0-7")
	setCmd.Flags().Bool("flagged", false, "Flag state")
	setCmd.Flags().Bool("unread", false, "Unread state")
	rootCmd.AddCommand(setCmd)
}
