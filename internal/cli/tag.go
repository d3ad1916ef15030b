package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/ui"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Add or remove record tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var tagAddCmd = &cobra.Command{
	Use:   "add <tags...>",
	Short: "Add tags to a record",
	Long: `Adds one or more tags to a record. Tags the record already carries
are left alone.

Examples:
  dtk tag add urgent q3 --name Report
  dtk tag add reviewed --uuid 5F0C2A6E-... --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		start := time.Now()

		result, err := svc.AddTags(cmd.Context(), lookupFromCmd(cmd), args)
		if err != nil {
			return opError(err)
		}
		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccess(result, &Meta{Count: len(result.Tags), QueryTimeMs: elapsed})
			return nil
		}

		fmt.Println(ui.Successf("Tagged %s", ui.Record(result.Name)))
		fmt.Printf("  tags: %s\n", strings.Join(result.Tags, ", "))
		return nil
	},
}

var tagRmCmd = &cobra.Command{
	Use:   "rm <tags...>",
	Short: "Remove tags from a record",
	Long: `Removes one or more tags from a record. Tags the record does not
carry are ignored.

Examples:
  dtk tag rm urgent --name Report`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		start := time.Now()

		result, err := svc.RemoveTags(cmd.Context(), lookupFromCmd(cmd), args)
		if err != nil {
			return opError(err)
		}
		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccess(result, &Meta{Count: len(result.Tags), QueryTimeMs: elapsed})
			return nil
		}

		fmt.Println(ui.Successf("Untagged %s", ui.Record(result.Name)))
		if len(result.Tags) > 0 {
			fmt.Printf("  tags: %s\n", strings.Join(result.Tags, ", "))
		} else {
			fmt.Println(ui.Hint("  no tags remain"))
		}
		return nil
	},
}

func init() {
	addLookupFlags(tagAddCmd)
	addLookupFlags(tagRmCmd)
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRmCmd)
	rootCmd.AddCommand(tagCmd)
}
