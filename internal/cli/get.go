package cli

import (
	"time"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a record's metadata",
	Long: `Looks up a single record and prints its metadata.

Identify the record by exactly one of --uuid, --id with --database,
--path, or --name. Name lookups are exact-match; an ambiguous match
fails rather than guessing.

Examples:
  dtk get --uuid 5F0C2A6E-...
  dtk get --name "Quarterly Report" --database Work --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		start := time.Now()

		info, err := svc.GetRecord(cmd.Context(), lookupFromCmd(cmd))
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

		printRecord(info)
		return nil
	},
}

func init() {
	addLookupFlags(getCmd)
	rootCmd.AddCommand(getCmd)
}
