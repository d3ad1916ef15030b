package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var databasesCmd = &cobra.Command{
	Use:   "databases",
	Short: "List all open databases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		start := time.Now()

		dbs, err := svc.OpenDatabases(cmd.Context())
		if err != nil {
			return opError(err)
		}
		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"databases": dbs,
			}, &Meta{Count: len(dbs), QueryTimeMs: elapsed})
			return nil
		}

		if len(dbs) == 0 {
			fmt.Println("No databases open.")
			return nil
		}

		fmt.Printf("Open databases (%d):\n\n", len(dbs))
		for _, db := range dbs {
			fmt.Printf("  %s  %d items\n", db.Name, db.Items)
			fmt.Printf("    uuid: %s\n", db.UUID)
			fmt.Printf("    path: %s\n", db.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(databasesCmd)
}
