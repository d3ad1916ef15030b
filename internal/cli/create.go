package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/ops"
	"github.com/dtkit/dtk/internal/ui"
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a record",
	Long: `Creates a record in a database. Kinds: markdown, txt, bookmark,
group. The destination group is created when it does not exist yet.

Examples:
  dtk create "Meeting Notes" --content "# Agenda" --in /Meetings
  dtk create "DEVONtech" --kind bookmark --url https://devontechnologies.com
  dtk create Archive --kind group --database Work`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")
		content, _ := cmd.Flags().GetString("content")
		url, _ := cmd.Flags().GetString("url")
		tags, _ := cmd.Flags().GetStringSlice("tag")
		in, _ := cmd.Flags().GetString("in")

		svc := newService()
		start := time.Now()

		info, err := svc.CreateRecord(cmd.Context(), ops.CreateParams{
			Name:        args[0],
			Kind:        kind,
			Content:     content,
			URL:         url,
			Tags:        tags,
			Destination: in,
			Database:    cfg.DefaultDatabase,
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

		fmt.Println(ui.Successf("Created %s", ui.Record(info.Name)))
		fmt.Println(ui.Hint(fmt.Sprintf("  %s:%s  uuid %s", info.Database, info.Location, info.UUID)))
		return nil
	},
}

func init() {
	createCmd.Flags().String("kind", "markdown", "Record kind: markdown, txt, bookmark, group")
	createCmd.Flags().String("content", "", "Text content for markdown/txt records")
	createCmd.Flags().String("url", "", "URL for bookmark records")
	createCmd.Flags().StringSlice("tag", nil, "Tag to apply (repeatable)")
	createCmd.Flags().String("in", "", "Destination group location, created if missing")
	rootCmd.AddCommand(createCmd)
}
