package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/importer"
	"github.com/dtkit/dtk/internal/ops"
	"github.com/dtkit/dtk/internal/record"
	"github.com/dtkit/dtk/internal/ui"
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import markdown files as records",
	Long: `Imports local markdown files. YAML frontmatter supplies the record
name, tags, comment and URL; the remaining body becomes the record
content. Without frontmatter the first level-1 heading names the
record, falling back to the file name.

Examples:
  dtk import notes/meeting.md --in /Meetings
  dtk import drafts/*.md --database Work --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")

		svc := newService()
		start := time.Now()

		var imported []record.Info
		for _, path := range args {
			doc, err := importer.ReadFile(path)
			if err != nil {
				return handleError(ErrFileReadError, fmt.Errorf("%s: %w", path, err), "")
			}

			info, err := svc.CreateRecord(cmd.Context(), ops.CreateParams{
				Name:        doc.Name,
				Kind:        "markdown",
				Content:     doc.Body,
				Tags:        doc.Tags,
				Destination: in,
				Database:    cfg.DefaultDatabase,
			})
			if err != nil {
				return opError(err)
			}

			if doc.Comment != "" || doc.URL != "" {
				var props ops.Properties
				if doc.Comment != "" {
					props.Comment = &doc.Comment
				}
				if doc.URL != "" {
					props.URL = &doc.URL
				}
				if _, err := svc.SetProperties(cmd.Context(), record.Lookup{UUID: info.UUID}, props); err != nil {
					return opError(err)
				}
			}

			imported = append(imported, *info)
			if !isJSONOutput() {
				fmt.Println(ui.Successf("Imported %s", ui.Record(info.Name)))
				fmt.Println(ui.Hint(fmt.Sprintf("  %s:%s", info.Database, info.Location)))
			}
		}
		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"records": imported,
			}, &Meta{Count: len(imported), QueryTimeMs: elapsed})
		}
		return nil
	},
}

func init() {
	importCmd.Flags().String("in", "", "Destination group location, created if missing")
	rootCmd.AddCommand(importCmd)
}
