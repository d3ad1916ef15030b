package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/ui"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Get a record's plain text",
	Long: `Prints a record's textual content. Markdown records return their
markdown source; other kinds return the extracted plain text.

Examples:
  dtk content --name "Meeting Notes"
  dtk content --uuid 5F0C2A6E-... --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newService()
		start := time.Now()

		content, err := svc.GetContent(cmd.Context(), lookupFromCmd(cmd))
		if err != nil {
			return opError(err)
		}
		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccess(content, &Meta{QueryTimeMs: elapsed})
			return nil
		}

		raw, _ := cmd.Flags().GetBool("raw")
		if content.Kind == "markdown" && !raw && ui.IsTTY() {
			rendered, err := ui.RenderMarkdown(content.Text, ui.TermWidth())
			if err == nil {
				fmt.Print(rendered)
				return nil
			}
		}

		fmt.Print(content.Text)
		if len(content.Text) > 0 && content.Text[len(content.Text)-1] != '\n' {
			fmt.Println()
		}
		return nil
	},
}

func init() {
	addLookupFlags(contentCmd)
	contentCmd.Flags().Bool("raw", false, "Skip markdown rendering")
	rootCmd.AddCommand(contentCmd)
}
