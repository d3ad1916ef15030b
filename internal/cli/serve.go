package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run dtk as an MCP server",
	Long: `Run dtk as an MCP (Model Context Protocol) server.

This exposes the command catalog as tools so LLM agents can read and
organize records through a standardized protocol. The server
communicates over stdin/stdout using JSON-RPC 2.0; each tool call is
executed by shelling out to this binary with --json.

For use with Claude Desktop, add to your config:
  {
    "mcpServers": {
      "devonthink": {
        "command": "dtk",
        "args": ["serve"]
      }
    }
  }

Or run 'dtk mcp install --client claude-desktop'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Global flags are forwarded to every tool invocation so the
		// server and its children agree on config and target app.
		var extra []string
		if appFlag != "" {
			extra = append(extra, "--app", appFlag)
		}
		if configPath != "" {
			extra = append(extra, "--config", configPath)
		}
		if databaseFlag != "" {
			extra = append(extra, "--database", databaseFlag)
		}
		if timeoutFlag > 0 {
			extra = append(extra, "--timeout", fmt.Sprintf("%d", timeoutFlag))
		}

		server := mcp.NewServer(extra)
		if err := server.Run(); err != nil {
			return fmt.Errorf("MCP server error: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
