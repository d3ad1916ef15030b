package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/mcpclient"
)

var mcpClientFlag string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Manage MCP client integrations",
	Long: `Manage MCP client integrations for dtk.

Install, remove, or inspect the dtk MCP server entry in supported
client config files (Claude Code, Claude Desktop, Cursor).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var mcpInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Add dtk to an MCP client config",
	Long: `Add dtk to an MCP client config file.

Supported clients: claude-code, claude-desktop, cursor

The global --app and --config flags are baked into the installed
entry, so the server always targets the same application.

Examples:
  dtk mcp install --client claude-code
  dtk mcp install --client claude-desktop --app "DEVONthink 3"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := mcpclient.Client(mcpClientFlag)
		if !mcpclient.ValidClient(mcpClientFlag) {
			return handleErrorMsg(ErrMCPClientInvalid, fmt.Sprintf("unknown client: %s", mcpClientFlag),
				"Supported clients: claude-code, claude-desktop, cursor")
		}

		cfgPath, err := mcpclient.ConfigPath(client, "")
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		entry := mcpclient.BuildServerEntry(appFlag, configPath)
		result, err := mcpclient.Install(cfgPath, entry)
		if err != nil {
			return handleError(ErrMCPConfigWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"client":      string(client),
				"config_path": cfgPath,
				"result":      result.String(),
				"entry": map[string]interface{}{
					"command": entry.Command,
					"args":    entry.Args,
				},
			}, nil)
			return nil
		}

		switch result {
		case mcpclient.Installed:
			fmt.Printf("Installed dtk in %s config.\n", client)
		case mcpclient.Updated:
			fmt.Printf("Updated dtk in %s config.\n", client)
		case mcpclient.AlreadyInstalled:
			fmt.Printf("Already installed in %s config.\n", client)
		}
		fmt.Printf("config: %s\n", cfgPath)
		return nil
	},
}

var mcpRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove dtk from an MCP client config",
	Long: `Remove dtk from an MCP client config file.

Supported clients: claude-code, claude-desktop, cursor

Examples:
  dtk mcp remove --client claude-code`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := mcpclient.Client(mcpClientFlag)
		if !mcpclient.ValidClient(mcpClientFlag) {
			return handleErrorMsg(ErrMCPClientInvalid, fmt.Sprintf("unknown client: %s", mcpClientFlag),
				"Supported clients: claude-code, claude-desktop, cursor")
		}

		cfgPath, err := mcpclient.ConfigPath(client, "")
		if err != nil {
			return handleError(ErrInternal, err, "")
		}

		removed, err := mcpclient.Remove(cfgPath)
		if err != nil {
			return handleError(ErrMCPConfigWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"client":      string(client),
				"config_path": cfgPath,
				"removed":     removed,
			}, nil)
			return nil
		}

		if removed {
			fmt.Printf("Removed dtk from %s config.\n", client)
		} else {
			fmt.Printf("dtk was not installed in %s config.\n", client)
		}
		return nil
	},
}

var mcpStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show dtk's MCP install status across clients",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var statuses []mcpclient.ClientStatus
		for _, client := range mcpclient.AllClients() {
			cfgPath, err := mcpclient.ConfigPath(client, "")
			if err != nil {
				return handleError(ErrInternal, err, "")
			}
			cs, err := mcpclient.Status(client, cfgPath)
			if err != nil {
				return handleError(ErrInternal, err, "")
			}
			statuses = append(statuses, *cs)
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"clients": statuses,
			}, &Meta{Count: len(statuses)})
			return nil
		}

		for _, cs := range statuses {
			state := "not installed"
			if cs.Installed {
				state = "installed"
			} else if !cs.Exists {
				state = "no config file"
			}
			fmt.Printf("  %-15s %s\n", cs.Client, state)
		}
		return nil
	},
}

func init() {
	mcpCmd.PersistentFlags().StringVar(&mcpClientFlag, "client", "", "MCP client: claude-code, claude-desktop, cursor")
	mcpCmd.AddCommand(mcpInstallCmd)
	mcpCmd.AddCommand(mcpRemoveCmd)
	mcpCmd.AddCommand(mcpStatusCmd)
	rootCmd.AddCommand(mcpCmd)
}
