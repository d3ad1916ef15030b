// Package cli implements the command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/config"
	"github.com/dtkit/dtk/internal/ui"
)

var (
	// Global flags
	configPath   string
	appFlag      string
	timeoutFlag  int
	databaseFlag string

	// Resolved values
	cfg                config.Config
	resolvedConfigPath string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dtk",
	Short: "dtk - command-line bridge to DEVONthink",
	Long: `dtk drives DEVONthink from the command line. Every command composes
a small JavaScript for Automation program, hands it to osascript, and
decodes the result, so each invocation is a single atomic round trip
to the running application.

Records are identified by --uuid, --id with --database, --path, or
--name. All commands support --json for agent and script use.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never talk to the application skip config loading.
		switch cmd.Name() {
		case "completion", "help":
			return nil
		}
		if cmd.Parent() != nil && cmd.Parent().Name() == "completion" {
			return nil
		}

		var err error
		cfg, resolvedConfigPath, err = loadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Flags override config.
		if appFlag != "" {
			cfg.Application = appFlag
		}
		if timeoutFlag > 0 {
			cfg.TimeoutSeconds = timeoutFlag
		}
		if databaseFlag != "" {
			cfg.DefaultDatabase = databaseFlag
		}

		ui.ConfigureTheme(cfg.UI.Accent)
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	syncRegistryMetadata(rootCmd)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&appFlag, "app", "", "Application to target (default \"DEVONthink 3\")")
	rootCmd.PersistentFlags().IntVar(&timeoutFlag, "timeout", 0, "Scripting host timeout in seconds (default 60)")
	rootCmd.PersistentFlags().StringVarP(&databaseFlag, "database", "d", "", "Default database for lookups")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format (for agent/script use)")
}

func loadGlobalConfig() (config.Config, string, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, "", err
		}
	}

	loaded, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	return loaded, path, nil
}
