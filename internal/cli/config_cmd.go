package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/atomicfile"
	"github.com/dtkit/dtk/internal/config"
	"github.com/dtkit/dtk/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the dtk config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := os.Stat(resolvedConfigPath)
		exists := err == nil

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path":      resolvedConfigPath,
				"exists":           exists,
				"application":      cfg.Application,
				"osascript":        cfg.Osascript,
				"timeout_seconds":  cfg.TimeoutSeconds,
				"default_database": cfg.DefaultDatabase,
				"audit": map[string]interface{}{
					"enabled": cfg.Audit.Enabled,
					"path":    cfg.Audit.Path,
				},
			}, nil)
			return nil
		}

		fmt.Printf("config: %s", resolvedConfigPath)
		if !exists {
			fmt.Print("  (not present, using defaults)")
		}
		fmt.Println()
		fmt.Printf("  application:      %s\n", cfg.Application)
		if cfg.Osascript != "" {
			fmt.Printf("  osascript:        %s\n", cfg.Osascript)
		}
		fmt.Printf("  timeout_seconds:  %d\n", cfg.TimeoutSeconds)
		if cfg.DefaultDatabase != "" {
			fmt.Printf("  default_database: %s\n", cfg.DefaultDatabase)
		}
		fmt.Printf("  audit.enabled:    %t\n", cfg.Audit.Enabled)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(resolvedConfigPath); err == nil {
			return handleErrorMsg(ErrFileWriteError,
				fmt.Sprintf("config already exists: %s", resolvedConfigPath),
				"Edit the existing file, or remove it and run 'dtk config init' again")
		}

		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(config.Default()); err != nil {
			return handleError(ErrInternal, err, "")
		}

		if err := os.MkdirAll(filepath.Dir(resolvedConfigPath), 0o755); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}
		if err := atomicfile.WriteFile(resolvedConfigPath, buf.Bytes(), 0o644); err != nil {
			return handleError(ErrFileWriteError, err, "")
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"config_path": resolvedConfigPath,
			}, nil)
			return nil
		}

		fmt.Println(ui.Successf("Wrote %s", resolvedConfigPath))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
