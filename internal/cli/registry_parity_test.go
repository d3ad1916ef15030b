package cli

import (
	"slices"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dtkit/dtk/internal/commands"
)

// rootProvidedFlags are registry flags served by persistent root flags
// rather than per-command local flags.
var rootProvidedFlags = map[string]struct{}{
	"database": {},
}

func TestGetCommandFlagsMatchRegistry(t *testing.T) {
	meta, ok := commands.Registry["get"]
	if !ok {
		t.Fatal("get command missing from registry")
	}

	cmd, ok := findCommandByPath(rootCmd, "get")
	if !ok {
		t.Fatal("get command missing from CLI tree")
	}

	checkFlagParity(t, cmd, meta, nil)
}

func TestSetCommandFlagsMatchRegistry(t *testing.T) {
	meta, ok := commands.Registry["set"]
	if !ok {
		t.Fatal("set command missing from registry")
	}

	cmd, ok := findCommandByPath(rootCmd, "set")
	if !ok {
		t.Fatal("set command missing from CLI tree")
	}

	checkFlagParity(t, cmd, meta, nil)
}

func TestCreateCommandFlagsMatchRegistry(t *testing.T) {
	meta, ok := commands.Registry["create"]
	if !ok {
		t.Fatal("create command missing from registry")
	}

	cmd, ok := findCommandByPath(rootCmd, "create")
	if !ok {
		t.Fatal("create command missing from CLI tree")
	}

	checkFlagParity(t, cmd, meta, nil)
}

func checkFlagParity(t *testing.T, cmd *cobra.Command, meta commands.Meta, extraCLIFlags []string) {
	t.Helper()

	cliFlags := make(map[string]struct{})
	cmd.LocalFlags().VisitAll(func(flag *pflag.Flag) {
		if flag.Name == "help" {
			return
		}
		cliFlags[flag.Name] = struct{}{}
	})

	registryFlags := make(map[string]struct{}, len(meta.Flags))
	for _, flag := range meta.Flags {
		registryFlags[flag.Name] = struct{}{}
	}

	for name := range cliFlags {
		if _, ok := registryFlags[name]; ok {
			continue
		}
		if slices.Contains(extraCLIFlags, name) {
			continue
		}
		t.Errorf("CLI %s flag %q is missing from registry metadata", meta.Name, name)
	}
	for name := range registryFlags {
		if _, ok := cliFlags[name]; ok {
			continue
		}
		if _, ok := rootProvidedFlags[name]; ok {
			continue
		}
		t.Errorf("registry %s flag %q is missing from CLI command", meta.Name, name)
	}
}

func TestCommandsMissingRegistryMetadataAreAllowlisted(t *testing.T) {
	allowMissing := []string{
		"config init",
		"config show",
		"import",
		"mcp install",
		"mcp remove",
		"mcp status",
		"serve",
		"version",
	}

	paths := commandPaths(rootCmd)
	for _, path := range paths {
		if path == "" {
			continue
		}

		cmd, ok := findCommandByPath(rootCmd, path)
		if !ok {
			t.Errorf("failed to locate command for path %q", path)
			continue
		}
		if !cmd.Runnable() {
			continue
		}
		// Grouping commands (e.g. "tag", "config") rely on metadata for
		// their runnable leaf commands.
		if len(cmd.Commands()) > 0 {
			if _, ok := lookupRegistryMeta(path); !ok {
				continue
			}
		}

		if _, ok := lookupRegistryMeta(path); ok {
			continue
		}
		if slices.Contains(allowMissing, path) {
			continue
		}
		t.Errorf("CLI command %q is missing registry metadata", path)
	}

	for _, allowed := range allowMissing {
		if _, ok := findCommandByPath(rootCmd, allowed); !ok {
			t.Errorf("allowlist entry %q no longer exists in CLI tree; update test", allowed)
		}
	}
}

func TestEveryRegistryEntryHasCLICommand(t *testing.T) {
	for path := range commands.Registry {
		if _, ok := findCommandByPath(rootCmd, path); !ok {
			t.Errorf("registry entry %q has no CLI command", path)
		}
	}
}

func commandPaths(root *cobra.Command) []string {
	var out []string
	var walk func(cmd *cobra.Command, prefix string)

	walk = func(cmd *cobra.Command, prefix string) {
		for _, child := range cmd.Commands() {
			path := child.Name()
			if prefix != "" {
				path = strings.TrimSpace(prefix + " " + child.Name())
			}
			out = append(out, path)
			walk(child, path)
		}
	}

	walk(root, "")
	return out
}

func findCommandByPath(root *cobra.Command, path string) (*cobra.Command, bool) {
	parts := strings.Fields(path)
	cur := root
	for _, part := range parts {
		var next *cobra.Command
		for _, child := range cur.Commands() {
			if child.Name() == part {
				next = child
				break
			}
		}
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
