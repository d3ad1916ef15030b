package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dtkit/dtk/internal/audit"
	"github.com/dtkit/dtk/internal/bridge"
	"github.com/dtkit/dtk/internal/ops"
	"github.com/dtkit/dtk/internal/record"
	"github.com/dtkit/dtk/internal/ui"
)

// newService builds the operation service from the resolved config and
// global flags.
func newService() *ops.Service {
	var log *audit.Logger
	if cfg.Audit.Enabled {
		if path, err := cfg.AuditPath(); err == nil {
			log = audit.New(path, true)
		}
	}

	var runner bridge.Runner
	if cfg.Osascript != "" {
		runner = &bridge.OsascriptRunner{Path: cfg.Osascript}
	}

	return ops.New(ops.Options{
		Application:     cfg.Application,
		Runner:          runner,
		Timeout:         cfg.Timeout(),
		DefaultDatabase: cfg.DefaultDatabase,
		Audit:           log,
	})
}

// addLookupFlags registers the record identification flags. The
// --database scope comes from the persistent root flag.
func addLookupFlags(cmd *cobra.Command) {
	cmd.Flags().String("uuid", "", "Record UUID")
	cmd.Flags().Int("id", 0, "Numeric record id (requires --database)")
	cmd.Flags().String("path", "", "Record location path, e.g. /Inbox/Report.md")
	cmd.Flags().String("name", "", "Exact record name")
}

// lookupFromCmd assembles a record lookup from the identification flags.
func lookupFromCmd(cmd *cobra.Command) record.Lookup {
	uuid, _ := cmd.Flags().GetString("uuid")
	id, _ := cmd.Flags().GetInt("id")
	path, _ := cmd.Flags().GetString("path")
	name, _ := cmd.Flags().GetString("name")

	return record.Lookup{
		UUID: uuid,
		ID:   id,
		Path: path,
		Name: name,
	}
}

// addDestinationFlags registers the destination group flags used by
// move, duplicate and replicate.
func addDestinationFlags(cmd *cobra.Command) {
	cmd.Flags().String("to", "", "Destination group location path, e.g. /Archive/2026")
	cmd.Flags().String("to-uuid", "", "Destination group UUID (overrides --to)")
	cmd.Flags().String("to-database", "", "Database containing the destination group")
}

// destinationFromCmd assembles the destination group lookup.
func destinationFromCmd(cmd *cobra.Command) record.Lookup {
	to, _ := cmd.Flags().GetString("to")
	toUUID, _ := cmd.Flags().GetString("to-uuid")
	toDatabase, _ := cmd.Flags().GetString("to-database")

	return record.Lookup{
		UUID:     toUUID,
		Path:     to,
		Database: toDatabase,
	}
}

// printRecord writes the human-readable one-record summary.
func printRecord(info *record.Info) {
	fmt.Printf("%s\n", ui.Record(info.Name))
	fmt.Printf("  uuid:     %s\n", info.UUID)
	fmt.Printf("  database: %s\n", info.Database)
	fmt.Printf("  location: %s\n", info.Location)
	fmt.Printf("  kind:     %s\n", info.Kind)
	if info.URL != "" {
		fmt.Printf("  url:      %s\n", info.URL)
	}
	if len(info.Tags) > 0 {
		fmt.Printf("  tags:     %s\n", strings.Join(info.Tags, ", "))
	}
	if info.Comment != "" {
		fmt.Printf("  comment:  %s\n", info.Comment)
	}
	if info.Modified != "" {
		fmt.Printf("  modified: %s\n", info.Modified)
	}
}

// printRecordLine writes the compact one-line form used in lists.
func printRecordLine(info record.Info) {
	location := info.Location
	if info.Database != "" {
		location = info.Database + ":" + location
	}
	fmt.Printf("  %s %s\n", ui.Record(info.Name), ui.Hint(location))
}
