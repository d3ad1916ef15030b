// Package commands is the central registry of dtk command metadata,
// used by both the CLI and the MCP server so tool schemas stay in sync
// with command flags.
package commands

// Meta defines metadata for a command exposed over MCP.
type Meta struct {
	Name        string     // CLI command name (e.g. "get", "tag add")
	Description string     // Short description
	LongDesc    string     // Long description (for MCP tool hints)
	Args        []ArgMeta  // Positional arguments
	Flags       []FlagMeta // Command flags
	Examples    []string   // Usage examples
}

// ArgMeta defines a positional argument.
type ArgMeta struct {
	Name        string
	Description string
	Required    bool
	Variadic    bool // consumes the remaining arguments
}

// FlagMeta defines a command flag.
type FlagMeta struct {
	Name        string
	Description string
	Type        FlagType
}

// FlagType represents the type of a flag.
type FlagType string

const (
	FlagTypeString      FlagType = "string"
	FlagTypeBool        FlagType = "bool"
	FlagTypeInt         FlagType = "int"
	FlagTypeStringSlice FlagType = "stringSlice" // repeatable string flags
)

// lookupFlags identify a single record. The resolution order is fixed:
// uuid, then id+database, then path, then exact name.
func lookupFlags() []FlagMeta {
	return []FlagMeta{
		{Name: "uuid", Description: "Record UUID (unique across all open databases)", Type: FlagTypeString},
		{Name: "id", Description: "Numeric record id (requires --database)", Type: FlagTypeInt},
		{Name: "path", Description: "Record location path, e.g. /Inbox/Report.md", Type: FlagTypeString},
		{Name: "name", Description: "Exact record name (fails if multiple records match)", Type: FlagTypeString},
		{Name: "database", Description: "Database name to scope the lookup (default: all open databases)", Type: FlagTypeString},
	}
}

func destinationFlags() []FlagMeta {
	return []FlagMeta{
		{Name: "to", Description: "Destination group location path, e.g. /Archive/2026", Type: FlagTypeString},
		{Name: "to-uuid", Description: "Destination group UUID (overrides --to)", Type: FlagTypeString},
		{Name: "to-database", Description: "Database containing the destination group", Type: FlagTypeString},
	}
}

// Registry holds all MCP-exposed commands.
var Registry = map[string]Meta{
	"databases": {
		Name:        "databases",
		Description: "List all open databases with name, uuid, path and item count",
		Examples:    []string{"dtk databases --json"},
	},
	"get": {
		Name:        "get",
		Description: "Get a record's metadata (uuid, name, location, tags, dates, ...)",
		LongDesc: `Looks up a single record and returns its metadata.

Identify the record by exactly one of: --uuid, --id together with
--database, --path, or --name. A --name lookup that matches more than
one record fails as ambiguous; add --database to narrow the scope.

Note that --database naming a database that is not currently open
scopes the lookup to nothing, so it reports not found rather than
failing with a distinct error.`,
		Flags:    lookupFlags(),
		Examples: []string{`dtk get --name "Quarterly Report" --database Work --json`},
	},
	"content": {
		Name:        "content",
		Description: "Get a record's plain text (markdown records return their source)",
		Flags:       lookupFlags(),
		Examples:    []string{"dtk content --uuid 5F0C2A6E-... --json"},
	},
	"create": {
		Name:        "create",
		Description: "Create a record (markdown, txt, bookmark, or group)",
		Args: []ArgMeta{
			{Name: "name", Description: "Name for the new record", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "kind", Description: "Record kind: markdown, txt, bookmark, group (default markdown)", Type: FlagTypeString},
			{Name: "content", Description: "Text content for markdown/txt records", Type: FlagTypeString},
			{Name: "url", Description: "URL for bookmark records", Type: FlagTypeString},
			{Name: "tag", Description: "Tag to apply (repeatable)", Type: FlagTypeStringSlice},
			{Name: "in", Description: "Destination group location, created if missing (default: database root)", Type: FlagTypeString},
			{Name: "database", Description: "Destination database (default: frontmost)", Type: FlagTypeString},
		},
		Examples: []string{`dtk create "Meeting Notes" --content "# Agenda" --in /Meetings --json`},
	},
	"delete": {
		Name:        "delete",
		Description: "Delete a record (moves it to the database trash)",
		Flags:       lookupFlags(),
		Examples:    []string{`dtk delete --name "Old Draft" --database Work --json`},
	},
	"move": {
		Name:        "move",
		Description: "Move a record to another group",
		Flags:       append(lookupFlags(), destinationFlags()...),
		Examples:    []string{`dtk move --name Report --to /Archive --json`},
	},
	"rename": {
		Name:        "rename",
		Description: "Rename a record",
		Args: []ArgMeta{
			{Name: "new-name", Description: "New record name", Required: true},
		},
		Flags:    lookupFlags(),
		Examples: []string{`dtk rename "Q3 Report (final)" --uuid 5F0C2A6E-... --json`},
	},
	"duplicate": {
		Name:        "duplicate",
		Description: "Duplicate a record into a destination group (may cross databases)",
		Flags:       append(lookupFlags(), destinationFlags()...),
	},
	"replicate": {
		Name:        "replicate",
		Description: "Replicate a record into a destination group in the same database",
		Flags:       append(lookupFlags(), destinationFlags()...),
	},
	"set": {
		Name:        "set",
		Description: "Set record properties (comment, url, rating, label, flagged, unread)",
		LongDesc: `Updates record metadata. Only the flags you pass are written;
properties that already hold the requested value are reported as
skipped, so re-running the same update is safe.`,
		Flags: append(lookupFlags(),
			FlagMeta{Name: "comment", Description: "Finder comment", Type: FlagTypeString},
			FlagMeta{Name: "url", Description: "Record URL", Type: FlagTypeString},
			FlagMeta{Name: "rating", Description: "Rating 0-5", Type: FlagTypeInt},
			FlagMeta{Name: "label", Description: "Label index 0-7", Type: FlagTypeInt},
			FlagMeta{Name: "flagged", Description: "Flag state", Type: FlagTypeBool},
			FlagMeta{Name: "unread", Description: "Unread state", Type: FlagTypeBool},
		),
		Examples: []string{`dtk set --name Report --rating 5 --flagged --json`},
	},
	"tag add": {
		Name:        "tag add",
		Description: "Add tags to a record",
		Args: []ArgMeta{
			{Name: "tags", Description: "Tags to add", Required: true, Variadic: true},
		},
		Flags:    lookupFlags(),
		Examples: []string{`dtk tag add urgent q3 --name Report --json`},
	},
	"tag rm": {
		Name:        "tag rm",
		Description: "Remove tags from a record",
		Args: []ArgMeta{
			{Name: "tags", Description: "Tags to remove", Required: true, Variadic: true},
		},
		Flags: lookupFlags(),
	},
	"search": {
		Name:        "search",
		Description: "Free-text search across open databases",
		LongDesc: `Runs the application's own query syntax (operators like AND,
OR, name:, tags: are passed through verbatim). Results are capped by
--limit; the total match count is always reported.`,
		Args: []ArgMeta{
			{Name: "query", Description: "Search query", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "database", Description: "Database to search (default: all open databases)", Type: FlagTypeString},
			{Name: "limit", Description: "Maximum results to return (default 25)", Type: FlagTypeInt},
		},
		Examples: []string{`dtk search "budget 2026" --database Work --limit 10 --json`},
	},
	"classify": {
		Name:        "classify",
		Description: "Get AI filing suggestions (destination groups) for a record",
		Flags: append(lookupFlags(),
			FlagMeta{Name: "limit", Description: "Maximum proposals to return (default 10)", Type: FlagTypeInt},
		),
	},
	"group": {
		Name:        "group",
		Description: "Create a group at a location path, creating parents as needed",
		Args: []ArgMeta{
			{Name: "location", Description: "Group location, e.g. /Projects/Q3", Required: true},
		},
		Flags: []FlagMeta{
			{Name: "database", Description: "Database to create the group in (default: frontmost)", Type: FlagTypeString},
		},
	},
}
