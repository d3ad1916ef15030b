package mcp

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dtkit/dtk/internal/commands"
)

// GenerateToolSchemas generates MCP tool schemas from the command
// registry, so tools stay in sync with CLI commands automatically.
func GenerateToolSchemas() []Tool {
	var tools []Tool

	for cmdName, meta := range commands.Registry {
		tool := Tool{
			Name:        ToolName(cmdName),
			Description: meta.Description,
			InputSchema: InputSchema{
				Type:       "object",
				Properties: make(map[string]interface{}),
			},
		}
		if meta.LongDesc != "" {
			tool.Description = meta.LongDesc
		}

		var required []string
		for _, arg := range meta.Args {
			prop := map[string]interface{}{
				"type":        "string",
				"description": arg.Description,
			}
			if arg.Variadic {
				prop["type"] = "array"
				prop["items"] = map[string]interface{}{"type": "string"}
			}
			tool.InputSchema.Properties[arg.Name] = prop
			if arg.Required {
				required = append(required, arg.Name)
			}
		}

		for _, flag := range meta.Flags {
			prop := map[string]interface{}{
				"description": flag.Description,
			}
			switch flag.Type {
			case commands.FlagTypeBool:
				prop["type"] = "boolean"
			case commands.FlagTypeInt:
				prop["type"] = "integer"
			case commands.FlagTypeStringSlice:
				prop["type"] = "array"
				prop["items"] = map[string]interface{}{"type": "string"}
			default:
				prop["type"] = "string"
			}
			tool.InputSchema.Properties[flag.Name] = prop
		}

		if len(required) > 0 {
			tool.InputSchema.Required = required
		}

		tools = append(tools, tool)
	}

	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })
	return tools
}

// ToolName converts a CLI command name to an MCP tool name.
// e.g. "get" -> "dtk_get", "tag add" -> "dtk_tag_add"
func ToolName(cmdName string) string {
	return "dtk_" + strings.ReplaceAll(cmdName, " ", "_")
}

// commandName converts an MCP tool name back to the registry key.
func commandName(toolName string) string {
	name := strings.TrimPrefix(toolName, "dtk_")
	return strings.ReplaceAll(name, "_", " ")
}

// CLIArgs builds the argv for one tool call: subcommand words, then
// positional arguments in declared order, then flags, then --json.
func CLIArgs(toolName string, args map[string]interface{}) ([]string, error) {
	cmdName := commandName(toolName)
	meta, ok := commands.Registry[cmdName]
	if !ok {
		return nil, fmt.Errorf("unknown tool: %s", toolName)
	}

	argv := strings.Fields(cmdName)

	for _, arg := range meta.Args {
		value, present := args[arg.Name]
		if !present {
			if arg.Required {
				return nil, fmt.Errorf("missing required argument %q", arg.Name)
			}
			continue
		}
		if arg.Variadic {
			items, err := stringSlice(value)
			if err != nil {
				return nil, fmt.Errorf("argument %q: %w", arg.Name, err)
			}
			argv = append(argv, items...)
			continue
		}
		s, err := scalarString(value)
		if err != nil {
			return nil, fmt.Errorf("argument %q: %w", arg.Name, err)
		}
		argv = append(argv, s)
	}

	for _, flag := range meta.Flags {
		value, present := args[flag.Name]
		if !present {
			continue
		}
		switch flag.Type {
		case commands.FlagTypeBool:
			b, ok := value.(bool)
			if !ok {
				return nil, fmt.Errorf("flag %q: expected boolean", flag.Name)
			}
			argv = append(argv, fmt.Sprintf("--%s=%t", flag.Name, b))
		case commands.FlagTypeStringSlice:
			items, err := stringSlice(value)
			if err != nil {
				return nil, fmt.Errorf("flag %q: %w", flag.Name, err)
			}
			for _, item := range items {
				argv = append(argv, "--"+flag.Name, item)
			}
		default:
			s, err := scalarString(value)
			if err != nil {
				return nil, fmt.Errorf("flag %q: %w", flag.Name, err)
			}
			argv = append(argv, "--"+flag.Name, s)
		}
	}

	return append(argv, "--json"), nil
}

// scalarString renders a JSON scalar as a CLI argument. Integers arrive
// from JSON as float64.
func scalarString(v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10), nil
		}
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("expected scalar, got %T", v)
	}
}

func stringSlice(v interface{}) ([]string, error) {
	switch t := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, err := scalarString(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		// Tolerate a bare string where an array is expected.
		return []string{t}, nil
	default:
		return nil, fmt.Errorf("expected array of strings, got %T", v)
	}
}
