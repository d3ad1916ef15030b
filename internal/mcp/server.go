// Package mcp provides an MCP (Model Context Protocol) server for dtk.
// MCP enables LLM agents to drive the document database through a
// standardized protocol.
package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Server is an MCP server that wraps dtk CLI commands.
type Server struct {
	in         io.Reader
	out        io.Writer
	executable string // path to the dtk executable
	extraArgs  []string
}

// Request represents a JSON-RPC 2.0 request.
type Request struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      interface{}      `json:"id,omitempty"`
	Method  string           `json:"method"`
	Params  *json.RawMessage `json:"params,omitempty"`
}

// Response represents a JSON-RPC 2.0 response.
type Response struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id,omitempty"`
	Result  interface{} `json:"result,omitempty"`
	Error   *RPCError   `json:"error,omitempty"`
}

// RPCError represents a JSON-RPC 2.0 error.
type RPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ServerInfo contains server capability information.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// ServerCapabilities defines what the server can do.
type ServerCapabilities struct {
	Tools *ToolsCapability `json:"tools,omitempty"`
}

// ToolsCapability indicates tool support.
type ToolsCapability struct {
	ListChanged bool `json:"listChanged,omitempty"`
}

// Tool represents an MCP tool definition.
type Tool struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	InputSchema InputSchema `json:"inputSchema"`
}

// InputSchema defines the JSON schema for tool input.
type InputSchema struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties,omitempty"`
	Required   []string               `json:"required,omitempty"`
}

// ToolResult represents the result of a tool call.
type ToolResult struct {
	Content []ToolContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

// ToolContent represents content in a tool result.
type ToolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// NewServer creates a new MCP server. extraArgs are forwarded to every
// CLI invocation (e.g. --database, --config).
func NewServer(extraArgs []string) *Server {
	// Tool execution shells out to the running binary itself.
	executable, err := os.Executable()
	if err != nil {
		// Fall back to "dtk" and hope it's in PATH
		executable = "dtk"
	}

	return &Server{
		in:         os.Stdin,
		out:        os.Stdout,
		executable: executable,
		extraArgs:  extraArgs,
	}
}

// Run starts the MCP server's main loop.
func (s *Server) Run() error {
	scanner := bufio.NewScanner(s.in)
	// MCP uses line-delimited JSON
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	// Protocol owns stdout; all logging goes to stderr.
	fmt.Fprintln(os.Stderr, "[dtk-mcp] Server starting")

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var req Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			fmt.Fprintln(os.Stderr, "[dtk-mcp] Parse error:", err)
			s.sendError(nil, -32700, "Parse error", err.Error())
			continue
		}

		s.handleRequest(&req)
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, "[dtk-mcp] Scanner error:", err)
		return err
	}

	fmt.Fprintln(os.Stderr, "[dtk-mcp] Server shutting down")
	return nil
}

func (s *Server) handleRequest(req *Request) {
	isNotification := req.ID == nil

	switch req.Method {
	case "initialize":
		s.handleInitialize(req)
	case "initialized", "notifications/initialized":
		// Client notification, no response needed
		return
	case "tools/list":
		s.handleToolsList(req)
	case "tools/call":
		s.handleToolsCall(req)
	case "ping":
		s.sendResult(req.ID, map[string]interface{}{})
	case "notifications/cancelled":
		return
	default:
		if !isNotification {
			s.sendError(req.ID, -32601, "Method not found", req.Method)
		}
	}
}

func (s *Server) handleInitialize(req *Request) {
	result := map[string]interface{}{
		"protocolVersion": "2024-11-05",
		"capabilities": ServerCapabilities{
			Tools: &ToolsCapability{},
		},
		"serverInfo": ServerInfo{
			Name:    "dtk-mcp",
			Version: "0.1.0",
		},
	}
	s.sendResult(req.ID, result)
}

func (s *Server) handleToolsList(req *Request) {
	s.sendResult(req.ID, map[string]interface{}{"tools": GenerateToolSchemas()})
}

func (s *Server) handleToolsCall(req *Request) {
	var params struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}

	if req.Params != nil {
		if err := json.Unmarshal(*req.Params, &params); err != nil {
			s.sendError(req.ID, -32602, "Invalid params", err.Error())
			return
		}
	}

	result, isError := s.callTool(params.Name, params.Arguments)
	s.sendResult(req.ID, ToolResult{
		Content: []ToolContent{{Type: "text", Text: result}},
		IsError: isError,
	})
}

func (s *Server) callTool(name string, args map[string]interface{}) (string, bool) {
	cmdArgs, err := CLIArgs(name, args)
	if err != nil {
		return fmt.Sprintf(`{"ok":false,"error":{"code":"INVALID_TOOL_CALL","message":%q}}`, err.Error()), true
	}
	return s.executeCLI(cmdArgs)
}

func (s *Server) executeCLI(args []string) (string, bool) {
	args = append(args, s.extraArgs...)

	cmd := exec.Command(s.executable, args...)

	fmt.Fprintf(os.Stderr, "[dtk-mcp] Executing: %s %v\n", s.executable, args)

	output, err := cmd.Output()

	if err != nil {
		stderr := ""
		if exitErr, ok := err.(*exec.ExitError); ok {
			stderr = string(exitErr.Stderr)
		}
		fmt.Fprintf(os.Stderr, "[dtk-mcp] Command error: %v, output: %s%s\n", err, output, stderr)
		// The CLI emits a JSON error envelope even on non-zero exit.
		var result map[string]interface{}
		if json.Unmarshal(output, &result) == nil && len(result) > 0 {
			return string(output), true
		}
		errMsg := strings.TrimSpace(err.Error() + " " + stderr)
		return fmt.Sprintf(`{"ok":false,"error":{"code":"EXECUTION_ERROR","message":%q}}`, errMsg), true
	}

	return string(output), false
}

func (s *Server) sendResult(id interface{}, result interface{}) {
	s.send(Response{JSONRPC: "2.0", ID: id, Result: result})
}

func (s *Server) sendError(id interface{}, code int, message, data string) {
	s.send(Response{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &RPCError{Code: code, Message: message, Data: data},
	})
}

func (s *Server) send(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	fmt.Fprintln(s.out, string(data))
}
