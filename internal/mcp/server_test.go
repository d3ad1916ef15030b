package mcp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeExecutableScript(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func roundTrip(t *testing.T, s *Server, req *Request) Response {
	t.Helper()
	buf := &bytes.Buffer{}
	s.out = buf
	s.handleRequest(req)

	var resp Response
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &resp); err != nil {
		t.Fatalf("parse response: %v\nraw: %s", err, buf.String())
	}
	return resp
}

func TestInitialize(t *testing.T) {
	s := &Server{}
	resp := roundTrip(t, s, &Request{JSONRPC: "2.0", ID: 1, Method: "initialize"})

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("result = %T", resp.Result)
	}
	if result["protocolVersion"] != "2024-11-05" {
		t.Errorf("protocolVersion = %v", result["protocolVersion"])
	}
	info, _ := result["serverInfo"].(map[string]interface{})
	if info["name"] != "dtk-mcp" {
		t.Errorf("serverInfo = %v", result["serverInfo"])
	}
}

func TestToolsList(t *testing.T) {
	s := &Server{}
	resp := roundTrip(t, s, &Request{JSONRPC: "2.0", ID: 2, Method: "tools/list"})

	raw, _ := json.Marshal(resp.Result)
	var result struct {
		Tools []Tool `json:"tools"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode tools: %v", err)
	}
	if len(result.Tools) == 0 {
		t.Fatal("no tools listed")
	}

	names := make(map[string]bool)
	for _, tool := range result.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{"dtk_get", "dtk_search", "dtk_create", "dtk_tag_add"} {
		if !names[want] {
			t.Errorf("tool %s not listed", want)
		}
	}
}

func TestUnknownMethod(t *testing.T) {
	s := &Server{}
	resp := roundTrip(t, s, &Request{JSONRPC: "2.0", ID: 3, Method: "bogus/method"})
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Errorf("error = %+v", resp.Error)
	}
}

func TestNotificationsProduceNoResponse(t *testing.T) {
	s := &Server{}
	buf := &bytes.Buffer{}
	s.out = buf
	s.handleRequest(&Request{JSONRPC: "2.0", Method: "notifications/initialized"})
	s.handleRequest(&Request{JSONRPC: "2.0", Method: "bogus/notification"})
	if buf.Len() != 0 {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestToolsCallShellsOut(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture")
	}

	// Fake dtk binary that echoes a success envelope with its argv.
	exe := writeExecutableScript(t, t.TempDir(), "dtk", fmt.Sprintf(
		"#!/bin/sh\nprintf '{\"ok\":true,\"data\":{\"argv\":\"%%s\"}}' \"$*\"\n"))

	s := &Server{executable: exe}
	params := json.RawMessage(`{"name": "dtk_get", "arguments": {"name": "Report"}}`)
	resp := roundTrip(t, s, &Request{JSONRPC: "2.0", ID: 4, Method: "tools/call", Params: &params})

	raw, _ := json.Marshal(resp.Result)
	var result ToolResult
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode tool result: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if len(result.Content) != 1 {
		t.Fatalf("content = %+v", result.Content)
	}
	text := result.Content[0].Text
	if !strings.Contains(text, "get --name Report --json") {
		t.Errorf("CLI argv not forwarded: %s", text)
	}
}

func TestToolsCallCommandFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixture")
	}

	exe := writeExecutableScript(t, t.TempDir(), "dtk", "#!/bin/sh\nexit 3\n")

	s := &Server{executable: exe}
	params := json.RawMessage(`{"name": "dtk_databases", "arguments": {}}`)
	resp := roundTrip(t, s, &Request{JSONRPC: "2.0", ID: 5, Method: "tools/call", Params: &params})

	raw, _ := json.Marshal(resp.Result)
	var result ToolResult
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode tool result: %v", err)
	}
	if !result.IsError {
		t.Error("expected error result")
	}
	if !strings.Contains(result.Content[0].Text, "EXECUTION_ERROR") {
		t.Errorf("text = %s", result.Content[0].Text)
	}
}

func TestToolsCallUnknownTool(t *testing.T) {
	s := &Server{}
	params := json.RawMessage(`{"name": "dtk_bogus", "arguments": {}}`)
	resp := roundTrip(t, s, &Request{JSONRPC: "2.0", ID: 6, Method: "tools/call", Params: &params})

	raw, _ := json.Marshal(resp.Result)
	var result ToolResult
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("decode tool result: %v", err)
	}
	if !result.IsError || !strings.Contains(result.Content[0].Text, "INVALID_TOOL_CALL") {
		t.Errorf("result = %+v", result)
	}
}
