package mcp

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/lucad87/mcp-server-tests-migration/internal/logging"
	"github.com/lucad87/mcp-server-tests-migration/internal/mapping"
	"github.com/lucad87/mcp-server-tests-migration/internal/rewrite"
	"github.com/lucad87/mcp-server-tests-migration/internal/version"
)

// newTestMCPServer creates an MCP server for testing
func newTestMCPServer(t *testing.T) *MCPServer {
	t.Helper()

	logger := logging.NewLogger(logging.Config{
		Format: logging.HumanFormat,
		Level:  logging.ErrorLevel,
		Output: io.Discard,
	})

	engine := rewrite.NewEngine(mapping.NewRegistry())

	return NewMCPServer(version.Version, engine, logger)
}

// sendRequest sends a request and returns the response
func sendRequest(t *testing.T, server *MCPServer, method string, id int, params interface{}) *MCPMessage {
	t.Helper()

	request := MCPMessage{
		Jsonrpc: "2.0",
		Id:      id,
		Method:  method,
		Params:  params,
	}

	requestBytes, err := json.Marshal(request)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}
	requestBytes = append(requestBytes, '\n')

	stdin := bytes.NewReader(requestBytes)
	stdout := &bytes.Buffer{}

	server.SetStdin(stdin)
	server.SetStdout(stdout)

	msg, err := server.readMessage()
	if err != nil && err != io.EOF {
		t.Fatalf("Failed to read message: %v", err)
	}

	return server.handleMessage(msg)
}

// callTool invokes a tool through tools/call and decodes the text payload
func callTool(t *testing.T, server *MCPServer, name string, args map[string]interface{}) map[string]interface{} {
	t.Helper()

	response := sendRequest(t, server, "tools/call", 1, map[string]interface{}{
		"name":      name,
		"arguments": args,
	})
	if response.Error != nil {
		t.Fatalf("tools/call %s failed: %v", name, response.Error)
	}

	result, ok := response.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("Result should be an object, got %T", response.Result)
	}

	content, ok := result["content"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Result should have content, got %T", result["content"])
	}
	if len(content) != 1 {
		t.Fatalf("Expected one content block, got %d", len(content))
	}

	text, _ := content[0]["text"].(string)
	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		t.Fatalf("Failed to decode tool payload: %v", err)
	}
	return payload
}

func TestMCPServerCreation(t *testing.T) {
	server := newTestMCPServer(t)

	if server == nil {
		t.Fatal("Server should not be nil")
	}
	if len(server.tools) == 0 {
		t.Error("Server should have registered tools")
	}
	if len(server.tools) != len(server.GetToolDefinitions()) {
		t.Error("Every tool definition should have a handler")
	}
}

func TestInitializeMethod(t *testing.T) {
	server := newTestMCPServer(t)

	params := map[string]interface{}{
		"protocolVersion": "2024-11-05",
		"capabilities":    map[string]interface{}{},
		"clientInfo": map[string]interface{}{
			"name":    "test-client",
			"version": "1.0.0",
		},
	}

	response := sendRequest(t, server, "initialize", 1, params)

	if response == nil {
		t.Fatal("Response should not be nil")
	}
	if response.Error != nil {
		t.Fatalf("Initialize should not return error: %v", response.Error)
	}

	result, ok := response.Result.(*InitializeResult)
	if !ok {
		t.Fatalf("Result should be InitializeResult, got %T", response.Result)
	}
	if result.ServerInfo.Name != "testmig" {
		t.Errorf("ServerInfo.Name = %q, want %q", result.ServerInfo.Name, "testmig")
	}
	if result.ProtocolVersion != "2024-11-05" {
		t.Errorf("ProtocolVersion = %q", result.ProtocolVersion)
	}
}

func TestListToolsMethod(t *testing.T) {
	server := newTestMCPServer(t)

	response := sendRequest(t, server, "tools/list", 2, map[string]interface{}{})

	if response.Error != nil {
		t.Fatalf("tools/list should not return error: %v", response.Error)
	}

	result, ok := response.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("Result should be an object, got %T", response.Result)
	}

	tools, ok := result["tools"].([]Tool)
	if !ok {
		t.Fatalf("tools should be []Tool, got %T", result["tools"])
	}

	want := map[string]bool{
		"migrateTest":        false,
		"analyzeTest":        false,
		"generatePageObject": false,
		"migrateConfig":      false,
		"registerMapping":    false,
		"getMigrationDocs":   false,
		"migrationReport":    false,
		"getStatus":          false,
	}
	for _, tool := range tools {
		if _, ok := want[tool.Name]; ok {
			want[tool.Name] = true
		}
		if tool.Description == "" {
			t.Errorf("Tool %s has no description", tool.Name)
		}
		if tool.InputSchema == nil {
			t.Errorf("Tool %s has no input schema", tool.Name)
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("Tool %s not listed", name)
		}
	}
}

func TestUnknownMethod(t *testing.T) {
	server := newTestMCPServer(t)

	response := sendRequest(t, server, "nonexistent/method", 3, nil)

	if response.Error == nil {
		t.Fatal("Unknown method should return error")
	}
	if response.Error.Code != MethodNotFound {
		t.Errorf("Error code = %d, want %d", response.Error.Code, MethodNotFound)
	}
}

func TestNotificationProducesNoResponse(t *testing.T) {
	server := newTestMCPServer(t)

	msg := &MCPMessage{
		Jsonrpc: "2.0",
		Method:  "notifications/initialized",
	}

	if response := server.handleMessage(msg); response != nil {
		t.Errorf("Notification should not produce a response, got %+v", response)
	}
}

func TestCallUnknownTool(t *testing.T) {
	server := newTestMCPServer(t)

	response := sendRequest(t, server, "tools/call", 4, map[string]interface{}{
		"name":      "nope",
		"arguments": map[string]interface{}{},
	})

	if response.Error == nil {
		t.Fatal("Unknown tool should return error")
	}
}

func TestInvalidCallParams(t *testing.T) {
	server := newTestMCPServer(t)

	response := sendRequest(t, server, "tools/call", 5, "not-an-object")

	if response.Error == nil {
		t.Fatal("Invalid params should return error")
	}
	if response.Error.Code != InvalidParams {
		t.Errorf("Error code = %d, want %d", response.Error.Code, InvalidParams)
	}
}
