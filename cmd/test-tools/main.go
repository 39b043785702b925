package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"sysdoctor/internal/app"
)

func main() {
	if err := app.LoadEnv(".env", false); err != nil {
		log.Fatalf("❌ %v", err)
	}

	fmt.Println("🧪 Testing MCP Server and Tool Calling")
	fmt.Println("=======================================")
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	serverPath := findServerBinary()
	if serverPath == "" {
		log.Fatal("❌ MCP server binary not found. Run: go build -o sysdoctor-mcp ./cmd/sysdoctor-mcp")
	}
	fmt.Println("✅ Test 1: MCP server binary found")

	// The server inherits SYSDOCTOR_* settings from the environment.
	cmd := exec.Command(serverPath)
	cmd.Env = os.Environ()
	cmd.Stderr = os.Stderr
	transport := &mcp.CommandTransport{Command: cmd}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("❌ Failed to connect to MCP server: %v", err)
	}
	defer session.Close()
	fmt.Println("✅ Test 2: Connected to MCP server")

	fmt.Println("\n✓ Test 3: Listing available tools")
	listResult, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Fatalf("❌ Failed to list tools: %v", err)
	}
	fmt.Printf("  Found %d tools:\n", len(listResult.Tools))
	for _, tool := range listResult.Tools {
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}

	calls := []struct {
		name string
		args map[string]any
	}{
		{"get_thresholds", map[string]any{}},
		{"list_rules", map[string]any{}},
		{"evaluate_snapshot", map[string]any{
			"cpu_usage_percent":  90,
			"ram_usage_percent":  90,
			"disk_usage_percent": 96,
			"load_average":       10,
			"uptime_hours":       1,
		}},
		{"diagnose_system", map[string]any{}},
	}

	failed := 0
	for i, c := range calls {
		fmt.Printf("\n✓ Test %d: Testing %s tool\n", i+4, c.name)
		result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: c.name, Arguments: c.args})
		if err != nil {
			fmt.Printf("  ❌ %s failed: %v\n", c.name, err)
			failed++
			continue
		}
		if result.IsError {
			fmt.Printf("  ❌ %s returned a tool error\n", c.name)
			failed++
		} else {
			fmt.Printf("  ✅ %s called successfully\n", c.name)
		}
		printPreview(result)
	}

	fmt.Println("\n=======================================")
	if failed > 0 {
		fmt.Printf("❌ %d tool call(s) failed\n", failed)
		os.Exit(1)
	}
	fmt.Println("✅ All MCP tool calling tests complete!")
	fmt.Println("\n💡 To test interactively, run: go run ./cmd/mcp-client ./sysdoctor-mcp")
}

func printPreview(result *mcp.CallToolResult) {
	for i, content := range result.Content {
		if i >= 3 {
			fmt.Printf("  ... and %d more content items\n", len(result.Content)-i)
			break
		}
		switch v := content.(type) {
		case *mcp.TextContent:
			preview := v.Text
			if len(preview) > 200 {
				preview = preview[:200] + "..."
			}
			fmt.Printf("    %s\n", preview)
		default:
			fmt.Printf("    [%T]\n", content)
		}
	}
}

func findServerBinary() string {
	candidates := []string{
		"./sysdoctor-mcp",
		"../../sysdoctor-mcp",
		"../../../sysdoctor-mcp",
	}
	for _, p := range candidates {
		if abs, err := filepath.Abs(p); err == nil {
			if _, err := os.Stat(abs); err == nil {
				return abs
			}
		}
	}
	return ""
}
