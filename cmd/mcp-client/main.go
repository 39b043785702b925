package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: mcp-client <server-command> [<args>]")
		fmt.Fprintln(os.Stderr, "Example: mcp-client ./sysdoctor-mcp --rules rules.json")
		os.Exit(2)
	}

	ctx := context.Background()

	// Start the server as a subprocess
	cmd := exec.Command(args[0], args[1:]...)
	transport := &mcp.CommandTransport{Command: cmd}

	// Create MCP client
	client := mcp.NewClient(&mcp.Implementation{
		Name:    "sysdoctor-client",
		Version: "1.0.0",
	}, nil)

	// Connect to the server
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer session.Close()

	fmt.Println("Connected to System Doctor MCP Server!")
	fmt.Println("Available commands:")
	fmt.Println("  /tools       - List available tools")
	fmt.Println("  /diagnose    - Diagnose this host")
	fmt.Println("  /rules       - List rules and thresholds")
	fmt.Println("  /thresholds  - Show effective thresholds")
	fmt.Println("  /eval key=value ... - Evaluate a what-if snapshot")
	fmt.Println("                 e.g. /eval cpu_usage_percent=93 disk_usage_percent=97")
	fmt.Println("  /exit        - Exit the client")
	fmt.Println()

	// Interactive REPL
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch {
		case input == "/exit":
			fmt.Println("Goodbye!")
			return

		case input == "/tools":
			listTools(ctx, session)

		case input == "/diagnose":
			callTool(ctx, session, "diagnose_system", map[string]any{})

		case input == "/rules":
			callTool(ctx, session, "list_rules", map[string]any{})

		case input == "/thresholds":
			callTool(ctx, session, "get_thresholds", map[string]any{})

		case strings.HasPrefix(input, "/eval"):
			args, err := parseSnapshotArgs(strings.Fields(input)[1:])
			if err != nil {
				fmt.Printf("Error: %v\n\n", err)
				continue
			}
			callTool(ctx, session, "evaluate_snapshot", args)

		default:
			fmt.Printf("Unknown command %q; try /tools\n\n", input)
		}
	}

	if err := scanner.Err(); err != nil {
		log.Printf("Scanner error: %v", err)
	}
}

func listTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("Available Tools:")
	for tool, err := range session.Tools(ctx, nil) {
		if err != nil {
			log.Printf("Error listing tools: %v", err)
			return
		}
		fmt.Printf("  - %s: %s\n", tool.Name, tool.Description)
	}
	fmt.Println()
}

func callTool(ctx context.Context, session *mcp.ClientSession, toolName string, args map[string]any) {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolName,
		Arguments: args,
	})
	if err != nil {
		log.Printf("Error calling tool: %v", err)
		return
	}

	printResult(result)
}

func printResult(result *mcp.CallToolResult) {
	if result.IsError {
		fmt.Printf("❌ Error: ")
	} else {
		fmt.Printf("✅ Result: ")
	}

	// Try to pretty-print the content
	for _, content := range result.Content {
		switch v := content.(type) {
		case *mcp.TextContent:
			fmt.Println(v.Text)
		default:
			// Try JSON marshaling for other types
			jsonData, err := json.MarshalIndent(content, "", "  ")
			if err != nil {
				fmt.Printf("%+v\n", content)
			} else {
				fmt.Println(string(jsonData))
			}
		}
	}
	fmt.Println()
}

// parseSnapshotArgs turns key=value pairs into evaluate_snapshot arguments.
func parseSnapshotArgs(pairs []string) (map[string]any, error) {
	args := map[string]any{}
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("expected key=value, got %q", p)
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		args[key] = f
	}
	return args, nil
}
