package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"sysdoctor/internal/collector"
	"sysdoctor/internal/engine"
	"sysdoctor/internal/output"
)

// Server exposes the diagnostic engine as MCP tools.
type Server struct {
	mcpServer  *mcp.Server
	provider   collector.Provider
	thresholds engine.Thresholds
	source     string
	logger     *slog.Logger
}

// Config holds configuration for the MCP server.
type Config struct {
	ServerName    string
	ServerVersion string
	// RulesSource names where the thresholds came from, for get_thresholds.
	RulesSource string
}

// NewServer creates a new MCP server instance with all tools registered.
func NewServer(cfg Config, provider collector.Provider, t engine.Thresholds, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	impl := &mcp.Implementation{
		Name:    cfg.ServerName,
		Version: cfg.ServerVersion,
	}

	s := &Server{
		mcpServer:  mcp.NewServer(impl, nil),
		provider:   provider,
		thresholds: t,
		source:     cfg.RulesSource,
		logger:     logger,
	}
	s.registerTools()
	return s
}

// NoArgs is the input of tools that take no parameters.
type NoArgs struct{}

// DiagnoseResult is the output of diagnose_system.
type DiagnoseResult struct {
	Hostname    string             `json:"hostname,omitempty" jsonschema:"host the snapshot was taken on"`
	CollectedAt string             `json:"collected_at" jsonschema:"RFC 3339 time of the snapshot"`
	Healthy     bool               `json:"healthy" jsonschema:"true when no rule fired"`
	Diagnoses   []engine.Diagnosis `json:"diagnoses" jsonschema:"triggered diagnoses in rule order"`
	Checks      []output.Check     `json:"checks" jsonschema:"each metric compared against its threshold"`
	Warnings    []string           `json:"warnings,omitempty" jsonschema:"sensors that could not be read"`
}

// EvaluateArgs is a caller-supplied snapshot for evaluate_snapshot.
type EvaluateArgs struct {
	CPUTemperature   *float64 `json:"cpu_temperature,omitempty" jsonschema:"CPU temperature in Celsius; omit when unknown"`
	CPUUsagePercent  float64  `json:"cpu_usage_percent" jsonschema:"CPU usage 0-100"`
	RAMUsagePercent  float64  `json:"ram_usage_percent" jsonschema:"RAM usage 0-100"`
	DiskUsagePercent float64  `json:"disk_usage_percent" jsonschema:"disk usage 0-100"`
	LoadAverage      float64  `json:"load_average" jsonschema:"1-minute load average"`
	UptimeHours      float64  `json:"uptime_hours" jsonschema:"uptime in hours"`
}

// EvaluateResult is the output of evaluate_snapshot.
type EvaluateResult struct {
	Healthy   bool               `json:"healthy" jsonschema:"true when no rule fired"`
	Diagnoses []engine.Diagnosis `json:"diagnoses" jsonschema:"triggered diagnoses in rule order"`
}

// ThresholdsResult is the output of get_thresholds.
type ThresholdsResult struct {
	Source     string            `json:"source" jsonschema:"rules file path or defaults"`
	Thresholds engine.Thresholds `json:"thresholds" jsonschema:"effective thresholds"`
}

// ListRulesResult is the output of list_rules.
type ListRulesResult struct {
	Rules []output.RuleInfo `json:"rules" jsonschema:"rules in evaluation order"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "diagnose_system",
		Description: "Read the current host metrics and run every diagnostic rule against them. Returns triggered problems with their cause and fix, plus each metric compared to its threshold.",
	}, s.handleDiagnoseSystem)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "evaluate_snapshot",
		Description: "Run the diagnostic rules against metrics you supply instead of the live host. Useful for what-if checks.",
	}, s.handleEvaluateSnapshot)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_thresholds",
		Description: "Return the thresholds the rules compare against and where they were loaded from.",
	}, s.handleGetThresholds)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_rules",
		Description: "List the diagnostic rules in evaluation order with their effective thresholds.",
	}, s.handleListRules)
}

func (s *Server) handleDiagnoseSystem(ctx context.Context, _ *mcp.CallToolRequest, _ NoArgs) (*mcp.CallToolResult, DiagnoseResult, error) {
	r, err := output.Run(ctx, s.provider, s.thresholds)
	if err != nil {
		return nil, DiagnoseResult{}, fmt.Errorf("diagnose: %w", err)
	}
	if r.CollectErr != nil {
		s.logger.Warn("partial snapshot", "error", r.CollectErr)
	}

	return nil, DiagnoseResult{
		Hostname:    r.Snapshot.Hostname,
		CollectedAt: r.GeneratedAt.Format(time.RFC3339),
		Healthy:     r.Healthy,
		Diagnoses:   r.Diagnoses,
		Checks:      r.Checks,
		Warnings:    r.Warnings,
	}, nil
}

func (s *Server) handleEvaluateSnapshot(_ context.Context, _ *mcp.CallToolRequest, args EvaluateArgs) (*mcp.CallToolResult, EvaluateResult, error) {
	snap := collector.Snapshot{
		CPUUsagePercent:  args.CPUUsagePercent,
		RAMUsagePercent:  args.RAMUsagePercent,
		DiskUsagePercent: args.DiskUsagePercent,
		LoadAverage:      args.LoadAverage,
		UptimeHours:      args.UptimeHours,
	}
	if args.CPUTemperature != nil {
		snap.CPUTemperature = collector.Celsius(*args.CPUTemperature)
	}

	diags := engine.Evaluate(snap, s.thresholds)
	return nil, EvaluateResult{Healthy: len(diags) == 0, Diagnoses: diags}, nil
}

func (s *Server) handleGetThresholds(_ context.Context, _ *mcp.CallToolRequest, _ NoArgs) (*mcp.CallToolResult, ThresholdsResult, error) {
	return nil, ThresholdsResult{Source: s.source, Thresholds: s.thresholds}, nil
}

func (s *Server) handleListRules(_ context.Context, _ *mcp.CallToolRequest, _ NoArgs) (*mcp.CallToolResult, ListRulesResult, error) {
	return nil, ListRulesResult{Rules: output.DescribeRules(s.thresholds)}, nil
}

// Start serves MCP over stdio until ctx is done or the client disconnects.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting MCP server on stdio")
	transport := &mcp.StdioTransport{}
	return s.mcpServer.Run(ctx, transport)
}
