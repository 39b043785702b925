package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"sysdoctor/internal/app"
	"sysdoctor/internal/logging"
	"sysdoctor/internal/mcpserver"
)

func main() {
	if err := app.LoadEnv(".env", false); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &cli.App{
		Name:  app.Name + "-mcp",
		Usage: "serve the diagnostic rules as MCP tools over stdio",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rules", Aliases: []string{"r"}, Value: "rules.json", EnvVars: []string{"SYSDOCTOR_RULES"}},
			&cli.StringFlag{Name: "log-level", Value: "info", EnvVars: []string{"SYSDOCTOR_LOG_LEVEL"}},
			&cli.StringFlag{Name: "log-output", Value: logging.DefaultConfig().Output, EnvVars: []string{"SYSDOCTOR_LOG_OUTPUT"}},
			&cli.StringFlag{Name: "disk-path", Value: "/", EnvVars: []string{"SYSDOCTOR_DISK_PATH"}},
			&cli.DurationFlag{Name: "cpu-sample", Value: 500 * time.Millisecond, EnvVars: []string{"SYSDOCTOR_CPU_SAMPLE"}},
			&cli.StringSliceFlag{Name: "temp-sensor", EnvVars: []string{"SYSDOCTOR_TEMP_SENSORS"}},
		},
		Action: serve,
	}

	if err := a.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	level, err := logging.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	output := c.String("log-output")
	if output == "stdout" {
		// stdout carries the MCP protocol.
		return fmt.Errorf("log output cannot be stdout")
	}
	logger, closer, err := logging.New(logging.Config{Level: level, Format: logging.FormatJSON, Output: output})
	if err != nil {
		return err
	}
	defer closer.Close()

	rules := app.LoadThresholds(c.String("rules"), logger)

	col, err := app.NewCollector(app.CollectorOptions{
		DiskPath:        c.String("disk-path"),
		CPUSample:       c.Duration("cpu-sample"),
		TemperatureKeys: c.StringSlice("temp-sensor"),
	})
	if err != nil {
		return err
	}

	server := mcpserver.NewServer(mcpserver.Config{
		ServerName:    app.Name,
		ServerVersion: app.Version,
		RulesSource:   rules.Source,
	}, col, rules.Thresholds, logger)

	if err := server.Start(c.Context); err != nil && c.Context.Err() == nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
