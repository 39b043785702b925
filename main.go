package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"sysdoctor/internal/app"
	"sysdoctor/internal/collector"
	"sysdoctor/internal/logging"
	"sysdoctor/internal/output"
	"sysdoctor/internal/rulesconfig"
	"sysdoctor/ui/console"
	"sysdoctor/ui/tui"
)

// exitProblems is the exit status of check --fail-on-problem when a rule fired.
const exitProblems = 2

// errProblemsDetected is returned by check --fail-on-problem. main turns it
// into exitProblems once the After hook has run.
var errProblemsDetected = errors.New("problems detected")

type runner struct {
	logger *slog.Logger
	closer io.Closer
	rules  rulesconfig.Result

	// provider replaces the system collector when set.
	provider collector.Provider
}

func main() {
	// The env file must be loaded before flags read their EnvVars.
	envFile, explicit := envFileFromArgs(os.Args[1:])
	if err := app.LoadEnv(envFile, explicit); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := &runner{}
	err := r.app().RunContext(ctx, os.Args)
	if code := exitCode(err); code != 0 {
		if !errors.Is(err, errProblemsDetected) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(code)
	}
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errProblemsDetected):
		return exitProblems
	}
	return 1
}

func (r *runner) app() *cli.App {
	return &cli.App{
		Name:    app.Name,
		Usage:   "diagnose common host problems from CPU, memory, disk, load and uptime",
		Version: app.Version,
		Flags:   globalFlags(),
		Before:  r.before,
		After:   r.after,
		// Running without a command means check. Its flags only exist on
		// the subcommand, so "sysdoctor --format yaml rules" is rejected.
		DefaultCommand: "check",
		Commands: []*cli.Command{
			{
				Name:   "check",
				Usage:  "collect one snapshot and print diagnoses (default)",
				Flags:  checkFlags(),
				Action: r.check,
			},
			{
				Name:   "tui",
				Usage:  "interactive viewer",
				Action: r.tui,
			},
			{
				Name:  "rules",
				Usage: "list the rules with their effective thresholds",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: "text", Usage: "text, json or yaml"},
				},
				Action: r.listRules,
			},
			{
				Name:  "thresholds",
				Usage: "print the effective thresholds",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: "json", Usage: "json or yaml"},
				},
				Action: r.thresholds,
			},
		},
	}
}

func globalFlags() []cli.Flag {
	logDefaults := logging.DefaultConfig()
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "rules",
			Aliases: []string{"r"},
			Value:   "rules.json",
			Usage:   "thresholds file (.json, .yaml or .yml)",
			EnvVars: []string{"SYSDOCTOR_RULES"},
		},
		&cli.StringFlag{
			Name:  "env-file",
			Value: ".env",
			Usage: "load environment variables from `FILE`",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   string(logDefaults.Level),
			Usage:   "debug, info, warn or error",
			EnvVars: []string{"SYSDOCTOR_LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   string(logDefaults.Format),
			Usage:   "text or json",
			EnvVars: []string{"SYSDOCTOR_LOG_FORMAT"},
		},
		&cli.StringFlag{
			Name:    "log-output",
			Value:   logDefaults.Output,
			Usage:   "stderr, stdout or a file path",
			EnvVars: []string{"SYSDOCTOR_LOG_OUTPUT"},
		},
		&cli.StringFlag{
			Name:    "disk-path",
			Value:   "/",
			Usage:   "filesystem whose usage is checked",
			EnvVars: []string{"SYSDOCTOR_DISK_PATH"},
		},
		&cli.DurationFlag{
			Name:    "cpu-sample",
			Value:   500 * time.Millisecond,
			Usage:   "CPU usage sampling window",
			EnvVars: []string{"SYSDOCTOR_CPU_SAMPLE"},
		},
		&cli.StringSliceFlag{
			Name:    "temp-sensor",
			Usage:   "preferred temperature sensor keys, in order (repeatable)",
			EnvVars: []string{"SYSDOCTOR_TEMP_SENSORS"},
		},
	}
}

func checkFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "text or json"},
		&cli.BoolFlag{Name: "verbose", Usage: "also print every metric and host details"},
		&cli.BoolFlag{Name: "no-color", Usage: "disable colour output (also when NO_COLOR is set)"},
		&cli.BoolFlag{Name: "fail-on-problem", Usage: fmt.Sprintf("exit with status %d when a problem is detected", exitProblems)},
	}
}

func (r *runner) before(c *cli.Context) error {
	level, err := logging.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(c.String("log-format"))
	if err != nil {
		return err
	}

	r.logger, r.closer, err = logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: c.String("log-output"),
	})
	if err != nil {
		return err
	}
	slog.SetDefault(r.logger)

	r.rules = app.LoadThresholds(c.String("rules"), r.logger)
	return nil
}

func (r *runner) after(c *cli.Context) error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

func (r *runner) newCollector(c *cli.Context) (collector.Provider, error) {
	if r.provider != nil {
		return r.provider, nil
	}
	return app.NewCollector(app.CollectorOptions{
		DiskPath:        c.String("disk-path"),
		CPUSample:       c.Duration("cpu-sample"),
		TemperatureKeys: c.StringSlice("temp-sensor"),
	})
}

func (r *runner) check(c *cli.Context) error {
	format := c.String("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q", format)
	}

	col, err := r.newCollector(c)
	if err != nil {
		return err
	}

	report, err := output.Run(c.Context, col, r.rules.Thresholds)
	if err != nil {
		return err
	}
	if report.CollectErr != nil {
		r.logger.Warn("some metrics could not be read", "error", report.CollectErr)
	}
	r.logger.Debug("diagnosis complete", "problems", len(report.Diagnoses))

	w := c.App.Writer
	if format == "json" {
		if err := output.WriteJSON(w, report); err != nil {
			return err
		}
	} else {
		console.Print(w, report, console.Options{
			Color:   !c.Bool("no-color") && os.Getenv("NO_COLOR") == "" && isTerminal(w),
			Verbose: c.Bool("verbose"),
		})
	}

	if c.Bool("fail-on-problem") && !report.Healthy {
		return errProblemsDetected
	}
	return nil
}

func (r *runner) tui(c *cli.Context) error {
	col, err := r.newCollector(c)
	if err != nil {
		return err
	}
	return tui.Start(col, r.rules.Thresholds)
}

func (r *runner) listRules(c *cli.Context) error {
	rules := output.DescribeRules(r.rules.Thresholds)
	w := c.App.Writer

	switch c.String("format") {
	case "json":
		return writeJSON(w, rules)
	case "yaml":
		return writeYAML(w, rules)
	case "text":
	default:
		return fmt.Errorf("unknown format %q", c.String("format"))
	}

	rows := make([][]string, 0, len(rules))
	for _, ri := range rules {
		rows = append(rows, []string{
			ri.ID,
			ri.Severity,
			fmt.Sprintf("%s > %g", ri.ThresholdKey, ri.Threshold),
			ri.Problem,
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("RULE", "SEVERITY", "TRIGGER", "PROBLEM").
		Rows(rows...)
	fmt.Fprintln(w, t.Render())
	fmt.Fprintf(w, "thresholds from: %s\n", r.rules.Source)
	return nil
}

type thresholdsDoc struct {
	Source     string   `json:"source" yaml:"source"`
	Thresholds any      `json:"thresholds" yaml:"thresholds"`
	Unknown    []string `json:"unknown_keys,omitempty" yaml:"unknown_keys,omitempty"`
}

func (r *runner) thresholds(c *cli.Context) error {
	doc := thresholdsDoc{Source: r.rules.Source, Thresholds: r.rules.Thresholds, Unknown: r.rules.Unknown}

	switch c.String("format") {
	case "json":
		return writeJSON(c.App.Writer, doc)
	case "yaml":
		return writeYAML(c.App.Writer, doc)
	}
	return fmt.Errorf("unknown format %q", c.String("format"))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// envFileFromArgs finds --env-file ahead of flag parsing. explicit reports
// whether the user named a file, which makes a missing file an error.
func envFileFromArgs(args []string) (path string, explicit bool) {
	path = ".env"
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return path, explicit
		case a == "--env-file" || a == "-env-file":
			if i+1 < len(args) {
				return args[i+1], true
			}
		case strings.HasPrefix(a, "--env-file="), strings.HasPrefix(a, "-env-file="):
			return a[strings.Index(a, "=")+1:], true
		}
	}
	return path, explicit
}
