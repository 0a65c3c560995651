// Package main is the entry point for the keycalc terminal calculator.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/dshills/keycalc/internal/app"
	"github.com/dshills/keycalc/internal/calc"
	"github.com/dshills/keycalc/internal/config"
	"github.com/dshills/keycalc/internal/config/loader"
	"github.com/dshills/keycalc/internal/renderer/backend"
	"github.com/dshills/keycalc/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath string
	logLevel   string
	logFile    string
	eval       string
	script     string
	json       bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		var parseErr *loader.ParseError
		var validErr *config.ValidationError
		if errors.As(err, &parseErr) || errors.As(err, &validErr) {
			fmt.Fprintf(os.Stderr, "Error: invalid config file: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		}
		return 1
	}

	interactive := opts.eval == "" && opts.script == "" && term.IsTerminal(int(os.Stdin.Fd()))

	logger, closeLog, err := newLogger(opts, cfg, interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	switch {
	case opts.script != "":
		err = runScript(ctx, opts, logger)
	case opts.eval != "":
		err = runBatch(strings.NewReader(opts.eval), opts, logger)
	case !interactive:
		err = runBatch(os.Stdin, opts, logger)
	default:
		err = runInteractive(ctx, cfg, logger)
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runInteractive hosts the calculator in the terminal.
func runInteractive(ctx context.Context, cfg config.Config, logger *app.Logger) error {
	terminal, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}

	application, err := app.New(app.Options{
		Backend:     terminal,
		Config:      &cfg,
		ConfigPath:  cfg.Path,
		WatchConfig: cfg.Path != "",
		Logger:      logger,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer application.Shutdown()

	return application.Run(ctx)
}

// runBatch evaluates tapes read from r, one per line.
func runBatch(r io.Reader, opts options, logger *app.Logger) error {
	metrics := app.NewMetrics()
	_, err := app.RunBatch(r, os.Stdout, app.BatchOptions{
		JSON:    opts.json,
		Logger:  logger,
		Metrics: metrics,
	})
	logger.Debug("batch done: %s", metrics.Snapshot())
	return err
}

// runScript runs a Lua script against a fresh calculator.
func runScript(ctx context.Context, opts options, logger *app.Logger) error {
	metrics := app.NewMetrics()
	log := logger.WithComponent("script")

	runner := script.NewRunner(
		script.WithOutput(os.Stdout),
		script.WithPressHook(func(sym calc.Symbol, before, after calc.State) {
			metrics.RecordPress(sym, after)
			log.Debug("%s: %s -> %s", sym, before, after)
		}),
	)
	defer func() { _ = runner.Close() }()

	if err := runner.RunFile(ctx, opts.script); err != nil {
		return app.NewComponentError("script", opts.script, err)
	}
	log.Debug("script done: %s", metrics.Snapshot())

	if opts.json {
		return app.WriteState(os.Stdout, runner.State(), true)
	}
	return nil
}

// newLogger builds the logger for the selected mode. Interactive mode
// owns the terminal, so it only logs when a log file is configured.
func newLogger(opts options, cfg config.Config, interactive bool) (*app.Logger, func(), error) {
	level := cfg.Log.Level
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	path := cfg.Log.File
	if opts.logFile != "" {
		path = opts.logFile
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}

	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = func() { _ = f.Close() }
	case interactive:
		return app.NullLogger, closeFn, nil
	}

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(level),
		Output: out,
		Prefix: "keycalc",
	})
	return logger, closeFn, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.configPath, "c", config.DefaultPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, warning, error)")
	flag.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	flag.StringVar(&opts.eval, "eval", "", "Press each symbol of the argument and print the result")
	flag.StringVar(&opts.eval, "e", "", "Press each symbol of the argument and print the result (shorthand)")
	flag.StringVar(&opts.script, "script", "", "Run a Lua script")
	flag.StringVar(&opts.script, "s", "", "Run a Lua script (shorthand)")
	flag.BoolVar(&opts.json, "json", false, "Print results as JSON objects")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keycalc - keypad calculator for the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keycalc [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keycalc                      Open the keypad\n")
		fmt.Fprintf(os.Stderr, "  keycalc -e '5+3*2='          Print 16\n")
		fmt.Fprintf(os.Stderr, "  echo '1/0=' | keycalc -json  Print the state as JSON\n")
		fmt.Fprintf(os.Stderr, "  keycalc -s sums.lua          Run a script\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("keycalc %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if !validLogLevel(opts.logLevel) {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, warning, or error)\n", opts.logLevel)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments: %s\n", strings.Join(flag.Args(), " "))
		os.Exit(1)
	}

	return opts
}

// validLogLevel accepts the names app.ParseLogLevel understands, in any
// case. Empty means the configured level.
func validLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "", "debug", "info", "warn", "warning", "error":
		return true
	default:
		return false
	}
}
