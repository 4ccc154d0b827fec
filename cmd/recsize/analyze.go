package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jamesainslie/recsize/pkg/recsize/config"
	"github.com/jamesainslie/recsize/pkg/recsize/engine"
	"github.com/jamesainslie/recsize/pkg/recsize/logging"
	"github.com/jamesainslie/recsize/pkg/recsize/output"
	"github.com/jamesainslie/recsize/pkg/recsize/scanner"
	"github.com/jamesainslie/recsize/pkg/recsize/types"
)

// runAnalyze is the main command handler: scan, analyze, format.
func runAnalyze(cmd *cobra.Command, args []string) error {
	// No directory argument behaves like --help (exit 0).
	if len(args) == 0 {
		return cmd.Help()
	}

	if err := initLogging(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logging.Close() }()

	expandedPath, err := config.ExpandPath(args[0])
	if err != nil {
		return fmt.Errorf("failed to expand path: %w", err)
	}

	absPath, err := filepath.Abs(expandedPath)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", absPath)
		}
		return fmt.Errorf("cannot access path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", absPath)
	}

	// Cancel the scan on Ctrl-C.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := scanner.Options{
		Root:       absPath,
		Exclude:    viper.GetStringSlice("exclude"),
		OnProgress: progressPrinter(),
	}

	printVerbose("Scanning %s (exclude: %v)", absPath, opts.Exclude)

	result, err := scanner.New(opts).Scan(ctx)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	clearProgress()

	report, err := engine.Analyze(result)
	if err != nil {
		if errors.Is(err, engine.ErrNoFiles) {
			fmt.Println("No files found.")
			return nil
		}
		return err
	}

	return renderReport(report, result, absPath)
}

// renderReport formats the report with the configured formatter and
// prints it to stdout.
func renderReport(report *engine.Report, result *types.ScanResult, source string) error {
	outFormat := viper.GetString("output")
	if outFormat == "" {
		outFormat = config.DefaultOutput
	}
	// Colored output makes no sense with color disabled; fall back to the
	// plain renderer.
	if outFormat == "pretty" && viper.GetBool("no_color") {
		outFormat = "plain"
	}

	formatter, err := output.Get(outFormat)
	if err != nil {
		return fmt.Errorf("%w (available: %v)", err, output.Available())
	}

	res := &output.Result{
		Report:      report,
		Source:      source,
		Elapsed:     result.Elapsed,
		FSBlockSize: result.FSBlockSize,
		ScanErrors:  len(result.Errors),
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, res); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	fmt.Print(buf.String())
	return nil
}

// progressPrinter returns a progress callback writing a single updating
// line to stderr, or nil when quiet mode is on.
func progressPrinter() func(types.ScanProgress) {
	if getQuiet() {
		return nil
	}
	return func(p types.ScanProgress) {
		fmt.Fprintf(os.Stderr, "\rScanning... %d files, %d dirs (%s)",
			p.FilesScanned, p.DirsScanned, types.FormatSize(p.BytesScanned))
	}
}

// clearProgress erases the progress line before the report prints.
func clearProgress() {
	if getQuiet() {
		return
	}
	fmt.Fprintf(os.Stderr, "\r\033[K")
}

// initLogging configures the logging system from config and flags.
func initLogging() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCfg := logging.Config{
		Level:      cfg.Logging.Level,
		Path:       cfg.Logging.Path,
		Components: cfg.Logging.Components,
	}
	if getVerbose() {
		logCfg.Level = "debug"
		logCfg.ConsoleLevel = "debug"
	}

	return logging.Init(logCfg)
}
