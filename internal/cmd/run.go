// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/xsro/dosbox-interface/internal/conf"
	"github.com/xsro/dosbox-interface/internal/dosbox"
)

const name = "dosbox-run"

// IO provides input and output details for the command.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

// app carries everything commands need for a single invocation.
type app struct {
	globals  *globals
	runner   *dosbox.Runner
	registry *prometheus.Registry
	stdout   io.Writer
}

func newApp(globals *globals, cfg IO, logger *slog.Logger) (*app, error) {
	app := &app{
		globals: globals,
		stdout:  cfg.Stdout,
	}

	opts := []dosbox.Option{
		dosbox.WithDir(globals.Dir),
		dosbox.WithConsole(globals.Console),
		dosbox.WithBinary(globals.Binary),
		dosbox.WithMaxInlineCommands(globals.MaxInline),
		dosbox.WithKeepConfig(globals.KeepConfig),
		dosbox.WithObserver(printObserver{cfg.Stdout, cfg.Stderr}),
		dosbox.WithLogger(logger),
	}

	if globals.MetricsFile != "" {
		app.registry = prometheus.NewRegistry()

		metrics, err := dosbox.NewMetrics(app.registry)
		if err != nil {
			return nil, err
		}

		opts = append(opts, dosbox.WithMetrics(metrics))
	}

	runner, err := dosbox.NewRunner(opts...)
	if err != nil {
		return nil, fmt.Errorf("new runner: %w", err)
	}

	app.runner = runner

	return app, nil
}

// config returns the config to write for runs. It is nil if neither a base
// config nor overrides are given.
func (a *app) config() (*conf.Config, error) {
	if a.globals.Base == "" && a.globals.Overrides == "" {
		return nil, nil //nolint:nilnil
	}

	cfg := conf.Default()

	if a.globals.Base != "" {
		var err error

		cfg, err = conf.LoadFile(a.globals.Base, conf.SkipAutoexecComments())
		if err != nil {
			return nil, fmt.Errorf("base config: %w", err)
		}
	}

	if a.globals.Overrides != "" {
		err := cfg.MergeFile(a.globals.Overrides)
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (a *app) writeMetrics() error {
	if a.registry == nil {
		return nil
	}

	err := prometheus.WriteToTextfile(a.globals.MetricsFile, a.registry)
	if err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}

	return nil
}

func newParser(model *cli, cfg IO, exit func(int)) (*kong.Kong, error) {
	return kong.New(model,
		kong.Name(name),
		kong.Description("Run DOS commands in DOSBox and print their console output."),
		kong.Writers(cfg.Stdout, cfg.Stderr),
		kong.Exit(exit),
		kong.Vars{
			"binary":    dosbox.DefaultBinary,
			"console":   string(dosbox.DefaultConsoleStrategy),
			"maxInline": strconv.Itoa(dosbox.DefaultMaxInlineCommands),
		},
	)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error [%s]: %v\n", name, err)
}

func handleParseArgsError(err error, stderr io.Writer) int {
	printError(stderr, err)
	fmt.Fprintf(stderr, "Run %q for usage.\n", name+" --help")

	return -1
}

func handleRunError(err error, stderr io.Writer) int {
	exitCode := -1

	var runErr *dosbox.RunError
	if errors.As(err, &runErr) && runErr.Result.ExitCode > 0 {
		exitCode = runErr.Result.ExitCode

		// DOSBox ran and its output has been printed already. Print only what
		// else failed.
		others := withoutRunErrors(err)
		if len(others) == 0 {
			return exitCode
		}

		err = errors.Join(others...)
	}

	printError(stderr, err)

	return exitCode
}

// withoutRunErrors flattens joined errors and drops all [dosbox.RunError]s.
func withoutRunErrors(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var others []error
		for _, e := range joined.Unwrap() {
			others = append(others, withoutRunErrors(e)...)
		}

		return others
	}

	if errors.Is(err, &dosbox.RunError{}) {
		return nil
	}

	return []error{err}
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	err := LoadEnvFile(EnvFile)
	if err != nil {
		return handleRunError(err, cfg.Stderr)
	}

	var (
		flags    cli
		exited   bool
		exitCode int
	)

	// Kong exits after printing help. Record the code instead, so the caller
	// decides when to exit.
	parser, err := newParser(&flags, cfg, func(code int) {
		exited = true
		exitCode = code
	})
	if err != nil {
		return handleRunError(err, cfg.Stderr)
	}

	kctx, err := parser.Parse(args)
	if exited {
		return exitCode
	}

	if err != nil {
		return handleParseArgsError(err, cfg.Stderr)
	}

	logger := setupLogging(cfg.Stderr, flags.Globals.Debug)

	app, err := newApp(&flags.Globals, cfg, logger)
	if err != nil {
		return handleRunError(err, cfg.Stderr)
	}

	kctx.BindTo(ctx, (*context.Context)(nil))

	err = errors.Join(kctx.Run(app), app.writeMetrics())
	if err != nil {
		return handleRunError(err, cfg.Stderr)
	}

	return 0
}

func buildVersion() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok || buildInfo.Main.Version == "" {
		return "(devel)"
	}

	return buildInfo.Main.Version
}
