// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dosbox

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/xsro/dosbox-interface/internal/conf"
	"golang.org/x/sync/errgroup"
)

// ConfigFileName is the name of the config file written into the working
// directory if a config is passed to DOSBox.
const ConfigFileName = "dosbox-interface.conf"

// Runner runs DOSBox in a working directory.
//
// A Runner may be used for multiple runs. Runs in the same working directory
// must not overlap if they write a config file, as they share the file.
type Runner struct {
	dir        string
	invocation Invocation
	maxInline  int
	keepConfig bool
	observer   Observer
	metrics    *Metrics
	logger     *slog.Logger

	// count is the number of runs started. Only used for [Event.Seq].
	count atomic.Uint64
}

type options struct {
	dir        string
	platform   Platform
	console    ConsoleStrategy
	binary     string
	maxInline  int
	keepConfig bool
	observer   Observer
	metrics    *Metrics
	logger     *slog.Logger
}

// Option configures a [Runner].
type Option func(*options)

// WithDir sets the working directory. It defaults to the working directory
// of the process.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// WithConsole sets the console strategy. It defaults to
// [DefaultConsoleStrategy].
func WithConsole(strategy ConsoleStrategy) Option {
	return func(o *options) {
		o.console = strategy
	}
}

// WithPlatform overrides the platform the invocation is resolved for. It
// defaults to [HostPlatform]. The host shell is used regardless.
func WithPlatform(platform Platform) Option {
	return func(o *options) {
		o.platform = platform
	}
}

// WithBinary sets the DOSBox binary, or the app name on darwin. It may
// contain [ArgsPlaceholder].
func WithBinary(binary string) Option {
	return func(o *options) {
		o.binary = binary
	}
}

// WithMaxInlineCommands sets the maximum number of commands passed as "-c"
// flags. It defaults to [DefaultMaxInlineCommands].
func WithMaxInlineCommands(limit int) Option {
	return func(o *options) {
		o.maxInline = limit
	}
}

// WithKeepConfig keeps the written config file after the run.
func WithKeepConfig(keep bool) Option {
	return func(o *options) {
		o.keepConfig = keep
	}
}

// WithObserver sets the [Observer] for output events.
func WithObserver(observer Observer) Option {
	return func(o *options) {
		o.observer = observer
	}
}

// WithMetrics sets the [Metrics] runs are recorded in.
func WithMetrics(metrics *Metrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// WithLogger sets the logger. It defaults to [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewRunner creates a new [Runner] with the given options applied.
func NewRunner(opts ...Option) (*Runner, error) {
	cfg := options{
		platform:  HostPlatform,
		console:   DefaultConsoleStrategy,
		maxInline: DefaultMaxInlineCommands,
		observer:  nopObserver{},
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.console.isKnown() {
		return nil, fmt.Errorf("%w: %q", ErrConsoleStrategyInvalid, string(cfg.console))
	}

	if cfg.dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}

		cfg.dir = wd
	}

	dir, err := filepath.Abs(cfg.dir)
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}

	if cfg.observer == nil {
		cfg.observer = nopObserver{}
	}

	return &Runner{
		dir:        dir,
		invocation: Resolve(cfg.platform, cfg.console, cfg.binary),
		maxInline:  cfg.maxInline,
		keepConfig: cfg.keepConfig,
		observer:   cfg.observer,
		metrics:    cfg.metrics,
		logger:     cfg.logger,
	}, nil
}

// Dir returns the working directory.
func (r *Runner) Dir() string {
	return r.dir
}

// Invocation returns the resolved [Invocation].
func (r *Runner) Invocation() Invocation {
	return r.invocation
}

// ConfigPath returns the path of the config file written by
// [Runner.RunCommand].
func (r *Runner) ConfigPath() string {
	return filepath.Join(r.dir, ConfigFileName)
}

// RunOptions are optional inputs for [Runner.RunCommand].
type RunOptions struct {
	// ConfPath is an existing config file passed to DOSBox. It is ignored if
	// the file does not exist.
	ConfPath string

	// Config is written to the working directory and passed to DOSBox.
	// Commands may be added to its autoexec block. The given value is not
	// modified.
	Config *conf.Config

	// Params are additional DOSBox parameters, added as is.
	Params []string
}

// RunCommand runs DOSBox with the given boot commands.
//
// Commands are passed as "-c" flags, or in the autoexec block of the config
// file if there are too many. See [Route].
func (r *Runner) RunCommand(
	ctx context.Context,
	commands []string,
	opts RunOptions,
) (Result, error) {
	params := []string{}

	if opts.ConfPath != "" {
		if fileExists(opts.ConfPath) {
			params = append(params, ConfFlag(opts.ConfPath))
		} else {
			r.logger.Warn("Ignoring missing config file",
				slog.String("path", opts.ConfPath))
		}
	}

	params = append(params, opts.Params...)

	routing := Route(commands, opts.Config, r.maxInline)
	params = append(params, routing.Params...)

	if routing.Config != nil {
		path := r.ConfigPath()

		err := routing.Config.WriteFile(path)
		if err != nil {
			return Result{ExitCode: ExitCodeUnknown}, fmt.Errorf("config: %w", err)
		}

		r.logger.Debug("Wrote config file",
			slog.String("path", path),
			slog.Int("autoexec", len(routing.Config.Autoexec)))

		if r.keepConfig {
			defer r.logger.Info("Preserving config file", slog.String("path", path))
		} else {
			defer r.removeConfig(path)
		}

		params = append(params, ConfFlag(path))
	}

	return r.Run(ctx, strings.Join(params, " "))
}

// Version runs DOSBox with "-version".
func (r *Runner) Version(ctx context.Context) (Result, error) {
	return r.Run(ctx, "-version")
}

// Run runs DOSBox with the given parameter string and waits for it to exit.
//
// A [*RunError] is returned if DOSBox could not be started or did not exit
// successfully. If console output files could not be read, a
// [*RecoveryError] is returned. In any case, the returned [Result] contains
// all output collected.
func (r *Runner) Run(ctx context.Context, params string) (Result, error) {
	seq := r.count.Add(1)
	cmdline := r.invocation.CommandLine(params)

	logger := r.logger.With(
		slog.String("run", uuid.NewString()),
		slog.Uint64("seq", seq),
	)

	logger.Debug("DOSBox command",
		slog.String("command", cmdline),
		slog.String("dir", r.dir))

	start := time.Now()
	result, err := r.execute(ctx, cmdline, seq, logger)

	r.metrics.observeRun(err, time.Since(start))

	logger.Debug("DOSBox done",
		slog.Int("exit_code", result.ExitCode),
		slog.Int("stdout", len(result.Stdout)),
		slog.Int("stderr", len(result.Stderr)))

	return result, err
}

func (r *Runner) execute(
	ctx context.Context,
	cmdline string,
	seq uint64,
	logger *slog.Logger,
) (Result, error) {
	// Windows delivers DOSBox console output only via files, so there is
	// nothing to stream live.
	out := newOutput(r.observer, seq, !r.invocation.Platform.IsWindows())

	cmd := shellCommand(ctx, cmdline)
	cmd.Dir = r.dir

	runErr := r.wait(cmd, out)

	exitCode := ExitCodeUnknown
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()

		if sig := exitSignal(cmd.ProcessState); sig != "" {
			logger.Warn("DOSBox terminated by signal", slog.String("signal", sig))
		}
	}

	var recoveryErr error
	if r.invocation.Redirect {
		recoveryErr = r.recoverOutput(out)
	}

	result := out.result(exitCode)

	if runErr != nil {
		runErr = &RunError{
			Err:    runErr,
			Note:   RunErrorNote,
			Result: result,
		}
	}

	if recoveryErr != nil {
		return result, errors.Join(runErr, recoveryErr)
	}

	return result, runErr
}

// wait starts the command and blocks until it exited and all of its output
// has been read. [exec.Cmd.Wait] is only called once both pipes are drained,
// so the exit state is final when it returns.
func (*Runner) wait(cmd *exec.Cmd, out *output) error {
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}

	err = cmd.Start()
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}

	readers := errgroup.Group{}
	readers.Go(func() error { return out.copyFrom(Stdout, stdout) })
	readers.Go(func() error { return out.copyFrom(Stderr, stderr) })
	readErr := readers.Wait()

	err = cmd.Wait()
	if err != nil {
		return errors.Join(fmt.Errorf("wait: %w", err), readErr)
	}

	return readErr
}

func (r *Runner) recoverOutput(out *output) error {
	recovered, err := Recover(r.dir)
	if err != nil {
		return err
	}

	if recovered.HasStdout {
		out.append(Stdout, recovered.Stdout, true)
		r.metrics.observeRecovered(Stdout, len(recovered.Stdout))
	}

	if recovered.HasStderr {
		out.append(Stderr, recovered.Stderr, true)
		r.metrics.observeRecovered(Stderr, len(recovered.Stderr))
	}

	return nil
}

func (r *Runner) removeConfig(path string) {
	r.logger.Debug("Removing config file", slog.String("path", path))

	err := os.Remove(path)
	if err != nil {
		r.logger.Error("Failed to remove config file",
			slog.String("path", path),
			slog.Any("error", err))
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
