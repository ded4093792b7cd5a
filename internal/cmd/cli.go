// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/xsro/dosbox-interface/internal/conf"
	"github.com/xsro/dosbox-interface/internal/dosbox"
)

type globals struct {
	Dir         string                 `help:"Working directory of DOSBox. Defaults to the current directory." env:"DOSBOX_DIR" type:"existingdir" placeholder:"DIR"`
	Console     dosbox.ConsoleStrategy `help:"Console handling on windows: direct, minimized or redirected." env:"DOSBOX_CONSOLE" default:"${console}"`
	Binary      string                 `help:"DOSBox binary, or app name on darwin. Defaults to ${binary}." env:"DOSBOX_BINARY" placeholder:"BIN"`
	Conf        string                 `help:"Existing DOSBox config file passed as is. Ignored if it does not exist." env:"DOSBOX_CONF" placeholder:"FILE"`
	Base        string                 `help:"DOSBox config file used as base for the written config." env:"DOSBOX_BASE" type:"existingfile" placeholder:"FILE"`
	Overrides   string                 `help:"YAML file with config values to override." env:"DOSBOX_OVERRIDES" type:"existingfile" placeholder:"FILE"`
	MaxInline   int                    `help:"Maximum number of commands passed as flags. More are written into the config file." env:"DOSBOX_MAX_INLINE" default:"${maxInline}"`
	KeepConfig  bool                   `help:"Keep the written config file after the run." env:"DOSBOX_KEEP_CONFIG"`
	MetricsFile string                 `help:"Write run metrics in prometheus text format into the file." env:"DOSBOX_METRICS_FILE" placeholder:"FILE"`
	Debug       bool                   `help:"Enable debug logging." env:"DOSBOX_DEBUG"`
}

type cli struct {
	Globals globals `embed:""`

	Run     runCmd     `cmd:"" help:"Boot DOSBox and run DOS commands."`
	Exec    execCmd    `cmd:"" help:"Run DOSBox with the given parameters."`
	Version versionCmd `cmd:"" help:"Print the version of dosbox-run and DOSBox."`
	Config  configCmd  `cmd:"" help:"Print the DOSBox config that is written for runs."`
}

type runCmd struct {
	Commands []string `arg:"" optional:"" sep:"none" help:"DOS commands run after boot."`
	Params   []string `short:"p" sep:"none" help:"Additional DOSBox parameter. Added as is." placeholder:"PARAM"`
}

func (c *runCmd) Run(ctx context.Context, app *app) error {
	cfg, err := app.config()
	if err != nil {
		return err
	}

	_, err = app.runner.RunCommand(ctx, c.Commands, dosbox.RunOptions{
		ConfPath: app.globals.Conf,
		Config:   cfg,
		Params:   c.Params,
	})

	return err
}

type execCmd struct {
	Params []string `arg:"" optional:"" passthrough:"" sep:"none" help:"DOSBox parameters. Separate them with \"--\" if they start with \"-\"."`
}

func (c *execCmd) Run(ctx context.Context, app *app) error {
	_, err := app.runner.Run(ctx, strings.Join(c.Params, " "))
	return err
}

type versionCmd struct{}

func (*versionCmd) Run(ctx context.Context, app *app) error {
	fmt.Fprintf(app.stdout, "dosbox-run %s\n", buildVersion())

	_, err := app.runner.Version(ctx)

	return err
}

type configCmd struct {
	Commands []string `arg:"" optional:"" sep:"none" help:"DOS commands added to the autoexec block."`
	Output   string   `short:"o" help:"Write the config into the file instead of stdout." placeholder:"FILE"`
}

func (c *configCmd) Run(app *app) error {
	cfg, err := app.config()
	if err != nil {
		return err
	}

	if cfg == nil {
		cfg = conf.Default()
	}

	cfg.AppendAutoexec(c.Commands...)

	if c.Output != "" {
		return cfg.WriteFile(c.Output)
	}

	serialized, err := cfg.Serialize()
	if err != nil {
		return err
	}

	fmt.Fprint(app.stdout, serialized)

	return nil
}
