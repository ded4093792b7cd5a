// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dosbox

import "github.com/xsro/dosbox-interface/internal/conf"

// DefaultMaxInlineCommands is the maximum number of commands passed as "-c"
// flags. More commands are moved into the autoexec block of the config file
// to keep the command line short.
const DefaultMaxInlineCommands = 10

// Routing is the result of [Route].
type Routing struct {
	// Params are "-c" flags to add to the command line.
	Params []string

	// Config is the config to write and pass to DOSBox. It is nil if no
	// config was given and all commands fit on the command line.
	Config *conf.Config
}

// Route decides how the given commands are passed to DOSBox.
//
// Up to maxInline commands become inline "-c" flags and the existing config
// is passed through. If there are more, they are appended to the autoexec
// block of a copy of the existing config, or of a default config if none is
// given. The existing config is never modified. If maxInline is not
// positive, [DefaultMaxInlineCommands] is used.
func Route(commands []string, existing *conf.Config, maxInline int) Routing {
	if maxInline <= 0 {
		maxInline = DefaultMaxInlineCommands
	}

	routing := Routing{Config: existing}

	switch {
	case len(commands) > maxInline:
		var cfg *conf.Config
		if existing != nil {
			cfg = existing.Clone()
		} else {
			cfg = conf.Default()
		}

		cfg.AppendAutoexec(commands...)
		routing.Config = cfg
	case len(commands) > 0:
		routing.Params = make([]string, 0, len(commands))
		for _, command := range commands {
			routing.Params = append(routing.Params, InlineCommand(command))
		}
	}

	return routing
}

// InlineCommand returns the "-c" flag for the given command. The command is
// quoted as is. Quotes in the command are not escaped.
func InlineCommand(command string) string {
	return `-c "` + command + `"`
}

// ConfFlag returns the "-conf" flag for the given config file path.
func ConfFlag(path string) string {
	return `-conf "` + path + `"`
}
