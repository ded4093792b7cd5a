// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package conf

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

type parseOptions struct {
	skipAutoexecComments bool
}

// ParseOption customizes [Parse] and [LoadFile].
type ParseOption func(*parseOptions)

// SkipAutoexecComments drops empty lines and lines starting with "#" from
// the autoexec block and trims the remaining lines, like DOSBox does when
// it runs them. Use it for config files written by hand.
func SkipAutoexecComments() ParseOption {
	return func(o *parseOptions) {
		o.skipAutoexecComments = true
	}
}

// Parse reads a DOSBox config file content on top of the defaults.
//
// Keys unknown to the model are ignored, so stock DOSBox config files with
// comments and additional keys can be used as base. Values are read
// literally. The autoexec block is read line by line and kept as is, unless
// [SkipAutoexecComments] is given.
func Parse(data []byte, opts ...ParseOption) (*Config, error) {
	var options parseOptions
	for _, opt := range opts {
		opt(&options)
	}

	settings, autoexec := splitAutoexec(string(data))

	file, err := ini.LoadSources(iniOptions, []byte(settings))
	if err != nil {
		return nil, fmt.Errorf("parse ini: %w", err)
	}

	cfg := Default()

	err = file.MapTo(cfg)
	if err != nil {
		return nil, fmt.Errorf("map sections: %w", err)
	}

	if options.skipAutoexecComments {
		autoexec = commandLines(autoexec)
	}

	cfg.Autoexec = append(cfg.Autoexec, autoexec...)

	return cfg, nil
}

// LoadFile parses the config file at the given path.
func LoadFile(path string, opts ...ParseOption) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return Parse(data, opts...)
}

// splitAutoexec separates the lines of all autoexec blocks from the rest of
// the document. The INI parser trims lines and treats some of them as
// comments, so autoexec lines must never reach it.
func splitAutoexec(data string) (string, []string) {
	var (
		settings   strings.Builder
		autoexec   []string
		inAutoexec bool
	)

	data = strings.TrimSuffix(data, "\n")
	if data == "" {
		return "", nil
	}

	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSuffix(line, "\r")

		if name, ok := sectionHeader(line); ok {
			inAutoexec = strings.EqualFold(name, AutoexecSection)
			if inAutoexec {
				continue
			}
		}

		if inAutoexec {
			autoexec = append(autoexec, line)
			continue
		}

		settings.WriteString(line + "\n")
	}

	return settings.String(), autoexec
}

func sectionHeader(line string) (string, bool) {
	line = strings.TrimSpace(line)
	if len(line) < 2 || line[0] != '[' || line[len(line)-1] != ']' {
		return "", false
	}

	return strings.TrimSpace(line[1 : len(line)-1]), true
}

func commandLines(lines []string) []string {
	var commands []string

	for _, line := range lines {
		line = strings.TrimSpace(line)

		if line != "" && !strings.HasPrefix(line, "#") {
			commands = append(commands, line)
		}
	}

	return commands
}
