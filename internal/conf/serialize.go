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

// AutoexecSection is the header name of the autoexec block.
const AutoexecSection = "AUTOEXEC"

const fileMode = 0o644

// DOSBox reads values literally. There is no quoting, no inline comments and
// no line continuation.
var iniOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	PreserveSurroundedQuote: true,
}

// Serialize renders the config in the INI dialect DOSBox reads.
//
// Sections and keys are written in declaration order. Every value is written
// literally, booleans as bare "true" or "false". If there are autoexec
// commands, they are appended as last section with one command per line,
// each terminated by the line terminator of the host.
//
// Values that can not be written literally, like values with line breaks or
// surrounding white space, fail with [ErrInvalidValue].
func (c *Config) Serialize() (string, error) {
	file := ini.Empty(iniOptions)

	err := file.ReflectFrom(c)
	if err != nil {
		return "", fmt.Errorf("reflect sections: %w", err)
	}

	err = validateValues(file)
	if err != nil {
		return "", err
	}

	err = validateAutoexec(c.Autoexec)
	if err != nil {
		return "", err
	}

	var out strings.Builder

	_, err = file.WriteTo(&out)
	if err != nil {
		return "", fmt.Errorf("write: %w", err)
	}

	if len(c.Autoexec) > 0 {
		out.WriteString(ini.LineBreak + "[" + AutoexecSection + "]" + ini.LineBreak)

		for _, command := range c.Autoexec {
			out.WriteString(command + ini.LineBreak)
		}
	}

	return out.String(), nil
}

// String implements [fmt.Stringer]. It returns an empty string if the config
// can not be serialized.
func (c *Config) String() string {
	s, _ := c.Serialize()
	return s
}

// WriteFile writes the serialized config to the given path. An existing file
// is replaced.
func (c *Config) WriteFile(path string) error {
	data, err := c.Serialize()
	if err != nil {
		return err
	}

	err = os.WriteFile(path, []byte(data), fileMode)
	if err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

func validateValues(file *ini.File) error {
	for _, section := range file.Sections() {
		for _, key := range section.Keys() {
			value := key.Value()
			if literalValue(value) {
				continue
			}

			return fmt.Errorf("%w: [%s] %s = %q",
				ErrInvalidValue, section.Name(), key.Name(), value)
		}
	}

	return nil
}

// literalValue reports whether the INI writer leaves the value as is and
// reading it back yields the same value.
func literalValue(value string) bool {
	switch {
	case strings.ContainsAny(value, "\r\n`"):
		return false
	case strings.TrimSpace(value) != value:
		return false
	case strings.HasPrefix(value, `"""`):
		return false
	default:
		return true
	}
}

func validateAutoexec(commands []string) error {
	for idx, command := range commands {
		_, isHeader := sectionHeader(command)
		if isHeader || strings.ContainsAny(command, "\r\n") {
			return fmt.Errorf("%w: autoexec command %d: %q",
				ErrInvalidValue, idx+1, command)
		}
	}

	return nil
}
