// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dosbox

import "strings"

const (
	// DefaultBinary is the DOSBox executable looked up in PATH.
	DefaultBinary = "dosbox"
	// DefaultMacApp is the name of the DOSBox app bundle on darwin.
	DefaultMacApp = "DOSBox"

	// ArgsPlaceholder may be used in a template to put the arguments
	// somewhere else than at the end.
	ArgsPlaceholder = "${args}"

	noConsoleFlag = "-noconsole"
)

// Invocation is the resolved way to start DOSBox on a platform.
type Invocation struct {
	// Template is the command string the arguments are added to. If it
	// contains [ArgsPlaceholder], the arguments replace it.
	Template string

	Platform Platform
	Console  ConsoleStrategy

	// Redirect is set if DOSBox writes its console output into files
	// instead of a console.
	Redirect bool
}

// Resolve returns the [Invocation] for the given platform and console
// strategy. An empty binary selects the default for the platform.
func Resolve(platform Platform, strategy ConsoleStrategy, binary string) Invocation {
	inv := Invocation{
		Platform: platform,
		Console:  strategy,
		Redirect: platform.IsWindows() && strategy == ConsoleRedirected,
	}

	switch {
	case platform.IsMac():
		if binary == "" {
			binary = DefaultMacApp
		}

		inv.Template = "open -a " + binary + " --args"
	case platform.IsWindows() && strategy == ConsoleMinimized:
		if binary == "" {
			binary = DefaultBinary
		}

		inv.Template = `start/min/wait "" ` + binary
	default:
		if binary == "" {
			binary = DefaultBinary
		}

		inv.Template = binary
	}

	return inv
}

// CommandLine returns the complete command string for the given parameter
// string.
func (i Invocation) CommandLine(params string) string {
	args := " "
	if i.Redirect {
		args += noConsoleFlag + " "
	}

	args += params

	var cmdline string
	if strings.Contains(i.Template, ArgsPlaceholder) {
		cmdline = strings.Replace(i.Template, ArgsPlaceholder, args, 1)
	} else {
		cmdline = i.Template + args
	}

	return strings.TrimRight(cmdline, " ")
}
