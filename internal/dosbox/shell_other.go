// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !windows

package dosbox

import (
	"context"
	"os/exec"
)

const shell = "/bin/sh"

// shellCommand runs the command line with the POSIX shell.
func shellCommand(ctx context.Context, cmdline string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, shell, "-c", cmdline)
	killProcessGroup(cmd)

	return cmd
}
