// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build windows

package dosbox

import (
	"context"
	"os"
	"os/exec"
	"syscall"
)

// shellCommand runs the command line with cmd.exe. The command line is passed
// verbatim, as cmd.exe does not follow the usual argument quoting rules.
func shellCommand(ctx context.Context, cmdline string) *exec.Cmd {
	shell := os.Getenv("ComSpec")
	if shell == "" {
		shell = "cmd.exe"
	}

	cmd := exec.CommandContext(ctx, shell)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: shell + ` /d /s /c "` + cmdline + `"`,
	}

	return cmd
}
