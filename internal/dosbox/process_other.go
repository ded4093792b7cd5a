// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package dosbox

import (
	"os"
	"os/exec"
)

func killProcessGroup(_ *exec.Cmd) {}

func exitSignal(_ *os.ProcessState) string {
	return ""
}
