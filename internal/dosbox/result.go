// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dosbox

// ExitCodeUnknown is the exit code if the process did not exit normally, e.g.
// because it could not be started or was killed.
const ExitCodeUnknown = -1

// Result is the collected output of a DOSBox run.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Exited reports whether the exit code of the process is known.
func (r Result) Exited() bool {
	return r.ExitCode != ExitCodeUnknown
}
