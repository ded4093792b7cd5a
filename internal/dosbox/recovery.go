// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dosbox

import (
	"os"
	"path/filepath"
)

// Console output files written by DOSBox started with "-noconsole".
const (
	StdoutFile = "stdout.txt"
	StderrFile = "stderr.txt"
)

// Recovered is the console output read from the files in a directory.
type Recovered struct {
	Stdout    string
	Stderr    string
	HasStdout bool
	HasStderr bool
}

// Recover reads the console output files DOSBox wrote into dir.
//
// Missing files are not an error, the stream is just not set in the
// returned [Recovered]. Files that are present but can not be read fail
// with a [RecoveryError].
func Recover(dir string) (Recovered, error) {
	var recovered Recovered

	entries, err := os.ReadDir(dir)
	if err != nil {
		return recovered, &RecoveryError{Path: dir, Err: err}
	}

	for _, entry := range entries {
		var (
			text    *string
			present *bool
		)

		switch entry.Name() {
		case StdoutFile:
			text, present = &recovered.Stdout, &recovered.HasStdout
		case StderrFile:
			text, present = &recovered.Stderr, &recovered.HasStderr
		default:
			continue
		}

		path := filepath.Join(dir, entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return recovered, &RecoveryError{Path: path, Err: err}
		}

		*text = string(data)
		*present = true
	}

	return recovered, nil
}
