// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dosbox

import (
	"errors"
	"fmt"
)

// ErrConsoleStrategyInvalid is returned if a console strategy is unknown.
var ErrConsoleStrategyInvalid = errors.New("unknown console strategy")

// RunErrorNote is the note of every [RunError].
const RunErrorNote = "failed to run dosbox"

// RunError is returned if DOSBox could not be started or exited with an
// error. It carries the output collected until the failure.
type RunError struct {
	Err    error
	Note   string
	Result Result
}

// Error implements the [error] interface.
func (e *RunError) Error() string {
	return e.Note + ": " + e.Err.Error()
}

// Is implements the [errors.Is] interface.
func (*RunError) Is(other error) bool {
	_, ok := other.(*RunError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *RunError) Unwrap() error {
	return e.Err
}

// RecoveryError is returned if the console output files DOSBox wrote could
// not be read.
type RecoveryError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *RecoveryError) Error() string {
	return fmt.Sprintf("recover console output %s: %v", e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*RecoveryError) Is(other error) bool {
	_, ok := other.(*RecoveryError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *RecoveryError) Unwrap() error {
	return e.Err
}
