// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dosbox

import "fmt"

const (
	// ConsoleDirect runs DOSBox as is. On windows, it opens a separate
	// console window.
	ConsoleDirect ConsoleStrategy = "direct"
	// ConsoleMinimized starts DOSBox with a minimized console window on
	// windows.
	ConsoleMinimized ConsoleStrategy = "minimized"
	// ConsoleRedirected starts DOSBox with "-noconsole" on windows, so the
	// console output is written into files that are read after exit.
	ConsoleRedirected ConsoleStrategy = "redirected"
)

// DefaultConsoleStrategy is used if no strategy is given. Other strategies
// leave an uncontrollable console window on windows.
const DefaultConsoleStrategy = ConsoleRedirected

// ConsoleStrategy defines how the DOSBox console is handled. It only has an
// effect on windows.
type ConsoleStrategy string

func (s ConsoleStrategy) isKnown() bool {
	switch s {
	case ConsoleDirect, ConsoleMinimized, ConsoleRedirected:
		return true
	default:
		return false
	}
}

// String implements [fmt.Stringer]. It returns an empty string for unknown
// strategies.
func (s ConsoleStrategy) String() string {
	if !s.isKnown() {
		return ""
	}

	return string(s)
}

// MarshalText implements [encoding.TextMarshaler].
func (s ConsoleStrategy) MarshalText() ([]byte, error) {
	if !s.isKnown() {
		return nil, fmt.Errorf("%w: %q", ErrConsoleStrategyInvalid, string(s))
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *ConsoleStrategy) UnmarshalText(text []byte) error {
	strategy := ConsoleStrategy(text)
	if !strategy.isKnown() {
		return fmt.Errorf("%w: %q", ErrConsoleStrategyInvalid, string(text))
	}

	*s = strategy

	return nil
}
