// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"

	"github.com/xsro/dosbox-interface/internal/dosbox"
)

// printObserver writes DOSBox output to the matching writer as it arrives.
type printObserver struct {
	stdout io.Writer
	stderr io.Writer
}

func (p printObserver) Observe(event dosbox.Event) {
	writer := p.stdout
	if event.Stream == dosbox.Stderr {
		writer = p.stderr
	}

	_, _ = io.WriteString(writer, event.Chunk)
}
