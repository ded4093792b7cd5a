// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dosbox

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// output accumulates the output streams of a single run and publishes new
// chunks to the observer.
type output struct {
	mu       sync.Mutex
	stdout   strings.Builder
	stderr   strings.Builder
	observer Observer
	seq      uint64
	live     bool
}

func newOutput(observer Observer, seq uint64, live bool) *output {
	if observer == nil {
		observer = nopObserver{}
	}

	return &output{
		observer: observer,
		seq:      seq,
		live:     live,
	}
}

func (o *output) buffer(stream Stream) *strings.Builder {
	if stream == Stderr {
		return &o.stderr
	}

	return &o.stdout
}

// append adds the chunk to the stream. Live chunks are only published if the
// platform delivers console output live. The observer is called without
// holding the lock, so a slow observer does not block the other stream.
func (o *output) append(stream Stream, chunk string, recovered bool) {
	if chunk == "" {
		return
	}

	o.mu.Lock()
	buf := o.buffer(stream)
	buf.WriteString(chunk)
	text := buf.String()
	o.mu.Unlock()

	if !o.live && !recovered {
		return
	}

	o.observer.Observe(Event{
		Stream:    stream,
		Chunk:     chunk,
		Text:      text,
		Seq:       o.seq,
		Recovered: recovered,
	})
}

// copyFrom reads src until EOF and appends everything read to the stream.
func (o *output) copyFrom(stream Stream, src io.Reader) error {
	_, err := io.Copy(streamWriter{o, stream}, src)
	if err != nil {
		return fmt.Errorf("read %s: %w", stream, err)
	}

	return nil
}

func (o *output) result(exitCode int) Result {
	o.mu.Lock()
	defer o.mu.Unlock()

	return Result{
		Stdout:   o.stdout.String(),
		Stderr:   o.stderr.String(),
		ExitCode: exitCode,
	}
}

type streamWriter struct {
	output *output
	stream Stream
}

func (w streamWriter) Write(data []byte) (int, error) {
	w.output.append(w.stream, string(data), false)
	return len(data), nil
}
