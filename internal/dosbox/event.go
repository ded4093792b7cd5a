// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dosbox

// Output streams of DOSBox.
const (
	Stdout Stream = "stdout"
	Stderr Stream = "stderr"
)

// Stream names an output stream.
type Stream string

// Event is published for every chunk of output.
type Event struct {
	Stream Stream
	// Chunk is the newly received output.
	Chunk string
	// Text is all output of the stream received so far, including Chunk.
	Text string
	// Seq is the number of the run on the [Runner], starting at 1.
	Seq uint64
	// Recovered is set if the chunk was read from a console output file
	// after DOSBox exited.
	Recovered bool
}

// Observer receives output events while DOSBox is running.
//
// Events of a stream are delivered in order, one at a time. Events of
// different streams may be delivered concurrently, so implementations must be
// safe for concurrent use. A blocking Observe holds up reading its stream
// only.
type Observer interface {
	Observe(event Event)
}

// ObserverFunc adapts a function to the [Observer] interface.
type ObserverFunc func(Event)

// Observe implements [Observer].
func (f ObserverFunc) Observe(event Event) {
	f(event)
}

// ChannelObserver sends all events to the channel. The channel must be
// drained concurrently while DOSBox is running. Events of different streams
// may arrive interleaved.
type ChannelObserver chan<- Event

// Observe implements [Observer].
func (c ChannelObserver) Observe(event Event) {
	c <- event
}

type nopObserver struct{}

func (nopObserver) Observe(Event) {}
