// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dosbox

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutput(t *testing.T) {
	tests := []struct {
		name           string
		live           bool
		recovered      bool
		expectedEvents int
	}{
		{name: "live", live: true, expectedEvents: 2},
		{name: "not live", live: false, expectedEvents: 0},
		{name: "recovered", live: false, recovered: true, expectedEvents: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var events []Event

			out := newOutput(ObserverFunc(func(event Event) {
				events = append(events, event)
			}), 7, tt.live)

			out.append(Stdout, "a", tt.recovered)
			out.append(Stdout, "", tt.recovered)
			out.append(Stdout, "b", tt.recovered)

			assert.Equal(t, Result{Stdout: "ab", ExitCode: 1}, out.result(1))
			require.Len(t, events, tt.expectedEvents)

			if tt.expectedEvents > 0 {
				assert.Equal(t, Event{
					Stream:    Stdout,
					Chunk:     "b",
					Text:      "ab",
					Seq:       7,
					Recovered: tt.recovered,
				}, events[1])
			}
		})
	}
}

func TestOutput_BlockingObserver(t *testing.T) {
	stdoutBlocked := make(chan struct{})
	stderrSeen := make(chan struct{})

	out := newOutput(ObserverFunc(func(event Event) {
		if event.Stream == Stderr {
			close(stderrSeen)
			return
		}

		close(stdoutBlocked)

		select {
		case <-stderrSeen:
		case <-time.After(5 * time.Second):
			t.Error("stderr event held up by blocking stdout observer")
		}
	}), 1, true)

	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()
		out.append(Stdout, "out", false)
	}()

	go func() {
		defer wg.Done()
		<-stdoutBlocked
		out.append(Stderr, "err", false)
	}()

	wg.Wait()

	assert.Equal(t, Result{Stdout: "out", Stderr: "err"}, out.result(0))
}
