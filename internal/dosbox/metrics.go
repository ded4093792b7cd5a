// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dosbox

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "dosbox"

// Run outcome label values.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Metrics collects statistics about DOSBox runs. A nil *Metrics is valid and
// collects nothing.
type Metrics struct {
	runs      *prometheus.CounterVec
	duration  prometheus.Histogram
	recovered *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	metrics := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "runs_total",
			Help:      "Total DOSBox runs, labeled by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "run_duration_seconds",
			Help:      "Histogram of DOSBox run durations.",
			Buckets:   prometheus.DefBuckets,
		}),
		recovered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "recovered_bytes_total",
			Help:      "Console output bytes read from files, labeled by stream.",
		}, []string{"stream"}),
	}

	for _, collector := range []prometheus.Collector{
		metrics.runs,
		metrics.duration,
		metrics.recovered,
	} {
		err := reg.Register(collector)
		if err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}

	return metrics, nil
}

func (m *Metrics) observeRun(err error, duration time.Duration) {
	if m == nil {
		return
	}

	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}

	m.runs.WithLabelValues(outcome).Inc()
	m.duration.Observe(duration.Seconds())
}

func (m *Metrics) observeRecovered(stream Stream, n int) {
	if m == nil {
		return
	}

	m.recovered.WithLabelValues(string(stream)).Add(float64(n))
}
