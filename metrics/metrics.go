// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result label values for session operations
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Metrics holds the application counters. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	pollsCreated prometheus.Counter
	votes        prometheus.Counter
	sessionOps   *prometheus.CounterVec

	registerOnce sync.Once
}

// New creates counters registered against the given registry.
// A nil registry returns a nil *Metrics.
func New(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		return nil
	}
	m := &Metrics{}
	m.register(registry)
	return m
}

func (m *Metrics) register(registry prometheus.Registerer) {
	m.registerOnce.Do(func() {
		factory := promauto.With(registry)

		m.pollsCreated = factory.NewCounter(prometheus.CounterOpts{
			Name: "civicvote_polls_created_total",
			Help: "Total number of polls created",
		})

		m.votes = factory.NewCounter(prometheus.CounterOpts{
			Name: "civicvote_votes_recorded_total",
			Help: "Total number of poll votes recorded",
		})

		m.sessionOps = factory.NewCounterVec(prometheus.CounterOpts{
			Name: "civicvote_session_operations_total",
			Help: "Total number of account session operations by outcome",
		}, []string{"op", "result"})
	})
}

// PollCreated increments the poll creation counter
func (m *Metrics) PollCreated() {
	if m == nil {
		return
	}
	m.pollsCreated.Inc()
}

// VoteRecorded increments the vote counter
func (m *Metrics) VoteRecorded() {
	if m == nil {
		return
	}
	m.votes.Inc()
}

// SessionOp records the outcome of an account session operation
func (m *Metrics) SessionOp(op string, err error) {
	if m == nil {
		return
	}
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	m.sessionOps.WithLabelValues(op, result).Inc()
}
