// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.PollCreated()
		m.VoteRecorded()
		m.SessionOp("login", nil)
	})
	assert.Nil(t, New(nil))
}

func TestCounters(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)
	require.NotNil(t, m)

	m.PollCreated()
	m.VoteRecorded()
	m.VoteRecorded()
	m.SessionOp("login", nil)
	m.SessionOp("login", errors.New("boom"))
	m.SessionOp("login", errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.pollsCreated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.votes))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionOps.WithLabelValues("login", ResultOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.sessionOps.WithLabelValues("login", ResultError)))
}
