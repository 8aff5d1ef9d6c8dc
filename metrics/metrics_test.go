/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	regerrors "github.com/suparena/structregistry/errors"
)

func TestObserveOperation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveOperation("get", "Inner", nil)
	m.ObserveOperation("get", "Inner", regerrors.NewNotFoundError("Inner", "9"))
	m.ObserveOperation("get", "Inner", regerrors.NewNotFoundError("Inner", "8"))
	m.ObserveOperation("create", "Outer", regerrors.NewDecodeError("Outer", errors.New("bad")))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations().WithLabelValues("get", "Inner", ResultOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Operations().WithLabelValues("get", "Inner", ResultNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Operations().WithLabelValues("create", "Outer", ResultDecode)))

	m.ObserveEvent()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Events()))

	n, err := testutil.GatherAndCount(reg)
	assert.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveOperation("get", "Inner", nil)
		m.ObserveEvent()
	})
	assert.Nil(t, m.Operations())
	assert.Nil(t, m.Events())
}

func TestResult(t *testing.T) {
	assert.Equal(t, ResultError, Result(errors.New("disk full")))
}
