/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package metrics exposes Prometheus counters for registry operations.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/suparena/structregistry/errors"
)

const namespace = "structregistry"

// Operation result labels.
const (
	ResultOK       = "ok"
	ResultNotFound = "not_found"
	ResultDecode   = "decode_error"
	ResultError    = "error"
)

// Metrics holds the registry counters.
type Metrics struct {
	operations *prometheus.CounterVec
	events     prometheus.Counter
}

// New creates the counters and registers them with reg when reg is non-nil.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Registry operations by operation, record kind and result.",
		}, []string{"operation", "kind", "result"}),
		events: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_emitted_total",
			Help:      "StructCreated notifications emitted.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.operations, m.events)
	}
	return m
}

// ObserveOperation counts one operation, classifying err into a result label.
func (m *Metrics) ObserveOperation(operation, kind string, err error) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, kind, Result(err)).Inc()
}

// ObserveEvent counts one emitted notification.
func (m *Metrics) ObserveEvent() {
	if m == nil {
		return
	}
	m.events.Inc()
}

// Operations returns the operation counter for inspection, or nil on a nil *Metrics.
func (m *Metrics) Operations() *prometheus.CounterVec {
	if m == nil {
		return nil
	}
	return m.operations
}

// Events returns the event counter for inspection, or nil on a nil *Metrics.
func (m *Metrics) Events() prometheus.Counter {
	if m == nil {
		return nil
	}
	return m.events
}

// Result maps err to a result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.IsNotFound(err):
		return ResultNotFound
	case errors.IsDecodeError(err):
		return ResultDecode
	default:
		return ResultError
	}
}
