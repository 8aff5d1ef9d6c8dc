/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package structregistry

import (
	"github.com/suparena/structregistry/event"
	"github.com/suparena/structregistry/metrics"
	"go.uber.org/zap"
)

type options struct {
	logger  *zap.Logger
	emitter event.Emitter
	metrics *metrics.Metrics
}

// Option is a functional option for configuring a Registry
type Option func(*options)

func defaultOptions() options {
	return options{
		logger:  zap.NewNop(),
		emitter: event.Discard,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the structured logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEmitter sets the emitter that receives StructCreated notifications
func WithEmitter(emitter event.Emitter) Option {
	return func(o *options) {
		if emitter != nil {
			o.emitter = emitter
		}
	}
}

// WithMetrics enables operation counters
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}
