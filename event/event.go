/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package event defines the notification emitted after a record is created and
// the emitters that deliver it.
package event

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// StructCreated is emitted after a successful create when the caller supplied an
// event id.
type StructCreated struct {
	EventID  string `json:"event_id"`
	StructID string `json:"struct_id"`
}

// Emitter delivers notifications synchronously. Delivery is fire-and-forget:
// implementations handle their own failures.
type Emitter interface {
	Emit(ctx context.Context, evt StructCreated)
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(ctx context.Context, evt StructCreated)

// Emit calls f.
func (f EmitterFunc) Emit(ctx context.Context, evt StructCreated) {
	f(ctx, evt)
}

// Discard drops every event.
var Discard Emitter = EmitterFunc(func(context.Context, StructCreated) {})

// Multi fans an event out to each emitter in order.
type Multi []Emitter

// Emit forwards evt to every emitter.
func (m Multi) Emit(ctx context.Context, evt StructCreated) {
	for _, e := range m {
		if e != nil {
			e.Emit(ctx, evt)
		}
	}
}

// Recorder keeps emitted events in memory.
type Recorder struct {
	mu     sync.RWMutex
	events []StructCreated
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit appends evt.
func (r *Recorder) Emit(_ context.Context, evt StructCreated) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
}

// Events returns a copy of the recorded events in emission order.
func (r *Recorder) Events() []StructCreated {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]StructCreated, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.events)
}

// LogEmitter writes each event as a structured log entry.
type LogEmitter struct {
	logger *zap.Logger
}

// NewLogEmitter creates a LogEmitter. A nil logger discards output.
func NewLogEmitter(logger *zap.Logger) *LogEmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogEmitter{logger: logger}
}

// Emit logs evt at info level.
func (l *LogEmitter) Emit(_ context.Context, evt StructCreated) {
	l.logger.Info("struct created",
		zap.String("event_id", evt.EventID),
		zap.String("struct_id", evt.StructID),
	)
}
