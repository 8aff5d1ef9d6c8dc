/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package structregistry

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"

	"github.com/suparena/structregistry/codec"
	"github.com/suparena/structregistry/datastore"
	"github.com/suparena/structregistry/datastore/memory"
	"github.com/suparena/structregistry/errors"
	"github.com/suparena/structregistry/event"
	"github.com/suparena/structregistry/metrics"
	"github.com/suparena/structregistry/model"
	"github.com/suparena/structregistry/shape"
	"go.uber.org/zap"
)

const (
	opCreate = "create"
	opGet    = "get"
)

// EventSource lists previously emitted notifications.
type EventSource interface {
	Events(ctx context.Context) ([]event.StructCreated, error)
}

// Registry stores Inner and Outer records in two independent collections and
// notifies an Emitter after each successful create.
//
// A Registry assumes one call in flight at a time; concurrent use is only as safe
// as the underlying datastores.
type Registry struct {
	inners  *Collection[model.Inner]
	outers  *Collection[model.Outer]
	emitter event.Emitter
	logger  *zap.Logger
	metrics *metrics.Metrics
	events  EventSource
	closers []io.Closer
}

// New creates a Registry over the given collections.
func New(inners datastore.DataStore[model.Inner], outers datastore.DataStore[model.Outer], opts ...Option) *Registry {
	o := applyOptions(opts)
	return &Registry{
		inners:  NewCollection(model.KindInner, inners, model.Inner.Key, model.Inner.Clone),
		outers:  NewCollection(model.KindOuter, outers, model.Outer.Key, model.Outer.Clone),
		emitter: o.emitter,
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// NewInMemory creates a Registry whose collections live in process memory.
func NewInMemory(opts ...Option) *Registry {
	return New(
		memory.New(model.KindInner, model.Inner.Key),
		memory.New(model.KindOuter, model.Outer.Key).WithCloneFunc(model.Outer.Clone),
		opts...,
	)
}

// CreateInner stores rec under rec.ID, overwriting any previous Inner with that id.
// When eventID is non-nil a StructCreated notification follows the write.
func (r *Registry) CreateInner(ctx context.Context, rec model.Inner, eventID *string) error {
	return create(ctx, r, r.inners, rec, eventID)
}

// CreateOuter stores rec under rec.ID, overwriting any previous Outer with that id.
// The embedded Inner values are stored as part of rec and are not checked against
// the Inner collection.
func (r *Registry) CreateOuter(ctx context.Context, rec model.Outer, eventID *string) error {
	return create(ctx, r, r.outers, rec, eventID)
}

// CreateInnerText decodes text and stores the result like CreateInner.
// A decode failure returns an *errors.DecodeError and leaves the collection untouched.
func (r *Registry) CreateInnerText(ctx context.Context, text string, eventID *string) error {
	rec, err := codec.DecodeInner(text)
	if err != nil {
		r.rejectText(model.KindInner, err)
		return err
	}
	return r.CreateInner(ctx, rec, eventID)
}

// CreateOuterText decodes text and stores the result like CreateOuter.
func (r *Registry) CreateOuterText(ctx context.Context, text string, eventID *string) error {
	rec, err := codec.DecodeOuter(text)
	if err != nil {
		r.rejectText(model.KindOuter, err)
		return err
	}
	return r.CreateOuter(ctx, rec, eventID)
}

// GetInner returns a copy of the Inner stored under id.
func (r *Registry) GetInner(ctx context.Context, id string) (model.Inner, error) {
	return get(ctx, r, r.inners, id)
}

// GetOuter returns a copy of the Outer stored under id.
func (r *Registry) GetOuter(ctx context.Context, id string) (model.Outer, error) {
	return get(ctx, r, r.outers, id)
}

// Events lists persisted notifications when the backend keeps an event log.
func (r *Registry) Events(ctx context.Context) ([]event.StructCreated, error) {
	if r.events == nil {
		return nil, errors.ErrNoEventLog
	}
	return r.events.Events(ctx)
}

// Close releases backend resources.
func (r *Registry) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	r.closers = nil
	return stderrors.Join(errs...)
}

// DetermineShape describes s. It never touches a registry.
func DetermineShape(s shape.Shape) string {
	return shape.Describe(s)
}

func create[T any](ctx context.Context, r *Registry, c *Collection[T], rec T, eventID *string) error {
	var (
		id  string
		err error
	)
	if eventID == nil {
		id, err = c.Put(ctx, rec)
	} else {
		var evt event.StructCreated
		evt, err = c.PutWithEvent(ctx, rec, *eventID)
		id = evt.StructID
	}
	r.metrics.ObserveOperation(opCreate, c.Kind(), err)
	if err != nil {
		r.logger.Warn("create failed", zap.String("kind", c.Kind()), zap.Error(err))
		return fmt.Errorf("create %s: %w", c.Kind(), err)
	}
	r.logger.Debug("record stored", zap.String("kind", c.Kind()), zap.String("id", id))

	if eventID != nil {
		r.emitter.Emit(ctx, event.StructCreated{EventID: *eventID, StructID: id})
		r.metrics.ObserveEvent()
	}
	return nil
}

func get[T any](ctx context.Context, r *Registry, c *Collection[T], id string) (T, error) {
	rec, err := c.Get(ctx, id)
	r.metrics.ObserveOperation(opGet, c.Kind(), err)
	switch {
	case err == nil:
		return rec, nil
	case errors.IsNotFound(err):
		r.logger.Debug("record not found", zap.String("kind", c.Kind()), zap.String("id", id))
		return rec, err
	default:
		r.logger.Warn("get failed", zap.String("kind", c.Kind()), zap.String("id", id), zap.Error(err))
		return rec, fmt.Errorf("get %s %q: %w", c.Kind(), id, err)
	}
}

func (r *Registry) rejectText(kind string, err error) {
	r.metrics.ObserveOperation(opCreate, kind, err)
	r.logger.Debug("rejected record text", zap.String("kind", kind), zap.Error(err))
}
