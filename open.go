/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package structregistry

import (
	"context"
	"fmt"

	"github.com/suparena/structregistry/config"
	"github.com/suparena/structregistry/datastore/ddb"
	"github.com/suparena/structregistry/datastore/sqlite"
	"github.com/suparena/structregistry/model"
	"go.uber.org/zap"
)

// Table names used by the sqlite backend.
const (
	InnerTable = "inner_records"
	OuterTable = "outer_records"
)

// Open builds a Registry over the backend selected by cfg.
// With the sqlite backend every create that carries an event id writes the record
// and an events row in one transaction; the log is readable through Registry.Events.
// The configured Emitter is notified after that transaction commits.
func Open(ctx context.Context, cfg config.Config, opts ...Option) (*Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := applyOptions(opts)

	var (
		reg *Registry
		err error
	)
	switch cfg.Backend {
	case config.BackendMemory:
		reg = NewInMemory(opts...)
	case config.BackendSQLite:
		reg, err = openSQLite(ctx, cfg.SQLite, o, opts)
	case config.BackendDynamoDB:
		reg, err = openDynamoDB(ctx, cfg.DynamoDB, opts)
	}
	if err != nil {
		return nil, err
	}

	o.logger.Info("registry opened", zap.String("backend", cfg.Backend))
	return reg, nil
}

func openSQLite(ctx context.Context, cfg config.SQLiteConfig, o options, opts []Option) (*Registry, error) {
	db, err := sqlite.Open(ctx, cfg.Path)
	if err != nil {
		return nil, err
	}

	eventLog, err := sqlite.NewEventLog(ctx, db, o.logger)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	inners, err := sqlite.New(ctx, db, InnerTable, model.KindInner, model.Inner.Key)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	outers, err := sqlite.New(ctx, db, OuterTable, model.KindOuter, model.Outer.Key)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	reg := New(inners.WithEventLog(eventLog), outers.WithEventLog(eventLog), opts...)
	reg.events = eventLog
	reg.closers = append(reg.closers, db)
	return reg, nil
}

func openDynamoDB(ctx context.Context, cfg config.DynamoDBConfig, opts []Option) (*Registry, error) {
	client, err := ddb.NewDynamoDBClient(ctx, cfg.AccessKey, cfg.SecretKey, cfg.Region)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}

	return newDynamoDBRegistry(client, cfg.Table, opts...), nil
}

// newDynamoDBRegistry keeps both collections in table, told apart by key prefix.
func newDynamoDBRegistry(client ddb.Client, table string, opts ...Option) *Registry {
	return New(
		ddb.NewDynamodbDataStoreWithClient[model.Inner](client, model.KindInner, table),
		ddb.NewDynamodbDataStoreWithClient[model.Outer](client, model.KindOuter, table),
		opts...,
	)
}
