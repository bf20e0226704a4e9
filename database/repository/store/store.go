package store

import (
	"context"
	"time"
)

// Range bounds a field between Gte and Lt. A zero bound is ignored.
type Range struct {
	Gte any
	Lt  any
}

// Query describes a record lookup: equality and range filters over one table,
// optional ordering and limit.
type Query struct {
	Table string
	Eq    map[string]any
	Range map[string]Range
	Sort  string
	Desc  bool
	Limit int64
}

// RecordStore is the persistence collaborator the scheduling core talks to.
// Every operation is a network round-trip and may fail with a message the
// caller surfaces verbatim; there are no retries.
type RecordStore interface {
	Find(ctx context.Context, q Query, out any) error
	FindByID(ctx context.Context, table, id string, out any) error
	InsertOne(ctx context.Context, table string, doc any) error
	InsertMany(ctx context.Context, table string, docs []any) error
	UpdateByID(ctx context.Context, table, id string, fields map[string]any) error
	DeleteByID(ctx context.Context, table, id string) error
}

const opTimeout = 5 * time.Second
