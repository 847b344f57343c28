// Package live turns backend query listeners into cancellable snapshot
// streams.
package live

import (
	"context"
	"errors"
	"fmt"
)

// ErrClosed is returned by Stream.Next once the stream has been cancelled or
// stopped.
var ErrClosed = errors.New("live: stream closed")

// Filter is a single equality constraint.
type Filter struct {
	Field string
	Value interface{}
}

// Query describes one filtered, optionally ordered, view of a collection.
type Query struct {
	Collection string
	Filter     *Filter
	OrderBy    string
	Descending bool
}

// Where returns a copy of q filtered on field == value.
func (q Query) Where(field string, value interface{}) Query {
	q.Filter = &Filter{Field: field, Value: value}
	return q
}

func (q Query) String() string {
	s := q.Collection
	if q.Filter != nil {
		s += fmt.Sprintf(" where %s == %v", q.Filter.Field, q.Filter.Value)
	}
	if q.OrderBy != "" {
		dir := "asc"
		if q.Descending {
			dir = "desc"
		}
		s += fmt.Sprintf(" order by %s %s", q.OrderBy, dir)
	}
	return s
}

// Document is one record of a snapshot in its raw backend shape.
type Document struct {
	ID   string
	Data map[string]interface{}
}

// Snapshot is the complete current result set of a query, not a delta.
type Snapshot struct {
	Documents []Document
}

// Stream delivers successive snapshots of one query.
//
// Next blocks until the next snapshot is available. It returns ErrClosed after
// the context the stream was opened with is cancelled. Stop releases the
// stream and must be called exactly once, from the goroutine calling Next.
type Stream interface {
	Next() (Snapshot, error)
	Stop()
}

// Source opens live streams against the document database.
type Source interface {
	Open(ctx context.Context, q Query) (Stream, error)
}
