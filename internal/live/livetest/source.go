// Package livetest provides an in-memory live.Source for tests.
package livetest

import (
	"context"
	"sync"

	"smartagri/internal/live"
)

// Source records every Open and Stop so tests can assert teardown order.
type Source struct {
	mu      sync.Mutex
	streams []*Stream
	events  []string

	// OpenErr, when set, is returned by Open for the named collection.
	OpenErr map[string]error
}

func NewSource() *Source {
	return &Source{OpenErr: map[string]error{}}
}

func (s *Source) Open(ctx context.Context, q live.Query) (live.Stream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.OpenErr[q.Collection]; err != nil {
		return nil, err
	}

	st := &Stream{
		query:   q,
		ctx:     ctx,
		ch:      make(chan live.Snapshot),
		fail:    make(chan error),
		barrier: make(chan struct{}),
		src:     s,
	}
	s.streams = append(s.streams, st)
	s.events = append(s.events, "open "+q.String())
	return st, nil
}

func (s *Source) record(event string) {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()
}

// Events returns "open <query>" and "stop <query>" entries in order.
func (s *Source) Events() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.events...)
}

// Latest returns the most recently opened stream for collection, or nil.
func (s *Source) Latest(collection string) *Stream {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.streams) - 1; i >= 0; i-- {
		if s.streams[i].query.Collection == collection {
			return s.streams[i]
		}
	}
	return nil
}

// Streams returns every stream opened so far.
func (s *Source) Streams() []*Stream {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*Stream(nil), s.streams...)
}

type Stream struct {
	query   live.Query
	ctx     context.Context
	ch      chan live.Snapshot
	fail    chan error
	barrier chan struct{}
	src     *Source

	mu      sync.Mutex
	stopped bool
}

func (st *Stream) Query() live.Query {
	return st.query
}

func (st *Stream) Next() (live.Snapshot, error) {
	for {
		select {
		case <-st.ctx.Done():
			return live.Snapshot{}, live.ErrClosed
		case snap := <-st.ch:
			return snap, nil
		case err := <-st.fail:
			return live.Snapshot{}, err
		case <-st.barrier:
		}
	}
}

func (st *Stream) Stop() {
	st.mu.Lock()
	st.stopped = true
	st.mu.Unlock()
	st.src.record("stop " + st.query.String())
}

func (st *Stream) Stopped() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.stopped
}

// Push emits a snapshot and returns once the subscriber has finished
// handling it. It returns false if the stream was cancelled first.
func (st *Stream) Push(docs ...live.Document) bool {
	select {
	case st.ch <- live.Snapshot{Documents: docs}:
	case <-st.ctx.Done():
		return false
	}
	select {
	case st.barrier <- struct{}{}:
	case <-st.ctx.Done():
	}
	return true
}

// Fail makes the pending Next return err.
func (st *Stream) Fail(err error) {
	select {
	case st.fail <- err:
	case <-st.ctx.Done():
	}
}

// Doc is a shorthand for building documents.
func Doc(id string, data map[string]interface{}) live.Document {
	return live.Document{ID: id, Data: data}
}
