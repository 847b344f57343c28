package live

import (
	"context"
	"errors"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"smartagri/pkg/logger"
)

var tracer = otel.Tracer("smartagri/internal/live")

// Decoder maps a raw document to its domain record.
type Decoder[T any] func(id string, data map[string]interface{}) (T, error)

// Subscription is a handle on one running query listener.
// Cancel must be called when the owner of the subscription goes away.
type Subscription struct {
	query  Query
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Subscribe opens q on src and delivers every snapshot, decoded record by
// record, to deliver. Deliveries happen on a single goroutine, in the order
// the backend emits snapshots. Records that fail to decode are logged and
// left out of the snapshot.
func Subscribe[T any](ctx context.Context, src Source, q Query, decode Decoder[T], deliver func([]T)) (*Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)

	_, span := tracer.Start(ctx, "live.Subscribe")
	span.SetAttributes(
		attribute.String("live.collection", q.Collection),
		attribute.String("live.query", q.String()),
	)
	stream, err := src.Open(ctx, q)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.End()
		cancel()
		return nil, err
	}
	span.End()

	s := &Subscription{
		query:  q,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go pump(s, stream, decode, deliver)

	return s, nil
}

func pump[T any](s *Subscription, stream Stream, decode Decoder[T], deliver func([]T)) {
	defer close(s.done)
	defer stream.Stop()

	for {
		snap, err := stream.Next()
		if err != nil {
			if !isClosed(err) {
				logger.Error("Live query %s failed: %v", s.query, err)
			}
			return
		}

		records := make([]T, 0, len(snap.Documents))
		for _, doc := range snap.Documents {
			record, err := decode(doc.ID, doc.Data)
			if err != nil {
				logger.Warn("Skipping %s/%s: %v", s.query.Collection, doc.ID, err)
				continue
			}
			records = append(records, record)
		}

		deliver(records)
	}
}

// Cancel stops the listener and waits for the delivery goroutine to exit.
// After Cancel returns no further delivery happens. Safe to call twice.
func (s *Subscription) Cancel() {
	s.once.Do(s.cancel)
	<-s.done
}

// Done is closed once the subscription has stopped delivering, either
// because it was cancelled or because the stream failed.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) Query() Query {
	return s.query
}

func isClosed(err error) bool {
	return errors.Is(err, ErrClosed) || errors.Is(err, context.Canceled)
}

// Group cancels a set of subscriptions together.
type Group struct {
	mu   sync.Mutex
	subs []*Subscription
}

func (g *Group) Add(s *Subscription) {
	g.mu.Lock()
	g.subs = append(g.subs, s)
	g.mu.Unlock()
}

func (g *Group) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.subs)
}

// CancelAll cancels every subscription and returns once all of them have
// stopped delivering.
func (g *Group) CancelAll() {
	g.mu.Lock()
	subs := g.subs
	g.subs = nil
	g.mu.Unlock()

	for _, s := range subs {
		s.Cancel()
	}
}
