package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"smartagri/internal/domain/entity"
	"smartagri/internal/live"
)

// FirestoreSource implements live.Source on top of Firestore query listeners.
type FirestoreSource struct {
	client *firestore.Client
}

func NewFirestoreSource(client *firestore.Client) *FirestoreSource {
	return &FirestoreSource{client: client}
}

func (s *FirestoreSource) Open(ctx context.Context, q live.Query) (live.Stream, error) {
	return &firestoreStream{
		it: buildQuery(s.client, q).Snapshots(ctx),
	}, nil
}

// TestConnection reads at most one profile to prove Firestore is reachable.
func (s *FirestoreSource) TestConnection(ctx context.Context) error {
	_, err := s.client.Collection(entity.CollectionUsers).Limit(1).Documents(ctx).Next()
	if err == iterator.Done {
		return nil
	}
	return err
}

func buildQuery(client *firestore.Client, q live.Query) firestore.Query {
	query := client.Collection(q.Collection).Query
	if q.Filter != nil {
		query = query.Where(q.Filter.Field, "==", q.Filter.Value)
	}
	if q.OrderBy != "" {
		dir := firestore.Asc
		if q.Descending {
			dir = firestore.Desc
		}
		query = query.OrderBy(q.OrderBy, dir)
	}
	return query
}

type firestoreStream struct {
	it *firestore.QuerySnapshotIterator
}

func (s *firestoreStream) Next() (live.Snapshot, error) {
	qs, err := s.it.Next()
	if err != nil {
		if err == iterator.Done || status.Code(err) == codes.Canceled {
			return live.Snapshot{}, live.ErrClosed
		}
		return live.Snapshot{}, err
	}

	docs, err := qs.Documents.GetAll()
	if err != nil {
		return live.Snapshot{}, err
	}

	return toSnapshot(docs), nil
}

func (s *firestoreStream) Stop() {
	s.it.Stop()
}

func toSnapshot(docs []*firestore.DocumentSnapshot) live.Snapshot {
	snap := live.Snapshot{Documents: make([]live.Document, 0, len(docs))}
	for _, doc := range docs {
		snap.Documents = append(snap.Documents, live.Document{
			ID:   doc.Ref.ID,
			Data: doc.Data(),
		})
	}
	return snap
}
