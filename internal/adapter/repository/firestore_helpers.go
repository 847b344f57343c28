package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"smartagri/pkg/errors"
	"smartagri/pkg/logger"
)

// collect drains a query and decodes every document. Documents that do not
// match the collection schema are logged and skipped.
func collect[T any](ctx context.Context, query firestore.Query, decode func(string, map[string]interface{}) (*T, error)) ([]*T, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	var out []*T
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.FromFirestore("read documents", err)
		}

		record, err := decode(doc.Ref.ID, doc.Data())
		if err != nil {
			logger.Warn("Skipping document %s: %v", doc.Ref.Path, err)
			continue
		}
		out = append(out, record)
	}

	return out, nil
}

// create stores data under a generated id and returns it.
func create(ctx context.Context, client *firestore.Client, collection string, data interface{}) (string, error) {
	ref := client.Collection(collection).NewDoc()
	if _, err := ref.Create(ctx, data); err != nil {
		return "", errors.FromFirestore("create "+collection+" record", err)
	}
	return ref.ID, nil
}

func stampCreated(t *time.Time) {
	if t.IsZero() {
		*t = time.Now().UTC()
	}
}
