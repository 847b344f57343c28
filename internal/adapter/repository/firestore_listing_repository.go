package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"smartagri/internal/domain/entity"
	"smartagri/internal/domain/repository"
	"smartagri/pkg/errors"
)

type firestoreCropRepository struct {
	client *firestore.Client
}

func NewFirestoreCropRepository(client *firestore.Client) repository.CropRepository {
	return &firestoreCropRepository{
		client: client,
	}
}

func (r *firestoreCropRepository) Create(ctx context.Context, crop *entity.CropListing) error {
	stampCreated(&crop.CreatedAt)

	id, err := create(ctx, r.client, entity.CollectionMarket, crop)
	if err != nil {
		return err
	}
	crop.ID = id
	return nil
}

func (r *firestoreCropRepository) List(ctx context.Context) ([]*entity.CropListing, error) {
	query := r.client.Collection(entity.CollectionMarket).OrderBy("createdAt", firestore.Desc)
	return collect(ctx, query, entity.DecodeCropListing)
}

func (r *firestoreCropRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.CropListing, error) {
	query := r.client.Collection(entity.CollectionMarket).Where(entity.OwnerField, "==", ownerID)
	return collect(ctx, query, entity.DecodeCropListing)
}

type firestoreEquipmentRepository struct {
	client *firestore.Client
}

func NewFirestoreEquipmentRepository(client *firestore.Client) repository.EquipmentRepository {
	return &firestoreEquipmentRepository{
		client: client,
	}
}

func (r *firestoreEquipmentRepository) Create(ctx context.Context, item *entity.EquipmentListing) error {
	stampCreated(&item.CreatedAt)

	id, err := create(ctx, r.client, entity.CollectionVendors, item)
	if err != nil {
		return err
	}
	item.ID = id
	return nil
}

func (r *firestoreEquipmentRepository) List(ctx context.Context, category string) ([]*entity.EquipmentListing, error) {
	query := r.client.Collection(entity.CollectionVendors).Query
	if category != "" {
		query = query.Where("category", "==", category)
	}
	query = query.OrderBy("createdAt", firestore.Desc)
	return collect(ctx, query, entity.DecodeEquipmentListing)
}

func (r *firestoreEquipmentRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.EquipmentListing, error) {
	query := r.client.Collection(entity.CollectionVendors).Where(entity.OwnerField, "==", ownerID)
	return collect(ctx, query, entity.DecodeEquipmentListing)
}

type firestoreDocumentStore struct {
	client *firestore.Client
}

func NewFirestoreDocumentStore(client *firestore.Client) repository.DocumentStore {
	return &firestoreDocumentStore{
		client: client,
	}
}

func (s *firestoreDocumentStore) OwnerOf(ctx context.Context, collection, id string) (string, error) {
	doc, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", errors.NotFound("Record", err)
		}
		return "", errors.FromFirestore("read "+collection+" record", err)
	}

	owner, _ := doc.Data()[entity.OwnerField].(string)
	return owner, nil
}

func (s *firestoreDocumentStore) Delete(ctx context.Context, collection, id string) error {
	_, err := s.client.Collection(collection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.FromFirestore("delete "+collection+" record", err)
	}
	return nil
}
