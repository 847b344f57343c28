package repository

import (
	"context"

	"smartagri/internal/domain/entity"
)

// CropRepository stores farmer listings in the market collection.
// Listings are never updated in place.
type CropRepository interface {
	Create(ctx context.Context, crop *entity.CropListing) error
	List(ctx context.Context) ([]*entity.CropListing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.CropListing, error)
}

type EquipmentRepository interface {
	Create(ctx context.Context, item *entity.EquipmentListing) error
	List(ctx context.Context, category string) ([]*entity.EquipmentListing, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entity.EquipmentListing, error)
}

// DocumentStore is the collection-agnostic surface used for deletes.
type DocumentStore interface {
	OwnerOf(ctx context.Context, collection, id string) (string, error)
	Delete(ctx context.Context, collection, id string) error
}
