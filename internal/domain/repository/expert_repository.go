package repository

import (
	"context"

	"smartagri/internal/domain/entity"
)

type ExpertRepository interface {
	Create(ctx context.Context, profile *entity.ExpertProfile) error
	GetByID(ctx context.Context, id string) (*entity.ExpertProfile, error)
	// GetByOwner returns nil, nil when the user has no profile.
	GetByOwner(ctx context.Context, ownerID string) (*entity.ExpertProfile, error)
	List(ctx context.Context) ([]*entity.ExpertProfile, error)
	IncrementCallRequests(ctx context.Context, id string) error
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	ListByRequester(ctx context.Context, requesterID string) ([]*entity.Booking, error)
	ListByExpertOwner(ctx context.Context, expertOwnerID string) ([]*entity.Booking, error)
}

type SupportTicketRepository interface {
	Create(ctx context.Context, ticket *entity.SupportTicket) error
}
