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

type firestoreExpertRepository struct {
	client *firestore.Client
}

func NewFirestoreExpertRepository(client *firestore.Client) repository.ExpertRepository {
	return &firestoreExpertRepository{
		client: client,
	}
}

// Create stores the profile under its owner's uid, so a second profile for the
// same owner fails with CONFLICT.
func (r *firestoreExpertRepository) Create(ctx context.Context, profile *entity.ExpertProfile) error {
	stampCreated(&profile.CreatedAt)

	ref := r.client.Collection(entity.CollectionExperts).Doc(profile.OwnerID)
	if _, err := ref.Create(ctx, profile); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("Expert profile already exists")
		}
		return errors.FromFirestore("create expert profile", err)
	}
	profile.ID = ref.ID
	return nil
}

func (r *firestoreExpertRepository) GetByID(ctx context.Context, id string) (*entity.ExpertProfile, error) {
	doc, err := r.client.Collection(entity.CollectionExperts).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Expert", err)
		}
		return nil, errors.FromFirestore("read expert profile", err)
	}

	profile, err := entity.DecodeExpertProfile(doc.Ref.ID, doc.Data())
	if err != nil {
		return nil, errors.Internal("Failed to parse expert data", err)
	}
	return profile, nil
}

func (r *firestoreExpertRepository) GetByOwner(ctx context.Context, ownerID string) (*entity.ExpertProfile, error) {
	query := r.client.Collection(entity.CollectionExperts).Where(entity.OwnerField, "==", ownerID).Limit(1)
	profiles, err := collect(ctx, query, entity.DecodeExpertProfile)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, nil
	}
	return profiles[0], nil
}

func (r *firestoreExpertRepository) List(ctx context.Context) ([]*entity.ExpertProfile, error) {
	query := r.client.Collection(entity.CollectionExperts).OrderBy("createdAt", firestore.Desc)
	return collect(ctx, query, entity.DecodeExpertProfile)
}

func (r *firestoreExpertRepository) IncrementCallRequests(ctx context.Context, id string) error {
	_, err := r.client.Collection(entity.CollectionExperts).Doc(id).Update(ctx, []firestore.Update{
		{Path: "callRequests", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.FromFirestore("record call request", err)
	}
	return nil
}

type firestoreBookingRepository struct {
	client *firestore.Client
}

func NewFirestoreBookingRepository(client *firestore.Client) repository.BookingRepository {
	return &firestoreBookingRepository{
		client: client,
	}
}

func (r *firestoreBookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	stampCreated(&booking.CreatedAt)

	id, err := create(ctx, r.client, entity.CollectionBookings, booking)
	if err != nil {
		return err
	}
	booking.ID = id
	return nil
}

func (r *firestoreBookingRepository) ListByRequester(ctx context.Context, requesterID string) ([]*entity.Booking, error) {
	query := r.client.Collection(entity.CollectionBookings).Where("userId", "==", requesterID)
	return collect(ctx, query, entity.DecodeBooking)
}

func (r *firestoreBookingRepository) ListByExpertOwner(ctx context.Context, expertOwnerID string) ([]*entity.Booking, error) {
	query := r.client.Collection(entity.CollectionBookings).Where("expertUserId", "==", expertOwnerID)
	return collect(ctx, query, entity.DecodeBooking)
}

type firestoreSupportTicketRepository struct {
	client *firestore.Client
}

func NewFirestoreSupportTicketRepository(client *firestore.Client) repository.SupportTicketRepository {
	return &firestoreSupportTicketRepository{
		client: client,
	}
}

func (r *firestoreSupportTicketRepository) Create(ctx context.Context, ticket *entity.SupportTicket) error {
	stampCreated(&ticket.CreatedAt)

	id, err := create(ctx, r.client, entity.CollectionSupportTickets, ticket)
	if err != nil {
		return err
	}
	ticket.ID = id
	return nil
}
