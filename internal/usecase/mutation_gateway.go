package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"smartagri/internal/domain/entity"
	"smartagri/internal/domain/repository"
	"smartagri/pkg/errors"
	"smartagri/pkg/i18n"
	"smartagri/pkg/logger"
)

var tracer = otel.Tracer("smartagri/internal/usecase")

var deletableCollections = map[string]bool{
	entity.CollectionMarket:  true,
	entity.CollectionVendors: true,
	entity.CollectionExperts: true,
}

// MutationGateway issues writes against the live collections. It never
// patches any local view: a successful delete shows up through the next
// snapshot of whichever subscription watches the record.
type MutationGateway struct {
	documents  repository.DocumentStore
	expertRepo repository.ExpertRepository
	bookings   repository.BookingRepository
}

func NewMutationGateway(
	documents repository.DocumentStore,
	expertRepo repository.ExpertRepository,
	bookings repository.BookingRepository,
) *MutationGateway {
	return &MutationGateway{
		documents:  documents,
		expertRepo: expertRepo,
		bookings:   bookings,
	}
}

// Delete removes collection/id on behalf of identity. The caller must have
// obtained the user's confirmation; only the owner may delete.
func (g *MutationGateway) Delete(ctx context.Context, identity entity.Identity, collection, id string, confirmed bool) (err error) {
	ctx, span := tracer.Start(ctx, "MutationGateway.Delete", trace.WithAttributes(
		attribute.String("db.collection", collection),
		attribute.String("db.document_id", id),
	))
	defer func() { endSpan(span, err) }()

	if !deletableCollections[collection] {
		return errors.BadRequest("Unknown collection: "+collection, nil)
	}
	if !confirmed {
		return errors.ConfirmationRequired(i18n.MsgConfirmDelete)
	}

	owner, err := g.documents.OwnerOf(ctx, collection, id)
	if err != nil {
		return err
	}
	if owner != identity.ID {
		return errors.PermissionDenied("Only the owner can delete this record", nil)
	}

	return g.documents.Delete(ctx, collection, id)
}

// CreateBooking requests a consultation with an expert. The role and
// service checks run before any database access.
func (g *MutationGateway) CreateBooking(ctx context.Context, identity *entity.Identity, expertID string, service entity.ServiceType) (booking *entity.Booking, err error) {
	if identity == nil || identity.Role != entity.RoleFarmer {
		return nil, errors.Forbidden(i18n.MsgOnlyFarmersBook, nil)
	}
	if !service.Valid() {
		return nil, errors.BadRequest(i18n.MsgSelectService, nil)
	}

	ctx, span := tracer.Start(ctx, "MutationGateway.CreateBooking", trace.WithAttributes(
		attribute.String("expert.id", expertID),
		attribute.String("booking.service_type", string(service)),
	))
	defer func() { endSpan(span, err) }()

	expert, err := g.expertRepo.GetByID(ctx, expertID)
	if err != nil {
		return nil, err
	}

	requesterName := identity.DisplayName
	if requesterName == "" {
		requesterName = "Guest"
	}

	booking = &entity.Booking{
		ExpertID:      expert.ID,
		ExpertName:    expert.Name,
		ExpertOwnerID: expert.OwnerID,
		RequesterID:   identity.ID,
		RequesterName: requesterName,
		ServiceType:   service,
		Status:        entity.BookingStatusPending,
	}
	if err := g.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// RecordCallRequest bumps the expert's call counter. Failures are logged
// and otherwise ignored.
func (g *MutationGateway) RecordCallRequest(ctx context.Context, expertID string) {
	ctx, span := tracer.Start(ctx, "MutationGateway.RecordCallRequest", trace.WithAttributes(
		attribute.String("expert.id", expertID),
	))
	defer span.End()

	if err := g.expertRepo.IncrementCallRequests(ctx, expertID); err != nil {
		span.RecordError(err)
		logger.LogWriteFailure(entity.CollectionExperts, expertID, "increment callRequests", err)
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
