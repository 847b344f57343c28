package usecase

import (
	"context"

	"smartagri/internal/domain/entity"
	"smartagri/internal/domain/repository"
)

const (
	GuestRequesterID   = "guest"
	GuestRequesterName = "Guest User"
	TicketStatusOpen   = "Open"
)

type SupportUseCase struct {
	ticketRepo repository.SupportTicketRepository
}

func NewSupportUseCase(ticketRepo repository.SupportTicketRepository) *SupportUseCase {
	return &SupportUseCase{
		ticketRepo: ticketRepo,
	}
}

// CreateTicket files a help-desk message. identity may be nil for guests.
func (uc *SupportUseCase) CreateTicket(ctx context.Context, identity *entity.Identity, subject, message string) (*entity.SupportTicket, error) {
	ticket := &entity.SupportTicket{
		RequesterID:   GuestRequesterID,
		RequesterName: GuestRequesterName,
		Subject:       subject,
		Message:       message,
		Status:        TicketStatusOpen,
	}
	if identity != nil {
		ticket.RequesterID = identity.ID
		if identity.DisplayName != "" {
			ticket.RequesterName = identity.DisplayName
		}
	}

	if err := uc.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}
