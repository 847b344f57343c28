package handler

import (
	"github.com/labstack/echo/v4"

	"smartagri/internal/adapter/api/middleware"
	"smartagri/internal/domain/entity"
	"smartagri/internal/usecase"
	"smartagri/pkg/errors"
	"smartagri/pkg/i18n"
	"smartagri/pkg/response"
)

type SupportHandler struct {
	supportUseCase *usecase.SupportUseCase
}

func NewSupportHandler(supportUseCase *usecase.SupportUseCase) *SupportHandler {
	return &SupportHandler{
		supportUseCase: supportUseCase,
	}
}

type ticketRequest struct {
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type ticketResponse struct {
	Ticket  *entity.SupportTicket `json:"ticket"`
	Message string                `json:"message"`
}

// CreateTicket accepts messages from guests as well as signed-in users.
func (h *SupportHandler) CreateTicket(c echo.Context) error {
	var req ticketRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	identity, _ := middleware.IdentityFrom(c)

	ticket, err := h.supportUseCase.CreateTicket(c.Request().Context(), identity, req.Subject, req.Message)
	if err != nil {
		return fail(c, err)
	}

	return response.Created(c, ticketResponse{
		Ticket:  ticket,
		Message: middleware.PrinterFrom(c).Sprintf(i18n.MsgTicketSent),
	})
}
