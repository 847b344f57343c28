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

type ExpertHandler struct {
	expertUseCase *usecase.ExpertUseCase
	gateway       *usecase.MutationGateway
}

func NewExpertHandler(expertUseCase *usecase.ExpertUseCase, gateway *usecase.MutationGateway) *ExpertHandler {
	return &ExpertHandler{
		expertUseCase: expertUseCase,
		gateway:       gateway,
	}
}

type registerExpertRequest struct {
	Name       string `json:"name" validate:"required"`
	Specialty  string `json:"specialty" validate:"required"`
	Experience string `json:"experience"`
	Education  string `json:"education"`
	Bio        string `json:"bio"`
	Phone      string `json:"phone" validate:"required"`
}

type bookingRequest struct {
	ServiceType string `json:"service_type"`
}

type bookingResponse struct {
	Booking *entity.Booking `json:"booking"`
	Message string          `json:"message"`
}

func (h *ExpertHandler) ListExperts(c echo.Context) error {
	experts, err := h.expertUseCase.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return fail(c, err)
	}
	return response.List(c, experts, len(experts))
}

func (h *ExpertHandler) GetExpert(c echo.Context) error {
	expert, err := h.expertUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return response.Success(c, expert)
}

func (h *ExpertHandler) RegisterExpert(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req registerExpertRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profile, err := h.expertUseCase.Register(c.Request().Context(), *identity, usecase.RegisterExpertInput{
		Name:       req.Name,
		Specialty:  req.Specialty,
		Experience: req.Experience,
		Education:  req.Education,
		Bio:        req.Bio,
		Phone:      req.Phone,
	})
	if err != nil {
		return fail(c, err)
	}

	return response.Created(c, profile)
}

// BookExpert requests a consultation. The service type is checked by the
// gateway so that its message reaches the user in their language.
func (h *ExpertHandler) BookExpert(c echo.Context) error {
	identity, _ := middleware.IdentityFrom(c)

	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	booking, err := h.gateway.CreateBooking(c.Request().Context(), identity, c.Param("id"), entity.ServiceType(req.ServiceType))
	if err != nil {
		return fail(c, err)
	}

	p := middleware.PrinterFrom(c)
	return response.Created(c, bookingResponse{
		Booking: booking,
		Message: p.Sprintf(i18n.MsgBookingSent, booking.ExpertName),
	})
}

// RequestCall records a call attempt and returns the number to dial.
func (h *ExpertHandler) RequestCall(c echo.Context) error {
	expert, err := h.expertUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}

	h.gateway.RecordCallRequest(c.Request().Context(), expert.ID)

	return response.Success(c, map[string]string{
		"expert_id": expert.ID,
		"phone":     expert.Phone,
	})
}
