package handler

import (
	"github.com/labstack/echo/v4"

	"smartagri/internal/adapter/api/middleware"
	"smartagri/internal/usecase"
	"smartagri/pkg/response"
)

type DashboardHandler struct {
	dashboardUseCase *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

// GetDashboard renders the caller's dashboard once. Callers without a token
// get the access-denied view rather than an error.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	identity, _ := middleware.IdentityFrom(c)

	view, err := h.dashboardUseCase.Build(c.Request().Context(), identity, middleware.PrinterFrom(c))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, view)
}
