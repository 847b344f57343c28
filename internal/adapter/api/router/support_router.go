package router

import (
	"github.com/labstack/echo/v4"

	"smartagri/internal/adapter/api/handler"
	"smartagri/internal/adapter/api/middleware"
)

func SetupSupportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	supportHandler := handler.GetSupportHandler()

	e.POST("/v1/support/tickets", supportHandler.CreateTicket, authMiddleware.Optional)
}
