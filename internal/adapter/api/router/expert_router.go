package router

import (
	"github.com/labstack/echo/v4"

	"smartagri/internal/adapter/api/handler"
	"smartagri/internal/adapter/api/middleware"
)

func SetupExpertRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	expertHandler := handler.GetExpertHandler()

	experts := e.Group("/v1/experts")
	experts.GET("", expertHandler.ListExperts)
	experts.GET("/:id", expertHandler.GetExpert)
	experts.POST("/:id/call", expertHandler.RequestCall)

	experts.POST("", expertHandler.RegisterExpert, authMiddleware.Authenticate)
	// Guests reach the handler so they get the "farmers only" message.
	experts.POST("/:id/bookings", expertHandler.BookExpert, authMiddleware.Optional)
}
