package router

import (
	"github.com/labstack/echo/v4"

	"smartagri/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupListingRouter(e, authMiddleware)
	SetupExpertRouter(e, authMiddleware)
	SetupSupportRouter(e, authMiddleware)
	SetupContentRouter(e)
	SetupWeatherRouter(e)
	SetupDashboardRouter(e, authMiddleware)
	SetupUploadRouter(e, authMiddleware)
	SetupNavigationRouter(e, authMiddleware)
	SetupWebSocketRouter(e)
	SetupHealthRouter(e)
}
