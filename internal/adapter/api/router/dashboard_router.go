package router

import (
	"github.com/labstack/echo/v4"

	"smartagri/internal/adapter/api/handler"
	"smartagri/internal/adapter/api/middleware"
)

func SetupDashboardRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	e.GET("/v1/dashboard", handler.GetDashboardHandler().GetDashboard, authMiddleware.Optional)
}

func SetupUploadRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	e.POST("/v1/uploads/images", handler.GetUploadHandler().UploadImage, authMiddleware.Authenticate)
}
