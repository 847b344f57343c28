package router

import (
	"github.com/labstack/echo/v4"

	"smartagri/internal/adapter/api/handler"
)

// SetupWebSocketRouter registers the live dashboard socket. Authentication
// happens inside the connection.
func SetupWebSocketRouter(e *echo.Echo) {
	e.GET("/ws/dashboard", handler.GetDashboardSocketHandler().HandleDashboard)
}
