package router

import (
	"github.com/labstack/echo/v4"

	"smartagri/internal/adapter/api/handler"
)

func SetupContentRouter(e *echo.Echo) {
	contentHandler := handler.GetContentHandler()

	content := e.Group("/v1/content")
	content.GET("/diseases", contentHandler.Diseases)
	content.GET("/subsidies", contentHandler.Subsidies)
	content.GET("/faqs", contentHandler.FAQs)
}

func SetupWeatherRouter(e *echo.Echo) {
	e.GET("/v1/weather", handler.GetWeatherHandler().Current)
}
