package router

import (
	"github.com/labstack/echo/v4"

	"smartagri/internal/adapter/api/handler"
	"smartagri/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()

	e.GET("/v1/crops", listingHandler.ListCrops)
	e.GET("/v1/equipment", listingHandler.ListEquipment)

	e.POST("/v1/crops", listingHandler.CreateCrop, authMiddleware.Authenticate)
	e.POST("/v1/equipment", listingHandler.CreateEquipment, authMiddleware.Authenticate)
	e.DELETE("/v1/listings/:collection/:id", listingHandler.DeleteListing, authMiddleware.Authenticate)
}
