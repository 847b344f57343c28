package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"smartagri/internal/adapter/api/middleware"
	"smartagri/internal/usecase"
	"smartagri/pkg/errors"
	"smartagri/pkg/response"
)

type WeatherHandler struct {
	weatherUseCase *usecase.WeatherUseCase
}

func NewWeatherHandler(weatherUseCase *usecase.WeatherUseCase) *WeatherHandler {
	return &WeatherHandler{
		weatherUseCase: weatherUseCase,
	}
}

// Current reports the weather at ?lat=&lon=. Without coordinates the
// configured fallback city is used.
func (h *WeatherHandler) Current(c echo.Context) error {
	coords, err := parseCoordinates(c.QueryParam("lat"), c.QueryParam("lon"))
	if err != nil {
		return response.Error(c, err)
	}

	report, err := h.weatherUseCase.Current(c.Request().Context(), coords, middleware.PrinterFrom(c))
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, report)
}

func parseCoordinates(lat, lon string) (*usecase.Coordinates, error) {
	if lat == "" && lon == "" {
		return nil, nil
	}
	if lat == "" || lon == "" {
		return nil, errors.BadRequest("lat and lon must be given together", nil)
	}

	latitude, err := strconv.ParseFloat(lat, 64)
	if err != nil || latitude < -90 || latitude > 90 {
		return nil, errors.BadRequest("lat is not a valid coordinate", err)
	}
	longitude, err := strconv.ParseFloat(lon, 64)
	if err != nil || longitude < -180 || longitude > 180 {
		return nil, errors.BadRequest("lon is not a valid coordinate", err)
	}

	return &usecase.Coordinates{Lat: latitude, Lon: longitude}, nil
}
