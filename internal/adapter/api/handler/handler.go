package handler

import (
	stderrors "errors"

	"github.com/labstack/echo/v4"

	"smartagri/internal/adapter/api/middleware"
	"smartagri/internal/domain/entity"
	"smartagri/internal/usecase"
	"smartagri/pkg/errors"
	"smartagri/pkg/response"
)

var (
	authHandler      *AuthHandler
	listingHandler   *ListingHandler
	expertHandler    *ExpertHandler
	supportHandler   *SupportHandler
	contentHandler   *ContentHandler
	weatherHandler   *WeatherHandler
	dashboardHandler *DashboardHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	listingUseCase *usecase.ListingUseCase,
	expertUseCase *usecase.ExpertUseCase,
	gateway *usecase.MutationGateway,
	supportUseCase *usecase.SupportUseCase,
	contentUseCase *usecase.ContentUseCase,
	weatherUseCase *usecase.WeatherUseCase,
	dashboardUseCase *usecase.DashboardUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	listingHandler = NewListingHandler(listingUseCase, gateway)
	expertHandler = NewExpertHandler(expertUseCase, gateway)
	supportHandler = NewSupportHandler(supportUseCase)
	contentHandler = NewContentHandler(contentUseCase)
	weatherHandler = NewWeatherHandler(weatherUseCase)
	dashboardHandler = NewDashboardHandler(dashboardUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetExpertHandler() *ExpertHandler {
	return expertHandler
}

func GetSupportHandler() *SupportHandler {
	return supportHandler
}

func GetContentHandler() *ContentHandler {
	return contentHandler
}

func GetWeatherHandler() *WeatherHandler {
	return weatherHandler
}

func GetDashboardHandler() *DashboardHandler {
	return dashboardHandler
}

// fail writes err with its message translated to the request language.
func fail(c echo.Context, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		localized := *appErr
		localized.Message = middleware.PrinterFrom(c).Sprintf(appErr.Message)
		return response.Error(c, &localized)
	}
	return response.Error(c, err)
}

// requireIdentity returns the identity set by the auth middleware.
func requireIdentity(c echo.Context) (*entity.Identity, error) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		return nil, errors.Unauthorized("Authentication required", nil)
	}
	return identity, nil
}
