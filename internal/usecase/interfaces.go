package usecase

import (
	"context"

	"smartagri/internal/domain/entity"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	GetUser(ctx context.Context, uid string) (*entity.ProviderUser, error)
	SignInWithEmailPassword(ctx context.Context, email, password string) (*entity.AuthSession, error)
	SignInWithIdp(ctx context.Context, providerID, idToken, requestURI string) (*entity.AuthSession, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
	DeleteUser(ctx context.Context, uid string) error
	TestConnection(ctx context.Context) error
}

// WeatherProvider fetches current conditions. Exactly one of city or the
// coordinates is used.
type WeatherProvider interface {
	ByCoordinates(ctx context.Context, lat, lon float64) (*entity.Weather, error)
	ByCity(ctx context.Context, city string) (*entity.Weather, error)
}
