package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"smartagri/internal/domain/entity"
	"smartagri/pkg/errors"
	"smartagri/pkg/response"
)

// Context keys set by the auth middleware.
const (
	ContextUID      = "uid"
	ContextIdentity = "identity"
)

// Authenticator resolves an ID token to the identity it belongs to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (entity.Identity, error)
}

type AuthMiddleware struct {
	auth Authenticator
}

func NewAuthMiddleware(auth Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		auth: auth,
	}
}

// Authenticate rejects requests without a valid bearer token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return response.Error(c, errors.Unauthorized("Authorization header is required", nil))
		}

		identity, err := m.auth.Authenticate(c.Request().Context(), token)
		if err != nil {
			return response.Error(c, errors.Unauthorized("Invalid or expired token", err))
		}

		setIdentity(c, identity)
		return next(c)
	}
}

// Optional attaches the identity when a valid token is present and lets the
// request through either way.
func (m *AuthMiddleware) Optional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, ok := BearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
		if !ok {
			return next(c)
		}

		if identity, err := m.auth.Authenticate(c.Request().Context(), token); err == nil {
			setIdentity(c, identity)
		}
		return next(c)
	}
}

func setIdentity(c echo.Context, identity entity.Identity) {
	c.Set(ContextUID, identity.ID)
	c.Set(ContextIdentity, identity)
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" value.
func BearerToken(header string) (string, bool) {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// IdentityFrom returns the identity attached by Authenticate or Optional.
func IdentityFrom(c echo.Context) (*entity.Identity, bool) {
	identity, ok := c.Get(ContextIdentity).(entity.Identity)
	if !ok {
		return nil, false
	}
	return &identity, true
}
