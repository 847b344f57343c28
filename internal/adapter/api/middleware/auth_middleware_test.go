package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartagri/internal/domain/entity"
	"smartagri/pkg/errors"
	"smartagri/pkg/i18n"
)

type stubAuthenticator map[string]entity.Identity

func (s stubAuthenticator) Authenticate(ctx context.Context, token string) (entity.Identity, error) {
	identity, ok := s[token]
	if !ok {
		return entity.Identity{}, errors.Unauthorized("Invalid token", nil)
	}
	return identity, nil
}

func newContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestBearerToken(t *testing.T) {
	token, ok := BearerToken("Bearer abc")
	assert.True(t, ok)
	assert.Equal(t, "abc", token)

	for _, h := range []string{"", "Bearer", "Bearer ", "Basic abc", "Bearer a b"} {
		_, ok := BearerToken(h)
		assert.False(t, ok, h)
	}
}

func TestAuthenticate(t *testing.T) {
	m := NewAuthMiddleware(stubAuthenticator{
		"good": {ID: "farmer-1", Role: entity.RoleFarmer},
	})

	var seen *entity.Identity
	next := func(c echo.Context) error {
		seen, _ = IdentityFrom(c)
		return c.NoContent(http.StatusNoContent)
	}

	c, rec := newContext("")
	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)

	c, rec = newContext("Bearer bad")
	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	c, rec = newContext("Bearer good")
	require.NoError(t, m.Authenticate(next)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "farmer-1", seen.ID)
	assert.Equal(t, "farmer-1", c.Get(ContextUID))
}

func TestOptional(t *testing.T) {
	m := NewAuthMiddleware(stubAuthenticator{"good": {ID: "vendor-1"}})

	var authenticated bool
	next := func(c echo.Context) error {
		_, authenticated = IdentityFrom(c)
		return c.NoContent(http.StatusNoContent)
	}

	c, rec := newContext("Bearer bad")
	require.NoError(t, m.Optional(next)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, authenticated)

	c, _ = newContext("Bearer good")
	require.NoError(t, m.Optional(next)(c))
	assert.True(t, authenticated)
}

func TestLanguage(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?lang=ml", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := Language(i18n.English)(func(c echo.Context) error {
		assert.Equal(t, i18n.Malayalam, LanguageFrom(c))
		return nil
	})(c)
	require.NoError(t, err)
	assert.Equal(t, "ml", rec.Header().Get("Content-Language"))

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, i18n.English, LanguageFrom(c))
}
