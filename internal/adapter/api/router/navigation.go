package router

import (
	"strings"

	"github.com/labstack/echo/v4"

	"smartagri/internal/adapter/api/middleware"
	"smartagri/internal/dashboard"
	"smartagri/pkg/response"
)

const HomePath = "/"

// Pages that need a signed-in user.
var protectedPages = map[string]bool{
	"/dashboard":       true,
	"/sell":            true,
	"/register-expert": true,
	"/register-vendor": true,
}

var publicPages = map[string]bool{
	HomePath:            true,
	dashboard.LoginPath: true,
	"/marketplace":      true,
	"/experts":          true,
	"/disease":          true,
	"/subsidies":        true,
	"/vendors":          true,
	"/help":             true,
}

// Page is where the client should land for a requested path.
type Page struct {
	Path       string `json:"path"`
	Redirected bool   `json:"redirected"`
	Protected  bool   `json:"protected"`
}

// ResolvePage sends signed-out users away from protected pages to the login
// page and every unknown path to the home page.
func ResolvePage(path string, authenticated bool) Page {
	clean := "/" + strings.Trim(strings.TrimSpace(path), "/")

	switch {
	case protectedPages[clean]:
		if !authenticated {
			return Page{Path: dashboard.LoginPath, Redirected: true, Protected: true}
		}
		return Page{Path: clean, Protected: true}
	case publicPages[clean]:
		return Page{Path: clean}
	default:
		return Page{Path: HomePath, Redirected: true}
	}
}

func SetupNavigationRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	e.GET("/v1/navigation", func(c echo.Context) error {
		_, authenticated := middleware.IdentityFrom(c)
		return response.Success(c, ResolvePage(c.QueryParam("path"), authenticated))
	}, authMiddleware.Optional)
}
