package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"smartagri/pkg/errors"
	"smartagri/pkg/logger"
	"smartagri/pkg/response"
)

const backendCheckTimeout = 5 * time.Second

// ConnectionTester is implemented by backend clients that can be probed.
type ConnectionTester interface {
	TestConnection(ctx context.Context) error
}

// BackendCheck names one backend probed by /health/firebase.
type BackendCheck struct {
	Name   string
	Tester ConnectionTester
}

type HealthHandler struct {
	checks []BackendCheck
}

var healthHandler *HealthHandler

func NewHealthHandler(checks ...BackendCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

func SetupHealthHandler(checks ...BackendCheck) {
	healthHandler = NewHealthHandler(checks...)
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func (h *HealthHandler) CheckHealth(c echo.Context) error {
	return response.Success(c, map[string]string{
		"status": "Server is running",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// CheckFirebaseHealth probes every backend in order and reports the first
// one that cannot be reached.
func (h *HealthHandler) CheckFirebaseHealth(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), backendCheckTimeout)
	defer cancel()

	backends := make(map[string]string, len(h.checks))
	for _, check := range h.checks {
		if err := check.Tester.TestConnection(ctx); err != nil {
			logger.Error("Health check of %s failed: %v", check.Name, err)
			return response.Error(c, errors.BackendUnavailable(check.Name+" is unreachable", err))
		}
		backends[check.Name] = "connected"
	}

	return response.Success(c, backends)
}
