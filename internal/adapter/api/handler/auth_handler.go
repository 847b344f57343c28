package handler

import (
	"github.com/labstack/echo/v4"

	"smartagri/internal/domain/entity"
	"smartagri/internal/usecase"
	"smartagri/pkg/errors"
	"smartagri/pkg/logger"
	"smartagri/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=Farmer Vendor 'Agricultural Expert'"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type federatedRequest struct {
	ProviderID string `json:"provider_id" validate:"required"`
	IDToken    string `json:"id_token" validate:"required"`
	RequestURI string `json:"request_uri" validate:"omitempty,url"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     entity.ParseRole(req.Role),
	})
	if err != nil {
		return fail(c, err)
	}

	return response.Created(c, result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, result)
}

// FederatedLogin signs in with a credential from an external provider such
// as Google. First-time users get a Farmer profile.
func (h *AuthHandler) FederatedLogin(c echo.Context) error {
	var req federatedRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.FederatedLogin(c.Request().Context(), usecase.FederatedInput{
		ProviderID: req.ProviderID,
		IDToken:    req.IDToken,
		RequestURI: req.RequestURI,
	})
	if err != nil {
		return fail(c, err)
	}

	return response.Success(c, result)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.authUseCase.Logout(c.Request().Context(), identity.ID); err != nil {
		return fail(c, err)
	}

	logger.Info("User %s signed out", identity.ID)
	return response.Success(c, map[string]string{"message": "Signed out"})
}

// Me returns the identity the token resolves to.
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, identity)
}
