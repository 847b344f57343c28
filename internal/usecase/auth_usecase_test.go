package usecase

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartagri/internal/domain/entity"
	"smartagri/pkg/errors"
)

func TestRegisterStoresProfileAndSignsIn(t *testing.T) {
	users := newFakeUsers()
	auth := &fakeAuth{uid: "uid-1"}
	uc := NewAuthUseCase(users, auth)

	result, err := uc.Register(context.Background(), RegisterInput{
		Email:    "anitha@example.com",
		Password: "secret123",
		Name:     "Anitha",
		Role:     entity.RoleVendor,
	})
	require.NoError(t, err)

	assert.Equal(t, "id-token", result.Token)
	assert.Equal(t, entity.Identity{ID: "uid-1", DisplayName: "Anitha", Email: "anitha@example.com", Role: entity.RoleVendor}, result.Identity)
	require.Len(t, users.created, 1)
	assert.Equal(t, "Vendor", users.created[0].Role)
}

func TestRegisterDeletesAccountWhenProfileWriteFails(t *testing.T) {
	users := newFakeUsers()
	users.createErr = errors.WriteFailure("Failed to save user profile", stderrors.New("quota"))
	auth := &fakeAuth{uid: "uid-1"}
	uc := NewAuthUseCase(users, auth)

	_, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "secret1", Name: "A", Role: entity.RoleFarmer})

	assert.True(t, errors.Is(err, errors.CodeWriteFailure))
	assert.Equal(t, []string{"uid-1"}, auth.deleted)
	assert.Empty(t, users.created)
}

func TestRegisterSurfacesProviderMessage(t *testing.T) {
	auth := &fakeAuth{createErr: stderrors.New("EMAIL_EXISTS")}
	uc := NewAuthUseCase(newFakeUsers(), auth)

	_, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "x", Name: "A", Role: entity.RoleFarmer})

	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.CodeAuthFailure, appErr.Code)
	assert.Equal(t, "EMAIL_EXISTS", appErr.Message)
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
}

func TestRegisterRequiresRole(t *testing.T) {
	auth := &fakeAuth{uid: "uid-1"}
	uc := NewAuthUseCase(newFakeUsers(), auth)

	_, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.c", Password: "x", Name: "A"})

	assert.True(t, errors.Is(err, errors.CodeBadRequest))
	assert.Zero(t, auth.createCall)
}

func TestLoginResolvesRole(t *testing.T) {
	users := newFakeUsers()
	users.users["uid-1"] = &entity.User{UID: "uid-1", Name: "Ravi", Role: "Farmer"}
	uc := NewAuthUseCase(users, &fakeAuth{uid: "uid-1"})

	result, err := uc.Login(context.Background(), "ravi@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleFarmer, result.Identity.Role)
}

func TestLoginFailure(t *testing.T) {
	uc := NewAuthUseCase(newFakeUsers(), &fakeAuth{signInErr: stderrors.New("INVALID_PASSWORD")})

	_, err := uc.Login(context.Background(), "ravi@example.com", "bad")
	assert.True(t, errors.Is(err, errors.CodeAuthFailure))
}

func TestResolveIdentityFallsBackWithoutRole(t *testing.T) {
	users := newFakeUsers()
	users.getErr = errors.BackendUnavailable("down", nil)
	auth := &fakeAuth{provider: &entity.ProviderUser{UID: "uid-9", Email: "x@example.com", DisplayName: "Raw Name"}}
	uc := NewAuthUseCase(users, auth)

	identity := uc.ResolveIdentity(context.Background(), "uid-9")

	assert.Equal(t, "Raw Name", identity.DisplayName)
	assert.Equal(t, entity.RoleNone, identity.Role)
	assert.False(t, identity.HasRole())
}

func TestResolveIdentityWhenProviderAlsoFails(t *testing.T) {
	uc := NewAuthUseCase(newFakeUsers(), &fakeAuth{})

	identity := uc.ResolveIdentity(context.Background(), "uid-9")
	assert.Equal(t, entity.Identity{ID: "uid-9"}, identity)
}

func TestFederatedLoginDefaultsNewUsersToFarmer(t *testing.T) {
	users := newFakeUsers()
	auth := &fakeAuth{session: &entity.AuthSession{UID: "g-1", Email: "g@example.com", DisplayName: "Google User", IDToken: "tok", IsNewUser: true}}
	uc := NewAuthUseCase(users, auth)

	result, err := uc.FederatedLogin(context.Background(), FederatedInput{ProviderID: "google.com", IDToken: "google-token"})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleFarmer, result.Identity.Role)
	require.Len(t, users.created, 1)
	assert.Equal(t, "Farmer", users.created[0].Role)
}

func TestFederatedLoginKeepsExistingProfile(t *testing.T) {
	users := newFakeUsers()
	users.users["g-1"] = &entity.User{UID: "g-1", Name: "Expert", Role: "Agricultural Expert"}
	auth := &fakeAuth{uid: "g-1"}
	uc := NewAuthUseCase(users, auth)

	result, err := uc.FederatedLogin(context.Background(), FederatedInput{ProviderID: "google.com", IDToken: "t"})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleExpert, result.Identity.Role)
	assert.Empty(t, users.created)
}

func TestLogoutRevokesTokens(t *testing.T) {
	auth := &fakeAuth{}
	uc := NewAuthUseCase(newFakeUsers(), auth)

	require.NoError(t, uc.Logout(context.Background(), "uid-1"))
	assert.Equal(t, []string{"uid-1"}, auth.revoked)
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	uc := NewAuthUseCase(newFakeUsers(), &fakeAuth{verifyErr: stderrors.New("expired")})

	_, err := uc.Authenticate(context.Background(), "token")
	assert.True(t, errors.Is(err, errors.CodeUnauthorized))
}
