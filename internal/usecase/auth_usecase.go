package usecase

import (
	"context"
	"time"

	"smartagri/internal/domain/entity"
	"smartagri/internal/domain/repository"
	"smartagri/pkg/errors"
	"smartagri/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     entity.Role
}

type FederatedInput struct {
	ProviderID string
	IDToken    string
	RequestURI string
}

type AuthResult struct {
	Identity     entity.Identity `json:"identity"`
	Token        string          `json:"token"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	ExpiresIn    string          `json:"expires_in,omitempty"`
}

func newAuthResult(identity entity.Identity, session *entity.AuthSession) *AuthResult {
	return &AuthResult{
		Identity:     identity,
		Token:        session.IDToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    session.ExpiresIn,
	}
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Role == entity.RoleNone {
		return nil, errors.BadRequest("A role is required to register", nil)
	}

	uid, err := uc.firebaseAuth.CreateUser(ctx, input.Email, input.Password, input.Name)
	if err != nil {
		return nil, errors.AuthFailure(err)
	}

	user := &entity.User{
		UID:       uid,
		Name:      input.Name,
		Email:     input.Email,
		Role:      input.Role.String(),
		CreatedAt: time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		logger.LogWriteFailure(entity.CollectionUsers, uid, "create user profile", err)
		uc.discardAccount(ctx, uid)
		return nil, err
	}

	session, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.AuthFailure(err)
	}

	return newAuthResult(user.Identity(), session), nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	session, err := uc.firebaseAuth.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.AuthFailure(err)
	}

	identity := uc.ResolveIdentity(ctx, session.UID)
	return newAuthResult(identity, session), nil
}

// FederatedLogin signs in with a third-party credential. Accounts without a
// profile record get one with the Farmer role.
func (uc *AuthUseCase) FederatedLogin(ctx context.Context, input FederatedInput) (*AuthResult, error) {
	session, err := uc.firebaseAuth.SignInWithIdp(ctx, input.ProviderID, input.IDToken, input.RequestURI)
	if err != nil {
		return nil, errors.AuthFailure(err)
	}

	user, err := uc.userRepo.GetByID(ctx, session.UID)
	if err == nil {
		return newAuthResult(user.Identity(), session), nil
	}
	if !errors.Is(err, errors.CodeNotFound) {
		logger.Warn("%s: profile of %s unreadable: %v", errors.CodeProfileFetchFailure, session.UID, err)
		return newAuthResult(uc.providerIdentity(ctx, session.UID), session), nil
	}

	user = &entity.User{
		UID:       session.UID,
		Name:      session.DisplayName,
		Email:     session.Email,
		Role:      entity.RoleFarmer.String(),
		CreatedAt: time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return newAuthResult(user.Identity(), session), nil
}

// discardAccount removes an account whose profile could not be stored, so the
// user can register again instead of signing in without a role.
func (uc *AuthUseCase) discardAccount(ctx context.Context, uid string) {
	if err := uc.firebaseAuth.DeleteUser(ctx, uid); err != nil {
		logger.Error("Account %s has no profile and could not be deleted: %v", uid, err)
	}
}

// Logout revokes every refresh token of uid.
func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	if err := uc.firebaseAuth.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.AuthFailure(err)
	}
	return nil
}

// Authenticate verifies an ID token and resolves the identity behind it.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (entity.Identity, error) {
	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return entity.Identity{}, errors.Unauthorized("Invalid token", err)
	}
	return uc.ResolveIdentity(ctx, uid), nil
}

// ResolveIdentity never fails: when the profile record cannot be read the
// raw provider identity is returned without a role.
func (uc *AuthUseCase) ResolveIdentity(ctx context.Context, uid string) entity.Identity {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err == nil {
		return user.Identity()
	}

	logger.Warn("%s: falling back to provider identity for %s: %v", errors.CodeProfileFetchFailure, uid, err)
	return uc.providerIdentity(ctx, uid)
}

func (uc *AuthUseCase) providerIdentity(ctx context.Context, uid string) entity.Identity {
	raw, err := uc.firebaseAuth.GetUser(ctx, uid)
	if err != nil {
		logger.Warn("Failed to read provider account %s: %v", uid, err)
		return entity.Identity{ID: uid}
	}
	return raw.Identity()
}
