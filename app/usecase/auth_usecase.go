package usecase

import (
	"context"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/port"
)

// AuthUseCase implements server-side authentication business logic. All
// credential checking happens at the identity provider; this layer only
// validates input shape and delegates.
type AuthUseCase struct {
	identityGateway port.IdentityGateway
}

// NewAuthUseCase creates a new AuthUseCase instance.
func NewAuthUseCase(identityGateway port.IdentityGateway) *AuthUseCase {
	return &AuthUseCase{
		identityGateway: identityGateway,
	}
}

var _ port.AuthUsecase = (*AuthUseCase)(nil)

// Login validates the credentials and exchanges them for a session.
func (uc *AuthUseCase) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	return uc.identityGateway.Login(ctx, creds)
}

// Register validates the payload and creates an account. The provider
// signs the new user in, so the returned session is immediately usable.
func (uc *AuthUseCase) Register(ctx context.Context, reg domain.Registration) (*domain.AuthSession, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return uc.identityGateway.Register(ctx, reg)
}

// UserFromToken resolves a bearer token to its identity. Used by the auth
// middleware on protected endpoints.
func (uc *AuthUseCase) UserFromToken(ctx context.Context, token domain.AccessToken) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.NewAuthError(domain.ErrorKindAuthentication, "missing bearer token", domain.ErrUnauthorized)
	}
	return uc.identityGateway.UserFromToken(ctx, token)
}
