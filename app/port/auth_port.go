package port

//go:generate mockgen -source=auth_port.go -destination=../mocks/mock_auth_port.go

import (
	"context"

	"github.com/Bast8313/soundora/app/domain"
)

// AuthUsecase defines the server-side authentication business logic.
type AuthUsecase interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthSession, error)
	UserFromToken(ctx context.Context, token domain.AccessToken) (*domain.Identity, error)
}

// IdentityGateway defines the boundary to the hosted identity provider.
// Implementations translate provider payloads and error shapes into the
// domain; nothing above this interface knows which provider is in use.
type IdentityGateway interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthSession, error)
	UserFromToken(ctx context.Context, token domain.AccessToken) (*domain.Identity, error)
}

// AuthClient is the slice of the storefront API the client-side session
// store depends on.
type AuthClient interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error)
	Register(ctx context.Context, reg domain.Registration) (*domain.AuthSession, error)
}
