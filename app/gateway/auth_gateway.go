package gateway

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/driver/supabase"
	"github.com/Bast8313/soundora/app/port"
)

// GoTrueClient is the slice of the Supabase driver the gateway consumes.
type GoTrueClient interface {
	SignInWithPassword(ctx context.Context, email, password string) (*supabase.Session, error)
	SignUp(ctx context.Context, email, password string, metadata map[string]string) (*supabase.Session, error)
	GetUser(ctx context.Context, accessToken string) (*supabase.User, error)
}

// AuthGateway implements port.IdentityGateway over the Supabase GoTrue
// API. It acts as an anti-corruption layer: provider payloads and error
// shapes never leak past this package.
type AuthGateway struct {
	client GoTrueClient
	logger *slog.Logger
}

// NewAuthGateway creates a new AuthGateway instance.
func NewAuthGateway(client GoTrueClient, logger *slog.Logger) *AuthGateway {
	return &AuthGateway{
		client: client,
		logger: logger.With("component", "auth_gateway"),
	}
}

var _ port.IdentityGateway = (*AuthGateway)(nil)

// Login exchanges credentials for a session.
func (g *AuthGateway) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	session, err := g.client.SignInWithPassword(ctx, creds.Email, creds.Password)
	if err != nil {
		return nil, g.classify("login", err)
	}

	authSession, err := toAuthSession(session)
	if err != nil {
		return nil, domain.NewAuthError(domain.ErrorKindUnknown, "malformed identity provider response", err)
	}

	g.logger.Info("login succeeded", "user_id", authSession.Identity.ID)
	return authSession, nil
}

// Register creates an account; the provider signs the user in as part of
// the same call.
func (g *AuthGateway) Register(ctx context.Context, reg domain.Registration) (*domain.AuthSession, error) {
	metadata := map[string]string{}
	if reg.FirstName != "" {
		metadata["first_name"] = reg.FirstName
	}
	if reg.LastName != "" {
		metadata["last_name"] = reg.LastName
	}

	session, err := g.client.SignUp(ctx, reg.Email, reg.Password, metadata)
	if err != nil {
		return nil, g.classify("register", err)
	}

	authSession, err := toAuthSession(session)
	if err != nil {
		return nil, domain.NewAuthError(domain.ErrorKindUnknown, "malformed identity provider response", err)
	}

	g.logger.Info("registration succeeded", "user_id", authSession.Identity.ID)
	return authSession, nil
}

// UserFromToken resolves a bearer token into its identity.
func (g *AuthGateway) UserFromToken(ctx context.Context, token domain.AccessToken) (*domain.Identity, error) {
	user, err := g.client.GetUser(ctx, string(token))
	if err != nil {
		return nil, g.classify("token validation", err)
	}

	identity := toIdentity(user)
	return &identity, nil
}

// classify maps driver failures onto the storefront taxonomy. State is
// never mutated on any of these paths.
func (g *AuthGateway) classify(op string, err error) error {
	switch {
	case supabase.IsInvalidCredentials(err):
		g.logger.Debug(op+" rejected", "error", err)
		return domain.NewAuthError(domain.ErrorKindAuthentication, "invalid credentials", domain.ErrInvalidCredentials)
	case supabase.IsUserExists(err):
		g.logger.Debug(op+" rejected", "error", err)
		return domain.NewAuthError(domain.ErrorKindAuthentication, "an account with this email already exists", domain.ErrUserAlreadyExists)
	case isTransportError(err):
		g.logger.Warn(op+" could not reach identity provider", "error", err)
		return domain.NewAuthError(domain.ErrorKindNetwork, "could not reach the identity provider", err)
	default:
		g.logger.Error(op+" failed", "error", err)
		return domain.NewAuthError(domain.ErrorKindUnknown, "identity provider request failed", err)
	}
}

func isTransportError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func toAuthSession(session *supabase.Session) (*domain.AuthSession, error) {
	if session.AccessToken == "" {
		return nil, errors.New("response carries no access token")
	}
	if session.User.ID == "" {
		return nil, errors.New("response carries no user")
	}

	return &domain.AuthSession{
		Identity:    toIdentity(&session.User),
		AccessToken: domain.AccessToken(session.AccessToken),
	}, nil
}

func toIdentity(user *supabase.User) domain.Identity {
	return domain.Identity{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.UserMetadata["first_name"],
		LastName:  user.UserMetadata["last_name"],
	}
}
