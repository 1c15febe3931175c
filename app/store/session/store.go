// Package session holds the single client-side authority for "who is
// logged in". The store owns the Identity and its access token, persists
// both to durable client storage, and republishes every state transition
// to subscribers with replay-on-subscribe semantics.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Bast8313/soundora/app/domain"
	"github.com/Bast8313/soundora/app/port"
)

// Storage keys. The cart store uses the "cart." namespace; the two stores
// never touch the same key.
const (
	identityKey = "session.identity"
	tokenKey    = "session.token"
)

// Subscriber receives the current identity on subscribe and every
// subsequent transition, in the order transitions were applied. A nil
// identity means logged out. Callbacks run synchronously under the store
// lock and must not call back into the store.
type Subscriber func(identity *domain.Identity)

// Store is the session store. Construct it once with NewStore and share it
// by reference; all methods are safe for concurrent use, with a single
// logical writer applying each transition as one mutate-persist-publish
// step.
type Store struct {
	auth   port.AuthClient
	kv     port.KeyValueStore
	logger *slog.Logger

	mu          sync.Mutex
	identity    *domain.Identity
	token       domain.AccessToken
	subscribers map[int]Subscriber
	nextSubID   int
}

// NewStore creates the store and rehydrates any persisted session. A
// missing or corrupted payload yields the logged-out state; corruption is
// recovered silently and never surfaced.
func NewStore(auth port.AuthClient, kv port.KeyValueStore, logger *slog.Logger) *Store {
	s := &Store{
		auth:        auth,
		kv:          kv,
		logger:      logger.With("component", "session_store"),
		subscribers: make(map[int]Subscriber),
	}
	s.restore()
	return s
}

func (s *Store) restore() {
	rawIdentity, ok, err := s.kv.Get(identityKey)
	if err != nil || !ok {
		if err != nil {
			s.logger.Warn("could not read persisted identity", "error", err)
		}
		return
	}

	rawToken, ok, err := s.kv.Get(tokenKey)
	if err != nil || !ok {
		if err != nil {
			s.logger.Warn("could not read persisted token", "error", err)
		}
		// Identity without token is unusable; drop the leftover.
		s.discardPersisted()
		return
	}

	var identity domain.Identity
	if err := json.Unmarshal(rawIdentity, &identity); err != nil || identity.ID == "" {
		s.logger.Warn("persisted identity is corrupted, starting logged out", "error", err)
		s.discardPersisted()
		return
	}

	var token domain.AccessToken
	if err := json.Unmarshal(rawToken, &token); err != nil || token == "" {
		s.logger.Warn("persisted token is corrupted, starting logged out", "error", err)
		s.discardPersisted()
		return
	}

	s.identity = &identity
	s.token = token
	s.logger.Debug("session restored", "user_id", identity.ID)
}

func (s *Store) discardPersisted() {
	if err := s.kv.Delete(identityKey); err != nil {
		s.logger.Warn("could not clear persisted identity", "error", err)
	}
	if err := s.kv.Delete(tokenKey); err != nil {
		s.logger.Warn("could not clear persisted token", "error", err)
	}
}

// Login authenticates against the identity endpoint. Input is validated
// before any request is sent. On success the new session is persisted, the
// state mutates, and subscribers are notified synchronously; on any
// failure the current state is left untouched and a classified error is
// returned. Two overlapping calls race; the last response to arrive wins.
func (s *Store) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	creds := domain.Credentials{Email: email, Password: password}
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	authSession, err := s.auth.Login(ctx, creds)
	if err != nil {
		s.logger.Debug("login failed", "kind", domain.KindOf(err))
		return nil, err
	}

	return s.apply(authSession)
}

// Register creates an account and, like the original storefront,
// auto-authenticates on success with the same contract as Login.
func (s *Store) Register(ctx context.Context, email, password, firstName, lastName string) (*domain.Identity, error) {
	reg := domain.Registration{
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	authSession, err := s.auth.Register(ctx, reg)
	if err != nil {
		s.logger.Debug("registration failed", "kind", domain.KindOf(err))
		return nil, err
	}

	return s.apply(authSession)
}

// apply persists then publishes one state transition. Persisting first
// keeps a storage failure from leaving memory and disk disagreeing: on
// error the in-memory state is untouched and the error propagates.
func (s *Store) apply(authSession *domain.AuthSession) (*domain.Identity, error) {
	rawIdentity, err := json.Marshal(authSession.Identity)
	if err != nil {
		return nil, err
	}
	rawToken, err := json.Marshal(authSession.AccessToken)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Set(identityKey, rawIdentity); err != nil {
		return nil, err
	}
	if err := s.kv.Set(tokenKey, rawToken); err != nil {
		return nil, err
	}

	identity := authSession.Identity
	s.identity = &identity
	s.token = authSession.AccessToken
	s.publishLocked()

	s.logger.Info("session established", "user_id", identity.ID)

	snapshot := identity
	return &snapshot, nil
}

// Logout clears the persisted session and the in-memory state, then
// publishes the logged-out state. It never fails; storage errors are
// logged and the in-memory state is cleared regardless.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.discardPersisted()
	s.identity = nil
	s.token = ""
	s.publishLocked()

	s.logger.Info("session cleared")
}

// IsLoggedIn reports whether an identity is currently active.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity != nil
}

// CurrentIdentity returns a copy of the active identity, or nil when
// logged out.
func (s *Store) CurrentIdentity() *domain.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return nil
	}
	snapshot := *s.identity
	return &snapshot
}

// Token returns the current access token, empty when logged out. Callers
// forward it verbatim as a bearer credential; no refresh logic exists, so
// an expired token simply earns a 401 from the API.
func (s *Store) Token() domain.AccessToken {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Subscribe registers fn and immediately replays the current value to it,
// so an observer attaching after login renders the logged-in state without
// any fetch. The returned function unsubscribes; calling it more than once
// is harmless.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	fn(s.snapshotLocked())
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *Store) snapshotLocked() *domain.Identity {
	if s.identity == nil {
		return nil
	}
	snapshot := *s.identity
	return &snapshot
}

func (s *Store) publishLocked() {
	for _, fn := range s.subscribers {
		fn(s.snapshotLocked())
	}
}
