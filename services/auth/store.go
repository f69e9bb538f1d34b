// Package auth holds the session store: current user identity, token
// and role checks consumed at the routing layer.
package auth

import (
	"context"
	"sync"

	"soldy/api"
	"soldy/models"
	"soldy/storage"
	"soldy/utils"

	"go.uber.org/zap"
)

// Store owns the current user identity and session token. The token
// lands in durable storage when the user asked to be remembered and in
// session storage otherwise.
type Store struct {
	mu      sync.Mutex
	api     api.Client
	durable storage.Store
	session storage.Store
	clock   utils.Clock
	logger  *zap.Logger

	user    *models.User
	token   string
	loading bool
}

// NewStore builds an auth store. Any token already in durable storage
// is picked up immediately; call CheckAuth to resolve it to a user.
func NewStore(client api.Client, durable, session storage.Store, clock utils.Clock, logger *zap.Logger) *Store {
	s := &Store{api: client, durable: durable, session: session, clock: clock, logger: logger}
	if token, ok, err := durable.Get(storage.AuthTokenKey); err == nil && ok {
		s.token = token
		client.SetToken(token)
	}
	return s
}

// Login authenticates and installs the session. With rememberMe the
// token survives restarts (durable storage); otherwise it lives only
// for this session.
func (s *Store) Login(ctx context.Context, email, password string, rememberMe bool) error {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		s.logger.Error("login failed", zap.Error(err))
		return err
	}
	s.install(resp, rememberMe)
	return nil
}

// Register creates an account and installs the session. Registration
// always remembers the token.
func (s *Store) Register(ctx context.Context, data models.RegisterData) (models.User, error) {
	s.setLoading(true)
	defer s.setLoading(false)

	resp, err := s.api.Register(ctx, data)
	if err != nil {
		s.logger.Error("registration failed", zap.Error(err))
		return models.User{}, err
	}
	s.install(resp, true)
	return resp.User, nil
}

func (s *Store) install(resp models.AuthResponse, remember bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := resp.User
	s.user = &user
	s.token = resp.Token
	s.api.SetToken(resp.Token)

	target := s.session
	if remember {
		target = s.durable
	}
	if err := target.Set(storage.AuthTokenKey, resp.Token); err != nil {
		s.logger.Warn("failed to persist auth token", zap.Error(err))
	}
}

// Logout clears the session and removes the token from both stores.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""
	s.api.SetToken("")
	if err := s.durable.Delete(storage.AuthTokenKey); err != nil {
		s.logger.Warn("failed to clear persisted auth token", zap.Error(err))
	}
	if err := s.session.Delete(storage.AuthTokenKey); err != nil {
		s.logger.Warn("failed to clear session auth token", zap.Error(err))
	}
}

// CheckAuth restores a session from a stored token. A locally expired
// JWT is discarded without a network call; otherwise the backend
// resolves the token to a user. A missing token is not an error.
func (s *Store) CheckAuth(ctx context.Context) error {
	token, ok, err := s.durable.Get(storage.AuthTokenKey)
	if err != nil || !ok {
		token, ok, err = s.session.Get(storage.AuthTokenKey)
	}
	if err != nil || !ok {
		return nil
	}

	if utils.TokenExpired(token, s.clock.Now()) {
		s.Logout()
		return nil
	}

	s.mu.Lock()
	s.token = token
	s.api.SetToken(token)
	s.mu.Unlock()

	user, err := s.api.Me(ctx)
	if err != nil {
		// Transient failure: keep the stored token so a later
		// CheckAuth can retry, but stay unauthenticated for now.
		s.logger.Warn("failed to resolve stored token", zap.Error(err))
		s.mu.Lock()
		s.user = nil
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return nil
}

// ChangeRole updates the current user's role in place. No-op when
// signed out.
func (s *Store) ChangeRole(role models.UserRole) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		s.user.Role = role
	}
}

// User returns a copy of the current user, if signed in.
func (s *Store) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Token returns the current session token.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated reports whether both a token and a resolved user are
// present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.user != nil
}

// IsLoading reports whether a login or registration is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *Store) hasRole(role models.UserRole) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.user.Role == role
}

func (s *Store) IsUser() bool    { return s.hasRole(models.RoleUser) }
func (s *Store) IsBuyer() bool   { return s.hasRole(models.RoleBuyer) }
func (s *Store) IsManager() bool { return s.hasRole(models.RoleManager) }
func (s *Store) IsAdmin() bool   { return s.hasRole(models.RoleAdmin) }
