// Package auth owns the client-side session lifecycle: it is the only
// writer of the credential store (besides the gateway's 401 wipe) and of
// the identity manager.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/akodina/shopfront/internal/client/gateway"
	"github.com/akodina/shopfront/internal/client/session"
	"github.com/akodina/shopfront/internal/client/storage"
	"github.com/akodina/shopfront/internal/validation"
	"github.com/akodina/shopfront/pkg/api"
)

// Service wires the gateway's auth endpoints to the credential store and
// the identity manager.
type Service struct {
	gateway  *gateway.Client
	creds    storage.CredentialStorage
	sessions *session.Manager
	logger   *slog.Logger
}

// NewService creates an auth service.
func NewService(gw *gateway.Client, creds storage.CredentialStorage, sessions *session.Manager, logger *slog.Logger) *Service {
	return &Service{
		gateway:  gw,
		creds:    creds,
		sessions: sessions,
		logger:   logger,
	}
}

// Login authenticates, persists both tokens and flips the identity.
func (s *Service) Login(ctx context.Context, email, password string) (*session.Identity, error) {
	resp, err := s.gateway.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	return s.establishSession(ctx, resp)
}

// Register validates locally, creates the account and establishes the
// session with the returned tokens, exactly as a login would.
func (s *Service) Register(ctx context.Context, req api.RegisterRequest) (*session.Identity, error) {
	if err := validation.ValidateRegistration(req); err != nil {
		return nil, err
	}

	if req.Role == "" {
		req.Role = "USER"
	}

	resp, err := s.gateway.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	return s.establishSession(ctx, resp)
}

// Logout clears the stored credentials and the identity. There is no
// server-side call: the backend holds no session state to invalidate.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.creds.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	s.sessions.Set(nil)
	return nil
}

// Restore rebuilds the identity from a persisted credential at startup.
// If no credential exists this is a no-op. If the profile fetch fails the
// credential is wiped rather than kept around half-valid.
func (s *Service) Restore(ctx context.Context) error {
	if _, err := s.creds.Get(ctx); err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			return nil
		}
		return fmt.Errorf("failed to read stored credentials: %w", err)
	}

	user, err := s.gateway.GetProfile(ctx)
	if err != nil {
		// A 401 already wiped the store inside the gateway; wipe for
		// every other failure too so the next start begins clean.
		s.logger.Warn("failed to restore session, clearing credentials", "error", err)
		if clearErr := s.creds.Clear(ctx); clearErr != nil {
			return fmt.Errorf("failed to clear credentials: %w", clearErr)
		}
		return nil
	}

	s.sessions.Set(session.IdentityFromUser(*user))
	return nil
}

// UpdateProfile saves profile changes and refreshes the identity.
func (s *Service) UpdateProfile(ctx context.Context, req api.ProfileUpdateRequest) (*session.Identity, error) {
	user, err := s.gateway.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	identity := session.IdentityFromUser(*user)
	s.sessions.Set(identity)
	return identity, nil
}

func (s *Service) establishSession(ctx context.Context, resp *api.AuthResponse) (*session.Identity, error) {
	creds := &storage.Credentials{
		AccessToken:  resp.Access,
		RefreshToken: resp.Refresh,
	}
	if err := s.creds.Set(ctx, creds); err != nil {
		return nil, fmt.Errorf("failed to save credentials: %w", err)
	}

	identity := session.IdentityFromUser(resp.User)
	s.sessions.Set(identity)

	s.logger.Info("session established", "user_id", identity.ID, "email", identity.Email)
	return identity, nil
}
