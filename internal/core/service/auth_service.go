package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ucasl/reservas-web/internal/core/domain"
	"github.com/ucasl/reservas-web/internal/core/ports"
	"github.com/ucasl/reservas-web/internal/pkg/sessionid"
)

// AuthService implements login, session lookup and logout on top of the
// backend's login endpoint and a session store.
type AuthService struct {
	backend ports.Backend
	store   ports.SessionStore
	tokens  *SessionTokens
	log     zerolog.Logger
}

func NewAuthService(backend ports.Backend, store ports.SessionStore, tokens *SessionTokens, log zerolog.Logger) *AuthService {
	return &AuthService{backend: backend, store: store, tokens: tokens, log: log}
}

// Login authenticates against the backend and opens a session. Every backend
// rejection is reported as domain.ErrInvalidCredentials; there is no retry.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*ports.LoginOutcome, error) {
	if creds.Identifier == "" || creds.Secret == "" {
		return nil, domain.ErrInvalidCredentials
	}

	res, err := s.backend.Login(ctx, creds)
	if err != nil {
		s.log.Warn().Err(err).Msg("backend rejected login")
		return nil, fmt.Errorf("login: %w: %w", domain.ErrInvalidCredentials, err)
	}
	if res == nil || res.Token == "" || res.User == nil {
		s.log.Warn().Msg("backend login response without token or user")
		return nil, domain.ErrInvalidCredentials
	}

	sid, err := sessionid.New()
	if err != nil {
		return nil, fmt.Errorf("login: new session id: %w", err)
	}

	rec := domain.SessionRecord{
		Token:     res.Token,
		User:      *res.User,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Save(ctx, sid, rec, s.tokens.TTL()); err != nil {
		return nil, fmt.Errorf("login: save session: %w", err)
	}

	cookie, err := s.tokens.Sign(sid)
	if err != nil {
		_ = s.store.Delete(ctx, sid)
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Int64("user_id", rec.User.ID).Str("role", rec.User.Role).Msg("user logged in")

	return &ports.LoginOutcome{
		Session:     rec.Session(),
		CookieValue: cookie,
		Redirect:    domain.LandingPath,
	}, nil
}

// Resolve maps a cookie value to its session and backend token.
func (s *AuthService) Resolve(ctx context.Context, cookieValue string) (*ports.ResolvedSession, error) {
	if cookieValue == "" {
		return nil, domain.ErrSessionNotFound
	}
	sid, err := s.tokens.Parse(cookieValue)
	if err != nil {
		return nil, err
	}
	rec, err := s.store.Load(ctx, sid)
	if err != nil {
		return nil, err
	}
	return &ports.ResolvedSession{
		SessionID: sid,
		Session:   rec.Session(),
		Token:     rec.Token,
	}, nil
}

// Logout drops the session behind cookieValue. Unknown or invalid cookies
// are not an error.
func (s *AuthService) Logout(ctx context.Context, cookieValue string) error {
	sid, err := s.tokens.Parse(cookieValue)
	if err != nil {
		return nil
	}
	if err := s.store.Delete(ctx, sid); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
