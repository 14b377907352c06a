package auth

import (
	"context"
	"errors"
	"log/slog"

	"selfcare/internal/domain"
)

// ErrMissingCredentials is returned before any network call when either
// field is empty. No other client-side format constraint applies.
var ErrMissingCredentials = errors.New("username and password are required")

// Service performs login and logout against the resolved tenant.
type Service struct {
	portal   domain.PortalClient
	sessions domain.SessionStore
	log      *slog.Logger
}

// New constructs an auth Service.
func New(portal domain.PortalClient, sessions domain.SessionStore, log *slog.Logger) *Service {
	return &Service{portal: portal, sessions: sessions, log: log}
}

// Login exchanges credentials for a token and persists it. The returned
// string is the server message, shown as a transient notification.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrMissingCredentials
	}

	token, message, err := s.portal.Login(ctx, username, password)
	if err != nil {
		return "", err
	}
	if err := s.sessions.SaveToken(token); err != nil {
		return "", err
	}
	s.log.Info("logged in", "user", username)
	return message, nil
}

// Logout removes the stored token. The tenant domain stays resolved.
func (s *Service) Logout() error {
	return s.sessions.ClearToken()
}

// Compile-time assertion that Service implements domain.AuthService.
var _ domain.AuthService = (*Service)(nil)
