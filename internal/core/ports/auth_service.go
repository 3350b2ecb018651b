package ports

import (
	"context"

	"github.com/ucasl/reservas-web/internal/core/domain"
)

// LoginOutcome is what the login screen needs after a successful login.
type LoginOutcome struct {
	Session     domain.Session
	CookieValue string
	Redirect    string
}

// ResolvedSession is a session looked up from its cookie.
type ResolvedSession struct {
	SessionID string
	Session   domain.Session
	Token     string
}

type AuthService interface {
	Login(ctx context.Context, creds domain.Credentials) (*LoginOutcome, error)
	Resolve(ctx context.Context, cookieValue string) (*ResolvedSession, error)
	Logout(ctx context.Context, cookieValue string) error
}
