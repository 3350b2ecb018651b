package ports

import (
	"context"

	"github.com/ucasl/reservas-web/internal/core/domain"
)

// LoginResult is the backend's answer to a successful login.
type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Backend is the external reservation REST API.
//
// Every call returns *domain.BackendError on failure. Calls other than Login
// authenticate with the token carried by ctx (see WithAccessToken).
type Backend interface {
	Login(ctx context.Context, creds domain.Credentials) (*LoginResult, error)
	ListSpaces(ctx context.Context) ([]domain.AcademicSpace, error)
	ListInstructors(ctx context.Context) ([]domain.Instructor, error)
	GetReservation(ctx context.Context, id int64) (*domain.Reservation, error)
	CreateReservation(ctx context.Context, r domain.Reservation) (*domain.Reservation, error)
	UpdateReservation(ctx context.Context, id int64, r domain.Reservation) (*domain.Reservation, error)
}

type accessTokenKey struct{}

// WithAccessToken returns a context that carries the backend token of the
// current session.
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessToken returns the token stored by WithAccessToken, or "".
func AccessToken(ctx context.Context) string {
	tok, _ := ctx.Value(accessTokenKey{}).(string)
	return tok
}
