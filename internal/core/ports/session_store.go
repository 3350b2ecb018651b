package ports

import (
	"context"
	"time"

	"github.com/ucasl/reservas-web/internal/core/domain"
)

// SessionStore persists session records by session id. Load returns
// domain.ErrSessionNotFound for unknown or expired ids.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, rec domain.SessionRecord, ttl time.Duration) error
	Load(ctx context.Context, sessionID string) (*domain.SessionRecord, error)
	Delete(ctx context.Context, sessionID string) error
	Ping(ctx context.Context) error
}
