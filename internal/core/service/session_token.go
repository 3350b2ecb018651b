package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ucasl/reservas-web/internal/core/domain"
)

// SessionTokens signs and verifies the session cookie value: an HS256 JWT
// whose jti is the session id.
type SessionTokens struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionTokens(secret string, ttl time.Duration) *SessionTokens {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &SessionTokens{secret: []byte(secret), ttl: ttl}
}

// TTL is the lifetime of issued tokens.
func (t *SessionTokens) TTL() time.Duration { return t.ttl }

func (t *SessionTokens) Sign(sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse returns the session id carried by a valid, unexpired token.
func (t *SessionTokens) Parse(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil || !tkn.Valid || claims.ID == "" {
		return "", domain.ErrInvalidSession
	}
	return claims.ID, nil
}
