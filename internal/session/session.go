// Package session holds the authenticated browser session: the Google
// ID token accepted by the backend plus the resolved user profile.
// Sessions are explicit values resolved per request and passed down to
// services; nothing here is ambient global state.
package session

import (
	"context"
	"errors"
	"time"

	"dashboard/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a session ID is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Session is one logged-in browser. Token is forwarded as the bearer
// credential on every upstream call made on this session's behalf.
type Session struct {
	ID        string     `json:"id"`
	Token     string     `json:"token"`
	User      model.User `json:"user"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

// Expired reports whether the session has outlived its credential.
func (s *Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Store persists sessions for their lifetime.
type Store interface {
	Save(ctx context.Context, sess *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// New builds a session for a verified token. The lifetime is the
// configured TTL, shortened to the token's own expiry when the token
// carries one. A session must never outlive its credential.
func New(token string, user model.User, ttl time.Duration) *Session {
	now := time.Now()
	expiresAt := now.Add(ttl)
	if tokenExp, ok := TokenExpiry(token); ok && tokenExp.Before(expiresAt) {
		expiresAt = tokenExp
	}
	return &Session{
		ID:        uuid.NewString(),
		Token:     token,
		User:      user,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}
}

// TokenExpiry reads the exp claim from a JWT without verifying its
// signature. Verification is the identity backend's job; this only
// bounds the local session lifetime.
func TokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
