package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dashboard/internal/session"
)

// ErrUserNotRegistered means the Google identity verified but no
// account exists for it in the procurement backend.
var ErrUserNotRegistered = errors.New("no account registered for this identity")

// AuthService owns the session lifecycle: exchange a Google ID token
// for a session at login, resolve sessions per request, tear them down
// at logout.
type AuthService interface {
	Login(ctx context.Context, token string) (*session.Session, error)
	Resolve(ctx context.Context, sessionID string) (*session.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type authService struct {
	gw         ProcurementGateway
	store      session.Store
	sessionTTL time.Duration
}

func NewAuthService(gw ProcurementGateway, store session.Store, sessionTTL time.Duration) AuthService {
	return &authService{gw: gw, store: store, sessionTTL: sessionTTL}
}

// Login verifies the token with the identity backend and opens a
// session carrying the resolved user and the token itself.
func (s *authService) Login(ctx context.Context, token string) (*session.Session, error) {
	result, err := s.gw.CheckUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to verify identity: %w", err)
	}
	if !result.Exists || result.UserData == nil {
		return nil, ErrUserNotRegistered
	}

	sess := session.New(token, *result.UserData, s.sessionTTL)
	if err := s.store.Save(ctx, sess, time.Until(sess.ExpiresAt)); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	return sess, nil
}

// Resolve loads a session by ID. Expired sessions are torn down and
// reported as not found.
func (s *authService) Resolve(ctx context.Context, sessionID string) (*session.Session, error) {
	sess, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Expired() {
		_ = s.store.Delete(ctx, sessionID)
		return nil, session.ErrNotFound
	}
	return sess, nil
}

// Logout clears the session; the Google credential itself is revoked
// client-side.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
