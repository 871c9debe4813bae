package session

import (
	"context"
	"testing"
	"time"

	"dashboard/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestNewSessionUsesConfiguredTTL(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user"})

	sess := New(token, model.User{UserID: 1}, time.Hour)
	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, token, sess.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, 5*time.Second)
	assert.False(t, sess.Expired())
}

func TestNewSessionCappedByTokenExpiry(t *testing.T) {
	tokenExp := time.Now().Add(10 * time.Minute)
	token := signedToken(t, jwt.MapClaims{"exp": tokenExp.Unix()})

	sess := New(token, model.User{UserID: 1}, 24*time.Hour)
	assert.WithinDuration(t, tokenExp, sess.ExpiresAt, time.Second,
		"session must not outlive its credential")
}

func TestNewSessionIgnoresLaterTokenExpiry(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"exp": time.Now().Add(48 * time.Hour).Unix()})

	sess := New(token, model.User{UserID: 1}, time.Hour)
	assert.WithinDuration(t, time.Now().Add(time.Hour), sess.ExpiresAt, 5*time.Second)
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"exp": exp.Unix()})

	got, ok := TokenExpiry(token)
	require.True(t, ok)
	assert.True(t, got.Equal(exp))

	_, ok = TokenExpiry(signedToken(t, jwt.MapClaims{"sub": "no-exp"}))
	assert.False(t, ok)

	_, ok = TokenExpiry("not-a-jwt")
	assert.False(t, ok)
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := New(signedToken(t, jwt.MapClaims{"sub": "u"}), model.User{UserID: 5, Role: model.RoleFinance}, time.Hour)
	require.NoError(t, store.Save(ctx, sess, time.Hour))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, int64(5), got.User.UserID)

	require.NoError(t, store.Delete(ctx, sess.ID))
	_, err = store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUnknownID(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := New(signedToken(t, jwt.MapClaims{"sub": "u"}), model.User{UserID: 1}, time.Hour)
	require.NoError(t, store.Save(ctx, sess, -time.Minute))

	_, err := store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound, "expired entries read as not found")
}

func TestMemoryStoreReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := New(signedToken(t, jwt.MapClaims{"sub": "u"}), model.User{UserID: 1}, time.Hour)
	require.NoError(t, store.Save(ctx, sess, time.Hour))

	first, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	first.User.UserID = 99

	second, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.User.UserID, "mutating a returned session must not affect the store")
}
