package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_OpenAndGet(t *testing.T) {
	store := NewSessionStore(time.Hour)

	sess := store.Open("u1", "user@example.com")
	require.NotEmpty(t, sess.Token)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, "user@example.com", sess.Email)

	got, ok := store.Get(sess.Token)
	require.True(t, ok)
	assert.Equal(t, sess, got)
}

func TestSessionStore_UniqueTokens(t *testing.T) {
	store := NewSessionStore(time.Hour)

	a := store.Open("u1", "a@example.com")
	b := store.Open("u1", "a@example.com")
	assert.NotEqual(t, a.Token, b.Token)
}

func TestSessionStore_GetUnknownToken(t *testing.T) {
	store := NewSessionStore(time.Hour)

	_, ok := store.Get("nope")
	assert.False(t, ok)
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore(time.Minute)
	sess := store.Open("u1", "user@example.com")

	// Advance the store's clock past the TTL.
	store.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, ok := store.Get(sess.Token)
	assert.False(t, ok, "expired session must not resolve")

	// Expired entries are also swept when new sessions open.
	store.Open("u2", "other@example.com")
	store.mu.Lock()
	_, still := store.byToken[sess.Token]
	store.mu.Unlock()
	assert.False(t, still, "expired session must be swept")
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore(time.Hour)
	sess := store.Open("u1", "user@example.com")

	store.Delete(sess.Token)
	_, ok := store.Get(sess.Token)
	assert.False(t, ok)

	store.Delete("unknown") // no-op
}
