package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is an established sign-in, identified by an opaque token the
// web layer carries in a cookie.
type Session struct {
	Token     string
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// SessionStore holds active sessions in memory with a fixed TTL.
// Expired entries are dropped lazily on access and swept on Open.
type SessionStore struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	byToken map[string]Session
}

// NewSessionStore creates a store whose sessions live for ttl.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:     ttl,
		now:     time.Now,
		byToken: make(map[string]Session),
	}
}

// Open issues a fresh session for the user and returns it.
func (s *SessionStore) Open(userID, email string) Session {
	sess := Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		Email:     email,
		ExpiresAt: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked()
	s.byToken[sess.Token] = sess
	return sess
}

// Get returns the session for a token, if it exists and has not
// expired. Expired sessions are removed on lookup.
func (s *SessionStore) Get(token string) (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.byToken[token]
	if !ok {
		return Session{}, false
	}
	if s.now().After(sess.ExpiresAt) {
		delete(s.byToken, token)
		return Session{}, false
	}
	return sess, true
}

// Delete closes the session for a token. Deleting an unknown token is a
// no-op.
func (s *SessionStore) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byToken, token)
}

// sweepLocked drops every expired session. Callers hold s.mu.
func (s *SessionStore) sweepLocked() {
	now := s.now()
	for token, sess := range s.byToken {
		if now.After(sess.ExpiresAt) {
			delete(s.byToken, token)
		}
	}
}
