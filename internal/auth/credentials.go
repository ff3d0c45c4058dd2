package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

const userByEmailSQL = `SELECT id, password FROM users WHERE email = $1`

// CredentialVerifier verifies email/password credentials against the
// users table and opens a session on success. Password hashes are
// bcrypt; comparison failures and unknown emails both surface as the
// same mismatch kind so callers cannot probe which emails exist.
type CredentialVerifier struct {
	pool     *pgxpool.Pool
	sessions *SessionStore
}

// NewCredentialVerifier creates a verifier backed by the given pool and
// session store.
func NewCredentialVerifier(pool *pgxpool.Pool, sessions *SessionStore) *CredentialVerifier {
	return &CredentialVerifier{pool: pool, sessions: sessions}
}

// SignIn implements Verifier. Database errors other than a missing row
// are not authentication rejections and propagate untyped.
func (v *CredentialVerifier) SignIn(ctx context.Context, creds Credentials) (*Session, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, &Error{Kind: KindMissingCredentials}
	}

	var id, hash string
	err := v.pool.QueryRow(ctx, userByEmailSQL, creds.Email).Scan(&id, &hash)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, &Error{Kind: KindCredentialsMismatch, Err: err}
	case err != nil:
		return nil, fmt.Errorf("look up user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)); err != nil {
		return nil, &Error{Kind: KindCredentialsMismatch, Err: err}
	}

	sess := v.sessions.Open(id, creds.Email)
	return &sess, nil
}
