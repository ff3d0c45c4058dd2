// Package auth handles credential sign-in: verifying email/password
// credentials against the user store, opening sessions, and translating
// typed authentication failures into user-facing messages. Expected
// rejections come back as messages; anything unanticipated propagates
// to the caller unchanged.
package auth

import (
	"context"
	"errors"
	"fmt"
)

// Kind discriminates categories of authentication rejection.
type Kind string

const (
	// KindCredentialsMismatch covers an unknown email or a wrong password.
	KindCredentialsMismatch Kind = "credentials_mismatch"
	// KindMissingCredentials covers a sign-in attempt with blank fields.
	KindMissingCredentials Kind = "missing_credentials"
)

// Error is a typed authentication failure raised by a Verifier. Only
// values of this family are translated to messages; other errors cross
// the boundary untouched.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("auth: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// Credentials is the bundle presented on one sign-in attempt.
type Credentials struct {
	Email    string
	Password string
}

// Verifier checks credentials and opens a session on success. A typed
// *Error signals an expected rejection; any other error is a system
// failure the verifier could not anticipate.
type Verifier interface {
	SignIn(ctx context.Context, creds Credentials) (*Session, error)
}

// Messages shown for expected sign-in rejections.
const (
	MsgInvalidCredentials = "Invalid credentials."
	MsgSignInFailed       = "Something went wrong."
)

// Authenticate runs one sign-in attempt and translates its outcome.
// A credentials mismatch maps to MsgInvalidCredentials and any other
// typed rejection to MsgSignInFailed, both returned as a message with a
// nil error. Errors outside the typed family are returned unchanged so
// a higher-level handler sees them. On success the opened session is
// returned with an empty message.
func Authenticate(ctx context.Context, v Verifier, creds Credentials) (*Session, string, error) {
	sess, err := v.SignIn(ctx, creds)
	if err == nil {
		return sess, "", nil
	}

	var authErr *Error
	if !errors.As(err, &authErr) {
		return nil, "", err
	}
	if authErr.Kind == KindCredentialsMismatch {
		return nil, MsgInvalidCredentials, nil
	}
	return nil, MsgSignInFailed, nil
}
