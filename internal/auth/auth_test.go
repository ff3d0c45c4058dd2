package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVerifier returns a scripted outcome for every sign-in attempt.
type fakeVerifier struct {
	sess *Session
	err  error
}

func (f *fakeVerifier) SignIn(ctx context.Context, creds Credentials) (*Session, error) {
	return f.sess, f.err
}

func TestAuthenticate_Success(t *testing.T) {
	want := &Session{Token: "tok", UserID: "u1", Email: "user@example.com"}
	v := &fakeVerifier{sess: want}

	sess, msg, err := Authenticate(context.Background(), v, Credentials{Email: "user@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Empty(t, msg)
	assert.Equal(t, want, sess)
}

func TestAuthenticate_CredentialsMismatch(t *testing.T) {
	v := &fakeVerifier{err: &Error{Kind: KindCredentialsMismatch}}

	sess, msg, err := Authenticate(context.Background(), v, Credentials{Email: "user@example.com", Password: "wrong"})

	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Equal(t, MsgInvalidCredentials, msg)
}

func TestAuthenticate_OtherTypedFailure(t *testing.T) {
	v := &fakeVerifier{err: &Error{Kind: KindMissingCredentials}}

	sess, msg, err := Authenticate(context.Background(), v, Credentials{})

	require.NoError(t, err)
	assert.Nil(t, sess)
	assert.Equal(t, MsgSignInFailed, msg)
}

func TestAuthenticate_WrappedTypedFailure(t *testing.T) {
	// Typed failures survive fmt.Errorf wrapping on the way up.
	wrapped := fmt.Errorf("sign-in: %w", &Error{Kind: KindCredentialsMismatch})
	v := &fakeVerifier{err: wrapped}

	_, msg, err := Authenticate(context.Background(), v, Credentials{})

	require.NoError(t, err)
	assert.Equal(t, MsgInvalidCredentials, msg)
}

func TestAuthenticate_UnexpectedErrorPropagates(t *testing.T) {
	boom := errors.New("database is down")
	v := &fakeVerifier{err: boom}

	sess, msg, err := Authenticate(context.Background(), v, Credentials{Email: "user@example.com", Password: "pw"})

	assert.Nil(t, sess)
	assert.Empty(t, msg)
	assert.Same(t, boom, err, "non-typed errors must re-raise unchanged")
}

func TestError_Reporting(t *testing.T) {
	inner := errors.New("hash mismatch")
	err := &Error{Kind: KindCredentialsMismatch, Err: inner}

	assert.Contains(t, err.Error(), string(KindCredentialsMismatch))
	assert.Same(t, inner, errors.Unwrap(err))

	var authErr *Error
	assert.True(t, errors.As(fmt.Errorf("wrap: %w", err), &authErr))
}
