package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/motorph/payroll-go/internal/domain/auth"
)

type stubCredentialRepo struct {
	hashes map[string]string
	err    error
}

func (s *stubCredentialRepo) GetPasswordHash(ctx context.Context, username string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	hash, ok := s.hashes[username]
	if !ok {
		return "", auth.ErrUserNotFound
	}
	return hash, nil
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAuthService(&stubCredentialRepo{
		hashes: map[string]string{"admin": string(hash)},
	})

	assert.NoError(t, svc.Login(context.Background(), "admin", "s3cret"))
	assert.ErrorIs(t, svc.Login(context.Background(), "admin", "wrong"), auth.ErrInvalidCredentials)
	assert.ErrorIs(t, svc.Login(context.Background(), "ghost", "s3cret"), auth.ErrInvalidCredentials)
}

func TestLogin_RepositoryFailure(t *testing.T) {
	readErr := errors.New("disk on fire")
	svc := NewAuthService(&stubCredentialRepo{err: readErr})

	err := svc.Login(context.Background(), "admin", "s3cret")
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}
