package csv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorph/payroll-go/internal/domain/auth"
)

func TestCredentialRepository_GetPasswordHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "login_credentials.csv")
	require.NoError(t, os.WriteFile(path, []byte(
		"admin,$2a$10$abcdefghijklmnopqrstuv\nclerk , $2a$10$zyxwvutsrqponmlkjihgfe\nbroken-row\n",
	), 0o644))

	repo := NewCredentialRepository(path)

	hash, err := repo.GetPasswordHash(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$abcdefghijklmnopqrstuv", hash)

	hash, err = repo.GetPasswordHash(context.Background(), "clerk")
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$zyxwvutsrqponmlkjihgfe", hash)

	_, err = repo.GetPasswordHash(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestCredentialRepository_MissingFile(t *testing.T) {
	repo := NewCredentialRepository(filepath.Join(t.TempDir(), "absent.csv"))
	_, err := repo.GetPasswordHash(context.Background(), "admin")
	require.Error(t, err)
}
