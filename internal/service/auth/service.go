package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/motorph/payroll-go/internal/domain/auth"
)

type AuthServiceImpl struct {
	credentialRepo auth.CredentialRepository
}

func NewAuthService(credentialRepo auth.CredentialRepository) auth.AuthService {
	return &AuthServiceImpl{
		credentialRepo: credentialRepo,
	}
}

// Login implements auth.AuthService. Unknown users and wrong passwords
// collapse into the same error so the prompt does not leak which usernames
// exist.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) error {
	hash, err := s.credentialRepo.GetPasswordHash(ctx, username)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return auth.ErrInvalidCredentials
		}
		return fmt.Errorf("failed to read credentials: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return auth.ErrInvalidCredentials
	}

	return nil
}
