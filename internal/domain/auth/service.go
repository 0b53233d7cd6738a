package auth

import "context"

// AuthService verifies operator credentials before the payroll tooling is
// used.
type AuthService interface {
	// Login checks a username/password pair against the credential store.
	// Returns ErrInvalidCredentials when the pair does not match.
	Login(ctx context.Context, username, password string) error
}

// CredentialRepository defines access to stored operator credentials.
type CredentialRepository interface {
	// GetPasswordHash returns the bcrypt hash stored for the username, or
	// ErrUserNotFound.
	GetPasswordHash(ctx context.Context, username string) (string, error)
}
