package csv

import (
	"context"
	encsv "encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/motorph/payroll-go/internal/domain/auth"
)

// CredentialRepository reads operator credentials from a two-column file:
// username, bcrypt hash per row.
type CredentialRepository struct {
	filePath string
}

func NewCredentialRepository(filePath string) *CredentialRepository {
	return &CredentialRepository{filePath: filePath}
}

// GetPasswordHash implements auth.CredentialRepository.
func (r *CredentialRepository) GetPasswordHash(ctx context.Context, username string) (string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open credentials file: %w", err)
	}
	defer file.Close()

	reader := encsv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read credentials file: %w", err)
	}

	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		if strings.TrimSpace(row[0]) == username {
			return strings.TrimSpace(row[1]), nil
		}
	}

	return "", fmt.Errorf("user %s: %w", username, auth.ErrUserNotFound)
}
