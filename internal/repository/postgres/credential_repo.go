package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"procura/internal/domain"
	"procura/internal/port"
)

const driveCredentialProvider = "google_drive"

type credentialRepo struct {
	db *sqlx.DB
}

// NewCredentialRepo creates a new PostgreSQL-backed CredentialRepository.
// The row it reads is written by the external OAuth consent flow.
func NewCredentialRepo(db *sqlx.DB) port.CredentialRepository {
	return &credentialRepo{db: db}
}

func (r *credentialRepo) GetRefreshToken(ctx context.Context) (string, error) {
	var token string
	err := r.db.GetContext(ctx, &token,
		"SELECT refresh_token FROM oauth_credentials WHERE provider = $1", driveCredentialProvider)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotConnected
		}
		return "", fmt.Errorf("credentialRepo.GetRefreshToken: %w", err)
	}
	if token == "" {
		return "", domain.ErrNotConnected
	}
	return token, nil
}
