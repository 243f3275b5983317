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

type syncConfigRepo struct {
	db *sqlx.DB
}

// NewSyncConfigRepo creates a new PostgreSQL-backed SyncConfigRepository.
func NewSyncConfigRepo(db *sqlx.DB) port.SyncConfigRepository {
	return &syncConfigRepo{db: db}
}

func (r *syncConfigRepo) Get(ctx context.Context, category domain.FolderCategory) (*domain.SyncConfig, error) {
	var cfg domain.SyncConfig
	err := r.db.GetContext(ctx, &cfg,
		"SELECT * FROM sync_configs WHERE folder_category = $1", category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// First sync hasn't run yet; report the zero state.
			return &domain.SyncConfig{
				FolderCategory: category,
				LastSyncStatus: domain.SyncStatusNone,
			}, nil
		}
		return nil, fmt.Errorf("syncConfigRepo.Get: %w", err)
	}
	return &cfg, nil
}

func (r *syncConfigRepo) Update(ctx context.Context, cfg *domain.SyncConfig) error {
	query := `INSERT INTO sync_configs
		(folder_category, last_synced_at, last_sync_status, last_sync_error, files_synced_count)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (folder_category) DO UPDATE SET
			last_synced_at = EXCLUDED.last_synced_at,
			last_sync_status = EXCLUDED.last_sync_status,
			last_sync_error = EXCLUDED.last_sync_error,
			files_synced_count = EXCLUDED.files_synced_count`

	_, err := r.db.ExecContext(ctx, query,
		cfg.FolderCategory, cfg.LastSyncedAt, cfg.LastSyncStatus, cfg.LastSyncError, cfg.FilesSyncedCount)
	if err != nil {
		return fmt.Errorf("syncConfigRepo.Update: %w", err)
	}
	return nil
}
