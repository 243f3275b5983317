package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"procura/internal/domain"
	"procura/internal/port"
)

type fileIndexRepo struct {
	db *sqlx.DB
}

// NewFileIndexRepo creates a new PostgreSQL-backed FileIndexRepository.
func NewFileIndexRepo(db *sqlx.DB) port.FileIndexRepository {
	return &fileIndexRepo{db: db}
}

func (r *fileIndexRepo) UpsertBatch(ctx context.Context, files []domain.IndexedFile) (int, error) {
	if len(files) == 0 {
		return 0, nil
	}

	// Conflict on remote_id only refreshes the observation fields; processed
	// state and record links are never touched by sync.
	query := `INSERT INTO file_index
		(remote_id, name, folder_category, folder_watermark, mime_type, size_bytes, last_seen_at, created_at)
		VALUES (:remote_id, :name, :folder_category, :folder_watermark, :mime_type, :size_bytes, :last_seen_at, :created_at)
		ON CONFLICT (remote_id) DO UPDATE SET
			name = EXCLUDED.name,
			mime_type = EXCLUDED.mime_type,
			size_bytes = EXCLUDED.size_bytes,
			last_seen_at = EXCLUDED.last_seen_at`

	now := time.Now().UTC()
	rows := make([]map[string]interface{}, 0, len(files))
	for _, f := range files {
		rows = append(rows, map[string]interface{}{
			"remote_id":        f.RemoteID,
			"name":             f.Name,
			"folder_category":  f.FolderCategory,
			"folder_watermark": f.FolderWatermark,
			"mime_type":        f.MimeType,
			"size_bytes":       f.SizeBytes,
			"last_seen_at":     f.LastSeenAt,
			"created_at":       now,
		})
	}

	if _, err := r.db.NamedExecContext(ctx, query, rows); err != nil {
		return 0, fmt.Errorf("fileIndexRepo.UpsertBatch: %w", err)
	}
	return len(files), nil
}

func (r *fileIndexRepo) GetByRemoteID(ctx context.Context, remoteID string) (*domain.IndexedFile, error) {
	var file domain.IndexedFile
	err := r.db.GetContext(ctx, &file,
		"SELECT * FROM file_index WHERE remote_id = $1", remoteID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fileIndexRepo.GetByRemoteID: %w", err)
	}
	return &file, nil
}

func (r *fileIndexRepo) List(ctx context.Context, category domain.FolderCategory, offset, limit int) ([]domain.IndexedFile, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM file_index WHERE folder_category = $1", category)
	if err != nil {
		return nil, 0, fmt.Errorf("fileIndexRepo.List count: %w", err)
	}

	var files []domain.IndexedFile
	err = r.db.SelectContext(ctx, &files,
		`SELECT * FROM file_index
		 WHERE folder_category = $1
		 ORDER BY folder_watermark DESC, name ASC LIMIT $2 OFFSET $3`,
		category, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("fileIndexRepo.List: %w", err)
	}
	return files, total, nil
}

func (r *fileIndexRepo) MarkProcessed(ctx context.Context, remoteID string, purchaseOrderID uuid.UUID, at time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE file_index
		 SET processed = TRUE, processed_at = $1, purchase_order_id = $2
		 WHERE remote_id = $3`,
		at, purchaseOrderID, remoteID)
	if err != nil {
		return fmt.Errorf("fileIndexRepo.MarkProcessed: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *fileIndexRepo) SetArchiveKey(ctx context.Context, remoteID, key string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE file_index SET archive_key = $1 WHERE remote_id = $2", key, remoteID)
	if err != nil {
		return fmt.Errorf("fileIndexRepo.SetArchiveKey: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
