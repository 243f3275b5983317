package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"procura/internal/domain"
)

// FileIndexRepository persists the local cache of remote files.
type FileIndexRepository interface {
	// UpsertBatch inserts new records and refreshes existing ones keyed by
	// remote_id. Only name, mime_type, size_bytes and last_seen_at are
	// updated on conflict; processed state and record links are preserved.
	// Returns the number of rows written.
	UpsertBatch(ctx context.Context, files []domain.IndexedFile) (int, error)
	GetByRemoteID(ctx context.Context, remoteID string) (*domain.IndexedFile, error)
	List(ctx context.Context, category domain.FolderCategory, offset, limit int) ([]domain.IndexedFile, int, error)
	// MarkProcessed sets processed/processed_at and the purchase order link.
	MarkProcessed(ctx context.Context, remoteID string, purchaseOrderID uuid.UUID, at time.Time) error
	SetArchiveKey(ctx context.Context, remoteID, key string) error
}

// SyncConfigRepository persists per-category sync bookkeeping.
type SyncConfigRepository interface {
	Get(ctx context.Context, category domain.FolderCategory) (*domain.SyncConfig, error)
	// Update overwrites the single row for the config's category, creating
	// it if this is the first sync.
	Update(ctx context.Context, cfg *domain.SyncConfig) error
}

// SkuRepository persists canonical product codes and line-item links.
type SkuRepository interface {
	// FindByNames fetches existing SKUs for the supplier whose product name
	// is in names, in one query.
	FindByNames(ctx context.Context, supplierID uuid.UUID, names []string) ([]domain.SkuRecord, error)
	Create(ctx context.Context, sku *domain.SkuRecord) error
	LinkItem(ctx context.Context, itemID uuid.UUID, skuCode string) error
}

// SupplierRepository reads and updates the minimal supplier shape the
// pipeline needs.
type SupplierRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Supplier, error)
	UpdateShortCode(ctx context.Context, id uuid.UUID, shortCode string) error
}

// CredentialRepository reads the stored long-lived remote credential. The
// consent flow that writes it is outside this service.
type CredentialRepository interface {
	// GetRefreshToken returns domain.ErrNotConnected when no credential has
	// been stored yet.
	GetRefreshToken(ctx context.Context) (string, error)
}
