package port

import (
	"context"

	"procura/internal/domain"
)

// EmailSender delivers operator notifications. Delivery failures are logged
// by callers and never fail the operation that triggered them.
type EmailSender interface {
	SendSyncDigest(ctx context.Context, category domain.FolderCategory, report *domain.SyncReport) error
}
