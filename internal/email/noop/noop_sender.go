package noop

import (
	"context"
	"log"

	"procura/internal/domain"
	"procura/internal/port"
)

type noopSender struct{}

// NewNoopSender creates an EmailSender that only logs. Used in development
// and when no digest recipient is configured.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendSyncDigest(_ context.Context, category domain.FolderCategory, report *domain.SyncReport) error {
	log.Printf("noopSender: sync digest for %s (status=%s files=%d errors=%d)",
		category, report.Status, report.FilesSynced, len(report.Errors))
	return nil
}
