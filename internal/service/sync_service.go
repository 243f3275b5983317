package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"procura/internal/config"
	"procura/internal/domain"
	"procura/internal/port"
)

// SyncService keeps the local file index current with the remote date
// folders of each category.
type SyncService interface {
	// Sync walks every date subfolder of the category's root, upserts the
	// files it finds, and records the run in the category's sync config.
	Sync(ctx context.Context, category domain.FolderCategory) (*domain.SyncReport, error)
	// Status returns the category's sync bookkeeping row.
	Status(ctx context.Context, category domain.FolderCategory) (*domain.SyncConfig, error)
}

type syncService struct {
	tokens  port.AccessTokenProvider
	remote  port.RemoteFolderClient
	files   port.FileIndexRepository
	configs port.SyncConfigRepository
	guard   port.SyncGuard
	email   port.EmailSender
	drive   *config.DriveConfig
	now     func() time.Time
}

// NewSyncService creates a SyncService. email may be a noop sender but must
// not be nil.
func NewSyncService(
	tokens port.AccessTokenProvider,
	remote port.RemoteFolderClient,
	files port.FileIndexRepository,
	configs port.SyncConfigRepository,
	guard port.SyncGuard,
	email port.EmailSender,
	drive *config.DriveConfig,
) SyncService {
	return &syncService{
		tokens:  tokens,
		remote:  remote,
		files:   files,
		configs: configs,
		guard:   guard,
		email:   email,
		drive:   drive,
		now:     time.Now,
	}
}

func (s *syncService) Sync(ctx context.Context, category domain.FolderCategory) (*domain.SyncReport, error) {
	rootID := s.drive.RootFolder(string(category))
	if rootID == "" {
		return nil, fmt.Errorf("%w: no root folder configured for %s", domain.ErrUnknownCategory, category)
	}

	if !s.guard.TryAcquire(category) {
		return nil, domain.ErrAlreadySyncing
	}
	defer s.guard.Release(category)

	// A missing or revoked credential aborts the whole run before any remote
	// call; the operator has to reconnect, retrying is pointless.
	token, err := s.tokens.GetAccessToken(ctx)
	if err != nil {
		s.notifyFailedStart(ctx, category, err)
		return nil, err
	}

	dateFolders, err := s.listAll(ctx, token, rootID)
	if err != nil {
		err = fmt.Errorf("listing date folders: %w", err)
		s.notifyFailedStart(ctx, category, err)
		return nil, err
	}

	report := &domain.SyncReport{}

	// One folder at a time: the upstream API is rate limited and each
	// folder's upsert is idempotent, so sequential is the safe default.
	for _, folder := range dateFolders {
		if folder.MimeType != port.FolderMimeType {
			continue
		}
		report.FoldersScanned++

		synced, err := s.syncFolder(ctx, token, category, folder)
		if err != nil {
			log.Printf("syncService: folder %q failed: %v", folder.Name, err)
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", folder.Name, err))
			continue
		}
		report.FilesSynced += synced
	}

	report.Status = domain.SyncStatusSuccess
	if len(report.Errors) > 0 {
		report.Status = domain.SyncStatusPartial
	}

	now := s.now().UTC()
	cfg := &domain.SyncConfig{
		FolderCategory:   category,
		LastSyncedAt:     &now,
		LastSyncStatus:   report.Status,
		LastSyncError:    strings.Join(report.Errors, "; "),
		FilesSyncedCount: report.FilesSynced,
	}
	if err := s.configs.Update(ctx, cfg); err != nil {
		// The index itself is already written; only bookkeeping is stale.
		log.Printf("syncService: updating sync config for %s: %v", category, err)
	}

	if report.Status == domain.SyncStatusPartial {
		if err := s.email.SendSyncDigest(ctx, category, report); err != nil {
			log.Printf("syncService: sending sync digest: %v", err)
		}
	}

	log.Printf("syncService: %s done (folders=%d files=%d status=%s)",
		category, report.FoldersScanned, report.FilesSynced, report.Status)
	return report, nil
}

// notifyFailedStart mails a digest for a run that never produced an index
// pass, so scheduled syncs cannot fail silently. Overlap rejection is not a
// failed start; the in-flight run reports its own outcome.
func (s *syncService) notifyFailedStart(ctx context.Context, category domain.FolderCategory, cause error) {
	report := &domain.SyncReport{
		Status: domain.SyncStatusFailed,
		Errors: []string{cause.Error()},
	}
	if err := s.email.SendSyncDigest(ctx, category, report); err != nil {
		log.Printf("syncService: sending sync digest: %v", err)
	}
}

// syncFolder lists all image files in one date folder and upserts them as a
// batch. The folder name is the watermark; it is grouping metadata only and
// is never parsed as a date here.
func (s *syncService) syncFolder(ctx context.Context, token string, category domain.FolderCategory, folder port.RemoteEntry) (int, error) {
	entries, err := s.listAll(ctx, token, folder.ID)
	if err != nil {
		return 0, err
	}

	seenAt := s.now().UTC()
	batch := make([]domain.IndexedFile, 0, len(entries))
	for _, e := range entries {
		if !domain.ImageContentTypes[e.MimeType] {
			continue
		}
		batch = append(batch, domain.IndexedFile{
			RemoteID:        e.ID,
			Name:            e.Name,
			FolderCategory:  category,
			FolderWatermark: folder.Name,
			MimeType:        e.MimeType,
			SizeBytes:       e.SizeBytes,
			LastSeenAt:      seenAt,
		})
	}
	if len(batch) == 0 {
		return 0, nil
	}
	return s.files.UpsertBatch(ctx, batch)
}

// listAll drains the pagination tokens of one folder listing.
func (s *syncService) listAll(ctx context.Context, token, folderID string) ([]port.RemoteEntry, error) {
	var all []port.RemoteEntry
	pageToken := ""
	for {
		entries, next, err := s.remote.ListChildren(ctx, token, folderID, pageToken)
		if err != nil {
			return nil, err
		}
		all = append(all, entries...)
		if next == "" {
			return all, nil
		}
		pageToken = next
	}
}

func (s *syncService) Status(ctx context.Context, category domain.FolderCategory) (*domain.SyncConfig, error) {
	return s.configs.Get(ctx, category)
}
