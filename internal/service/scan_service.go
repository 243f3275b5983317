package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"procura/internal/domain"
	"procura/internal/matching"
	"procura/internal/port"
)

// ScanInput carries one scan request: which indexed file to process and the
// candidate pool to reconcile against. The caller supplies the pool already
// filtered to awaiting-delivery records.
type ScanInput struct {
	RemoteID   string
	Candidates []domain.CandidateRecord
}

// AcceptInput records the operator accepting a reconciliation decision.
type AcceptInput struct {
	RemoteID        string
	PurchaseOrderID uuid.UUID
	SupplierID      uuid.UUID
	Items           []domain.ResolveItem
}

// ScanService runs the full pipeline for one file: download, archive,
// extract, reconcile. Accept finalizes a match by marking the file processed
// and resolving SKUs for the delivered items.
type ScanService interface {
	Scan(ctx context.Context, input ScanInput) (*domain.MatchResult, error)
	Accept(ctx context.Context, input AcceptInput) (*domain.ResolveReport, error)
	ArchiveURL(ctx context.Context, remoteID string) (string, error)
}

type scanService struct {
	tokens    port.AccessTokenProvider
	remote    port.RemoteFolderClient
	extractor port.DocumentExtractor
	engine    *matching.Engine
	files     port.FileIndexRepository
	skus      SkuService
	storage   port.ObjectStorage
	bucket    string
	presign   int64
	now       func() time.Time
}

// NewScanService creates a ScanService. storage may be nil when archiving is
// not configured.
func NewScanService(
	tokens port.AccessTokenProvider,
	remote port.RemoteFolderClient,
	docExtractor port.DocumentExtractor,
	engine *matching.Engine,
	files port.FileIndexRepository,
	skus SkuService,
	storage port.ObjectStorage,
	bucket string,
	presignExpiry int64,
) ScanService {
	return &scanService{
		tokens:    tokens,
		remote:    remote,
		extractor: docExtractor,
		engine:    engine,
		files:     files,
		skus:      skus,
		storage:   storage,
		bucket:    bucket,
		presign:   presignExpiry,
		now:       time.Now,
	}
}

func (s *scanService) Scan(ctx context.Context, input ScanInput) (*domain.MatchResult, error) {
	file, err := s.files.GetByRemoteID(ctx, input.RemoteID)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	data, err := s.remote.Download(ctx, token, file.RemoteID)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", file.RemoteID, err)
	}

	s.archive(ctx, file, data)

	doc, err := s.extractor.Extract(ctx, port.ExtractInput{
		FileBytes:   data,
		ContentType: file.MimeType,
	})
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", file.RemoteID, err)
	}
	if len(doc.Items) == 0 {
		return nil, domain.ErrEmptyExtraction
	}

	return s.engine.Reconcile(doc, input.Candidates), nil
}

func (s *scanService) Accept(ctx context.Context, input AcceptInput) (*domain.ResolveReport, error) {
	file, err := s.files.GetByRemoteID(ctx, input.RemoteID)
	if err != nil {
		return nil, err
	}
	if file.Processed {
		// Re-accepting against the same record reruns SKU resolution for
		// items that failed earlier; the processed link is never rewritten,
		// and accepting against a different record stays rejected.
		if file.PurchaseOrderID == nil || *file.PurchaseOrderID != input.PurchaseOrderID {
			return nil, domain.ErrAlreadyProcessed
		}
	} else if err := s.files.MarkProcessed(ctx, input.RemoteID, input.PurchaseOrderID, s.now().UTC()); err != nil {
		return nil, fmt.Errorf("marking %s processed: %w", input.RemoteID, err)
	}

	report, err := s.skus.ResolveBatch(ctx, input.SupplierID, input.Items)
	if err != nil {
		// The file stays marked; SKU resolution is idempotent and the
		// operator can rerun it for the failed items.
		return nil, fmt.Errorf("resolving skus: %w", err)
	}
	return report, nil
}

func (s *scanService) ArchiveURL(ctx context.Context, remoteID string) (string, error) {
	file, err := s.files.GetByRemoteID(ctx, remoteID)
	if err != nil {
		return "", err
	}
	if s.storage == nil || file.ArchiveKey == "" {
		return "", domain.ErrNotFound
	}
	return s.storage.GetPresignedURL(ctx, s.bucket, file.ArchiveKey, s.presign)
}

// archive keeps a copy of the scanned image in object storage. Failures are
// logged and never fail the scan.
func (s *scanService) archive(ctx context.Context, file *domain.IndexedFile, data []byte) {
	if s.storage == nil || s.bucket == "" {
		return
	}
	key := fmt.Sprintf("%s/%s/%s", file.FolderCategory, file.FolderWatermark, file.RemoteID)
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: file.MimeType,
		Size:        int64(len(data)),
	})
	if err != nil {
		log.Printf("scanService: archiving %s: %v", file.RemoteID, err)
		return
	}
	if err := s.files.SetArchiveKey(ctx, file.RemoteID, key); err != nil {
		log.Printf("scanService: saving archive key for %s: %v", file.RemoteID, err)
	}
}
