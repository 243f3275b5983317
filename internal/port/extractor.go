package port

import (
	"context"

	"procura/internal/domain"
)

// ExtractInput carries the raw image bytes for document extraction.
type ExtractInput struct {
	FileBytes   []byte
	ContentType string
}

// DocumentExtractor abstracts the AI extraction oracle: given a scanned
// delivery note it returns structured line items and, when legible, the
// counterparty name printed on the note.
type DocumentExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (*domain.ExtractedDocument, error)
}
