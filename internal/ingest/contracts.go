package ingest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/werb210/ocr-reconciler/internal/entity"
)

// Extractor is the external OCR provider boundary. Implementations live
// outside this service; reconciliation only ever reads rows that an earlier
// successful extraction persisted. Retry and rate limiting belong to the
// implementation, never to callers here.
type Extractor interface {
	RunExtraction(ctx context.Context, documentID uuid.UUID, applicationID, fileRef, schemaVersion string) (*ExtractionResult, error)
}

// ExtractionResult is one provider run's output for one document.
type ExtractionResult struct {
	RunID   string
	Records []*entity.OCRResult
}

// ExtractionFailedError is the typed failure an Extractor returns. A failed
// run never reaches reconciliation.
type ExtractionFailedError struct {
	DocumentID uuid.UUID
	RunID      string
	Reason     string
	Cause      error
}

func (e *ExtractionFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed for document %s: %s: %v", e.DocumentID, e.Reason, e.Cause)
	}
	return fmt.Sprintf("extraction failed for document %s: %s", e.DocumentID, e.Reason)
}

func (e *ExtractionFailedError) Unwrap() error {
	return e.Cause
}
