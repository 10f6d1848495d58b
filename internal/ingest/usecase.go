package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/werb210/ocr-reconciler/internal/entity"
	"github.com/werb210/ocr-reconciler/internal/repository"
)

// Usecase persists provider result batches. One structurally valid batch is
// ingested record by record: individually bad records are skipped with a
// warning, the rest land as append-only versioned rows.
type Usecase struct {
	Results  repository.OCRResultRepository
	validate *validator.Validate
	logger   *slog.Logger
}

func NewUsecase(results repository.OCRResultRepository, logger *slog.Logger) *Usecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &Usecase{
		Results:  results,
		validate: validator.New(),
		logger:   logger,
	}
}

// IngestBatch decodes, validates and persists one provider payload.
// Returns how many records were stored and how many were skipped.
func (u *Usecase) IngestBatch(ctx context.Context, data []byte) (stored, skipped int, err error) {
	batch, err := DecodeBatch(data)
	if err != nil {
		return 0, 0, err
	}
	return u.IngestRecords(ctx, batch.Records)
}

// IngestRecords persists already-decoded payload records.
func (u *Usecase) IngestRecords(ctx context.Context, records []RecordPayload) (stored, skipped int, err error) {
	for _, p := range records {
		rec, perr := u.toEntity(p)
		if perr != nil {
			u.logger.Warn("skipping invalid extraction record",
				"document_id", p.DocumentID, "field_key", p.FieldKey, "run_id", p.RunID, "error", perr)
			skipped++
			continue
		}
		if _, ierr := u.Results.Insert(ctx, rec); ierr != nil {
			// storage failure is not a data-quality problem; stop the batch
			return stored, skipped, ierr
		}
		stored++
	}
	u.logger.Info("extraction batch ingested", "stored", stored, "skipped", skipped)
	return stored, skipped, nil
}

func (u *Usecase) toEntity(p RecordPayload) (*entity.OCRResult, error) {
	if err := u.validate.Struct(p); err != nil {
		return nil, err
	}
	docID, err := uuid.Parse(p.DocumentID)
	if err != nil {
		return nil, err
	}
	extractedAt, err := time.Parse(time.RFC3339, p.ExtractedAt)
	if err != nil {
		return nil, err
	}
	return &entity.OCRResult{
		ApplicationID:  p.ApplicationID,
		DocumentID:     docID,
		FieldKey:       p.FieldKey,
		ExtractedValue: p.ExtractedValue,
		Confidence:     p.Confidence,
		SourcePage:     p.SourcePage,
		ExtractedAt:    extractedAt.UTC(),
		RunID:          p.RunID,
	}, nil
}
