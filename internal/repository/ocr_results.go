package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/google/uuid"

	"github.com/werb210/ocr-reconciler/gen/ent"
	entres "github.com/werb210/ocr-reconciler/gen/ent/ocrresult"
	"github.com/werb210/ocr-reconciler/internal/entity"
)

type OCRResultRepository interface {
	ListByApplication(ctx context.Context, applicationID string) ([]*entity.OCRResult, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.OCRResult, error)
	// Insert appends one observation at the next version for its
	// document+field. Existing rows are never touched.
	Insert(ctx context.Context, rec *entity.OCRResult) (*entity.OCRResult, error)
	MaxVersion(ctx context.Context, applicationID string) (int, error)
}

type ocrResultRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewOCRResultRepository(entc *ent.Client, logger *slog.Logger) OCRResultRepository {
	return &ocrResultRepo{ent: entc, logger: logger}
}

func (r *ocrResultRepo) ListByApplication(ctx context.Context, applicationID string) ([]*entity.OCRResult, error) {
	rows, err := r.ent.OCRResult.Query().
		Where(entres.ApplicationID(applicationID)).
		Order(entres.ByExtractedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list ocr results", "application_id", applicationID, "error", err)
		return nil, err
	}
	return toResults(rows), nil
}

func (r *ocrResultRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.OCRResult, error) {
	rows, err := r.ent.OCRResult.Query().
		Where(entres.DocumentID(documentID)).
		Order(entres.ByExtractedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list ocr results", "document_id", documentID, "error", err)
		return nil, err
	}
	return toResults(rows), nil
}

func (r *ocrResultRepo) Insert(ctx context.Context, rec *entity.OCRResult) (*entity.OCRResult, error) {
	// read-max-then-insert is not atomic; the unique
	// (document_id, field_key, version) index rejects the loser of a
	// concurrent race, which we resolve by recomputing once
	for attempt := 0; ; attempt++ {
		next, err := r.nextVersion(ctx, rec.DocumentID, rec.FieldKey)
		if err != nil {
			return nil, err
		}
		row, err := r.create(ctx, rec, next)
		if err != nil {
			if ent.IsConstraintError(err) && attempt == 0 {
				r.logger.Warn("version claimed by concurrent insert, retrying",
					"document_id", rec.DocumentID, "field_key", rec.FieldKey, "version", next)
				continue
			}
			r.logger.Error("failed to insert ocr result",
				"document_id", rec.DocumentID, "field_key", rec.FieldKey, "error", err)
			return nil, err
		}
		r.logger.Info("ocr result appended",
			"document_id", rec.DocumentID, "field_key", rec.FieldKey, "version", next, "run_id", rec.RunID)
		return toResult(row), nil
	}
}

func (r *ocrResultRepo) create(ctx context.Context, rec *entity.OCRResult, version int) (*ent.OCRResult, error) {
	return r.ent.OCRResult.Create().
		SetDocumentID(rec.DocumentID).
		SetApplicationID(rec.ApplicationID).
		SetFieldKey(rec.FieldKey).
		SetExtractedValue(rec.ExtractedValue).
		SetConfidence(rec.Confidence).
		SetSourcePage(rec.SourcePage).
		SetExtractedAt(rec.ExtractedAt).
		SetRunID(rec.RunID).
		SetVersion(version).
		Save(ctx)
}

// MaxVersion returns the highest version across an application's rows,
// zero when none exist. The insights cache keys on it.
func (r *ocrResultRepo) MaxVersion(ctx context.Context, applicationID string) (int, error) {
	rows, err := r.ent.OCRResult.Query().
		Where(entres.ApplicationID(applicationID)).
		Order(entres.ByVersion(entsql.OrderDesc())).
		Limit(1).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to read max version", "application_id", applicationID, "error", err)
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Version, nil
}

func (r *ocrResultRepo) nextVersion(ctx context.Context, documentID uuid.UUID, fieldKey string) (int, error) {
	rows, err := r.ent.OCRResult.Query().
		Where(entres.DocumentID(documentID), entres.FieldKey(fieldKey)).
		Order(entres.ByVersion(entsql.OrderDesc())).
		Limit(1).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to read current version",
			"document_id", documentID, "field_key", fieldKey, "error", err)
		return 0, err
	}
	if len(rows) == 0 {
		return 1, nil
	}
	return rows[0].Version + 1, nil
}

func toResults(rows []*ent.OCRResult) []*entity.OCRResult {
	out := make([]*entity.OCRResult, len(rows))
	for i, row := range rows {
		out[i] = toResult(row)
	}
	return out
}

func toResult(row *ent.OCRResult) *entity.OCRResult {
	return &entity.OCRResult{
		ID:             row.ID,
		ApplicationID:  row.ApplicationID,
		DocumentID:     row.DocumentID,
		FieldKey:       row.FieldKey,
		ExtractedValue: row.ExtractedValue,
		Confidence:     row.Confidence,
		SourcePage:     row.SourcePage,
		ExtractedAt:    row.ExtractedAt,
		RunID:          row.RunID,
		Version:        row.Version,
	}
}
