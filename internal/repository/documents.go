package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/werb210/ocr-reconciler/constants"
	"github.com/werb210/ocr-reconciler/gen/ent"
	entdoc "github.com/werb210/ocr-reconciler/gen/ent/document"
	"github.com/werb210/ocr-reconciler/internal/entity"
)

type DocumentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	ListByApplication(ctx context.Context, applicationID string) ([]*entity.Document, error)
	Create(ctx context.Context, applicationID string, category constants.DocumentCategory, name string, uploadedAt time.Time) (*entity.Document, error)
}

type documentRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, logger: logger}
}

func (r *documentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	row, err := r.ent.Document.Get(ctx, id)
	if err != nil {
		r.logger.Error("failed to get document", "document_id", id, "error", err)
		return nil, err
	}
	return toDocument(row), nil
}

func (r *documentRepo) ListByApplication(ctx context.Context, applicationID string) ([]*entity.Document, error) {
	rows, err := r.ent.Document.Query().
		Where(entdoc.ApplicationID(applicationID)).
		Order(entdoc.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list documents", "application_id", applicationID, "error", err)
		return nil, err
	}
	out := make([]*entity.Document, len(rows))
	for i, row := range rows {
		out[i] = toDocument(row)
	}
	return out, nil
}

func (r *documentRepo) Create(ctx context.Context, applicationID string, category constants.DocumentCategory, name string, uploadedAt time.Time) (*entity.Document, error) {
	row, err := r.ent.Document.Create().
		SetApplicationID(applicationID).
		SetCategory(string(category)).
		SetName(name).
		SetUploadedAt(uploadedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create document", "application_id", applicationID, "name", name, "error", err)
		return nil, err
	}
	r.logger.Info("document created", "document_id", row.ID, "application_id", applicationID, "category", category)
	return toDocument(row), nil
}

func toDocument(row *ent.Document) *entity.Document {
	cat, _ := constants.Canonicalize(row.Category)
	return &entity.Document{
		ID:            row.ID,
		ApplicationID: row.ApplicationID,
		Category:      cat,
		Name:          row.Name,
		UploadedAt:    row.UploadedAt,
	}
}
