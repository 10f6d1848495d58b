package insights

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/werb210/ocr-reconciler/internal/cache"
	"github.com/werb210/ocr-reconciler/internal/entity"
	"github.com/werb210/ocr-reconciler/internal/fields"
	"github.com/werb210/ocr-reconciler/internal/reconcile"
	"github.com/werb210/ocr-reconciler/internal/repository"
)

// Payload is the full insights response for one application: the raw record
// snapshot, the reconciliation outcome, and the category-grouped view.
type Payload struct {
	ApplicationID         string                   `json:"application_id"`
	Results               []*entity.OCRResult      `json:"results"`
	MismatchFlags         []reconcile.MismatchFlag `json:"mismatch_flags"`
	MissingRequiredFields []string                 `json:"missing_required_fields"`
	SkippedFields         []string                 `json:"skipped_fields,omitempty"`
	Categories            []CategoryGroup          `json:"categories"`
}

// Service loads an application's snapshot, reconciles it and shapes the
// insights payload. The cache is optional; without it every call computes.
type Service struct {
	documents repository.DocumentRepository
	results   repository.OCRResultRepository
	engine    *reconcile.Engine
	registry  *fields.Registry
	cache     *cache.InsightsCache
	logger    *slog.Logger
}

func NewService(documents repository.DocumentRepository, results repository.OCRResultRepository, engine *reconcile.Engine, registry *fields.Registry, insightsCache *cache.InsightsCache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		documents: documents,
		results:   results,
		engine:    engine,
		registry:  registry,
		cache:     insightsCache,
		logger:    logger,
	}
}

// GetInsights computes (or serves from cache) the insights payload for one
// application. The comparison runs over the snapshot read here; a re-extraction
// racing this call is picked up on the next fetch.
func (s *Service) GetInsights(ctx context.Context, applicationID string) (*Payload, error) {
	docs, err := s.documents.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	records, err := s.results.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	key := cache.Key(applicationID, maxVersion(records), len(records))
	if s.cache != nil {
		if b, ok := s.cache.Get(ctx, key); ok {
			var cached Payload
			if err := json.Unmarshal(b, &cached); err == nil {
				s.logger.Debug("insights served from cache", "application_id", applicationID)
				return &cached, nil
			}
		}
	}

	comparison := s.engine.Compare(records)
	view := BuildInsights(docs, records, comparison, s.registry)

	payload := &Payload{
		ApplicationID:         applicationID,
		Results:               records,
		MismatchFlags:         comparison.MismatchFlags,
		MissingRequiredFields: comparison.MissingRequiredFields,
		SkippedFields:         comparison.SkippedFields,
		Categories:            view.Categories,
	}
	s.logger.Info("insights computed",
		"application_id", applicationID,
		"documents", len(docs),
		"records", len(records),
		"mismatch_flags", len(payload.MismatchFlags),
		"missing_required", len(payload.MissingRequiredFields))

	if s.cache != nil {
		if b, err := json.Marshal(payload); err == nil {
			s.cache.Set(ctx, key, b)
		}
	}
	return payload, nil
}

func maxVersion(records []*entity.OCRResult) int {
	max := 0
	for _, rec := range records {
		if rec != nil && rec.Version > max {
			max = rec.Version
		}
	}
	return max
}
