package server

import (
	"context"
	"log/slog"
	"strings"

	ocrpb "github.com/werb210/ocr-reconciler/gen/proto/ocr/v1"
	"github.com/werb210/ocr-reconciler/internal/common"
	"github.com/werb210/ocr-reconciler/internal/ingest"
	"github.com/werb210/ocr-reconciler/internal/insights"
	"github.com/werb210/ocr-reconciler/internal/repository"
	"github.com/werb210/ocr-reconciler/internal/utils"
)

type InsightsService struct {
	ocrpb.UnimplementedOcrInsightsServiceServer
	svc      *insights.Service
	results  repository.OCRResultRepository
	ingestor *ingest.Usecase
	logger   *slog.Logger
}

func NewInsightsService(svc *insights.Service, results repository.OCRResultRepository, ingestor *ingest.Usecase, logger *slog.Logger) *InsightsService {
	return &InsightsService{
		svc:      svc,
		results:  results,
		ingestor: ingestor,
		logger:   logger,
	}
}

func (s *InsightsService) GetOcrInsights(ctx context.Context, req *ocrpb.GetOcrInsightsRequest) (*ocrpb.GetOcrInsightsResponse, error) {
	appID := strings.TrimSpace(req.GetApplicationId())
	if appID == "" {
		s.logger.Error("get insights request missing application_id")
		return nil, common.InvalidArgumentError("application_id is required")
	}

	payload, err := s.svc.GetInsights(ctx, appID)
	if err != nil {
		s.logger.Error("failed to compute insights", "application_id", appID, "error", err)
		return nil, common.InternalErrorf("compute insights: %v", err)
	}

	return &ocrpb.GetOcrInsightsResponse{
		ApplicationId:         payload.ApplicationID,
		Results:               utils.ToPBResults(payload.Results),
		MismatchFlags:         utils.ToPBFlags(payload.MismatchFlags),
		MissingRequiredFields: payload.MissingRequiredFields,
		SkippedFields:         payload.SkippedFields,
		Categories:            utils.ToPBCategories(payload.Categories),
	}, nil
}

func (s *InsightsService) ListResults(ctx context.Context, req *ocrpb.ListResultsRequest) (*ocrpb.ListResultsResponse, error) {
	appID := strings.TrimSpace(req.GetApplicationId())
	if appID == "" {
		return nil, common.InvalidArgumentError("application_id is required")
	}

	recs, err := s.results.ListByApplication(ctx, appID)
	if err != nil {
		s.logger.Error("failed to list results", "application_id", appID, "error", err)
		return nil, common.InternalErrorf("list results: %v", err)
	}
	return &ocrpb.ListResultsResponse{Results: utils.ToPBResults(recs)}, nil
}

func (s *InsightsService) IngestResults(ctx context.Context, req *ocrpb.IngestResultsRequest) (*ocrpb.IngestResultsResponse, error) {
	if len(req.GetRecords()) == 0 {
		return nil, common.InvalidArgumentError("records are required")
	}

	records := make([]ingest.RecordPayload, 0, len(req.GetRecords()))
	for _, r := range req.GetRecords() {
		records = append(records, ingest.RecordPayload{
			ApplicationID:  r.GetApplicationId(),
			DocumentID:     r.GetDocumentId(),
			FieldKey:       r.GetFieldKey(),
			ExtractedValue: r.GetExtractedValue(),
			Confidence:     r.GetConfidence(),
			SourcePage:     int(r.GetSourcePage()),
			ExtractedAt:    r.GetExtractedAt(),
			RunID:          r.GetRunId(),
		})
	}

	stored, skipped, err := s.ingestor.IngestRecords(ctx, records)
	if err != nil {
		s.logger.Error("failed to ingest results", "error", err)
		return nil, common.InternalErrorf("ingest results: %v", err)
	}
	return &ocrpb.IngestResultsResponse{Stored: int32(stored), Skipped: int32(skipped)}, nil
}
