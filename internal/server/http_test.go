package server_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werb210/ocr-reconciler/constants"
	"github.com/werb210/ocr-reconciler/internal/entity"
	"github.com/werb210/ocr-reconciler/internal/export"
	"github.com/werb210/ocr-reconciler/internal/fields"
	"github.com/werb210/ocr-reconciler/internal/insights"
	"github.com/werb210/ocr-reconciler/internal/reconcile"
	"github.com/werb210/ocr-reconciler/internal/server"
)

type memDocs struct {
	docs []*entity.Document
}

func (m *memDocs) GetByID(_ context.Context, id uuid.UUID) (*entity.Document, error) {
	for _, d := range m.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (m *memDocs) ListByApplication(_ context.Context, applicationID string) ([]*entity.Document, error) {
	var out []*entity.Document
	for _, d := range m.docs {
		if d.ApplicationID == applicationID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDocs) Create(_ context.Context, applicationID string, category constants.DocumentCategory, name string, uploadedAt time.Time) (*entity.Document, error) {
	d := &entity.Document{ID: uuid.New(), ApplicationID: applicationID, Category: category, Name: name, UploadedAt: uploadedAt}
	m.docs = append(m.docs, d)
	return d, nil
}

type memResults struct {
	rows []*entity.OCRResult
}

func (m *memResults) ListByApplication(_ context.Context, applicationID string) ([]*entity.OCRResult, error) {
	var out []*entity.OCRResult
	for _, r := range m.rows {
		if r.ApplicationID == applicationID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memResults) ListByDocument(_ context.Context, documentID uuid.UUID) ([]*entity.OCRResult, error) {
	var out []*entity.OCRResult
	for _, r := range m.rows {
		if r.DocumentID == documentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memResults) Insert(_ context.Context, rec *entity.OCRResult) (*entity.OCRResult, error) {
	stored := *rec
	stored.ID = uuid.New()
	if stored.Version == 0 {
		stored.Version = 1
	}
	m.rows = append(m.rows, &stored)
	return &stored, nil
}

func (m *memResults) MaxVersion(_ context.Context, applicationID string) (int, error) {
	max := 0
	for _, r := range m.rows {
		if r.ApplicationID == applicationID && r.Version > max {
			max = r.Version
		}
	}
	return max, nil
}

func fixtureRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.DiscardHandler)

	docA := &entity.Document{ID: uuid.New(), ApplicationID: "app-1", Category: constants.CashFlow, Name: "Jan Statement.pdf"}
	docB := &entity.Document{ID: uuid.New(), ApplicationID: "app-1", Category: constants.CashFlow, Name: "Feb Statement.pdf"}
	docs := &memDocs{docs: []*entity.Document{docA, docB}}

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	results := &memResults{rows: []*entity.OCRResult{
		{ID: uuid.New(), ApplicationID: "app-1", DocumentID: docA.ID, FieldKey: "ending_balance", ExtractedValue: "12,340", Confidence: 0.9, SourcePage: 1, ExtractedAt: now, RunID: "run-1", Version: 1},
		{ID: uuid.New(), ApplicationID: "app-1", DocumentID: docB.ID, FieldKey: "ending_balance", ExtractedValue: "9,000", Confidence: 0.9, SourcePage: 1, ExtractedAt: now, RunID: "run-1", Version: 1},
	}}

	registry := fields.Default()
	engine := reconcile.NewEngine(registry, logger)
	svc := insights.NewService(docs, results, engine, registry, nil, logger)
	exporter := export.NewService(svc, logger)

	return server.NewRouter(svc, exporter, logger)
}

func TestGetOcrInsights(t *testing.T) {
	router := fixtureRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/applications/app-1/ocr-insights", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload insights.Payload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, "app-1", payload.ApplicationID)
	assert.Len(t, payload.Results, 2)
	assert.Len(t, payload.MismatchFlags, 2, "12,340 vs 9,000 conflicts on both rows")
	assert.Contains(t, payload.MissingRequiredFields, "business_name")
	assert.Contains(t, payload.MissingRequiredFields, "requested_amount")
}

func TestGetOcrInsights_EmptyApplication(t *testing.T) {
	router := fixtureRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/applications/app-unknown/ocr-insights", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, "an application with no data is empty, not an error")

	var payload insights.Payload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Empty(t, payload.Results)
	assert.Empty(t, payload.MismatchFlags)
}

func TestExportInsights(t *testing.T) {
	router := fixtureRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/applications/app-1/ocr-insights/export", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "ocr-insights-app-1")
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestHealthz(t *testing.T) {
	router := fixtureRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
