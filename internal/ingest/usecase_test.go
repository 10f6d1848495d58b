package ingest_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werb210/ocr-reconciler/internal/entity"
	"github.com/werb210/ocr-reconciler/internal/ingest"
)

// memResults is an in-memory OCRResultRepository that mimics the append-only
// versioning the real one does.
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
	next := 1
	for _, r := range m.rows {
		if r.DocumentID == rec.DocumentID && r.FieldKey == rec.FieldKey && r.Version >= next {
			next = r.Version + 1
		}
	}
	stored := *rec
	stored.ID = uuid.New()
	stored.Version = next
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

func payloadRecord(docID string) ingest.RecordPayload {
	return ingest.RecordPayload{
		ApplicationID:  "app-1",
		DocumentID:     docID,
		FieldKey:       "ending_balance",
		ExtractedValue: "$12,340.00",
		Confidence:     0.95,
		SourcePage:     1,
		ExtractedAt:    "2024-05-01T12:00:00Z",
		RunID:          "run-1",
	}
}

func TestIngestRecords_StoresValidRecords(t *testing.T) {
	repo := &memResults{}
	u := ingest.NewUsecase(repo, nil)

	docID := uuid.New().String()
	stored, skipped, err := u.IngestRecords(context.Background(), []ingest.RecordPayload{
		payloadRecord(docID),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stored)
	assert.Equal(t, 0, skipped)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, 1, repo.rows[0].Version)
}

func TestIngestRecords_ReextractionIncrementsVersion(t *testing.T) {
	repo := &memResults{}
	u := ingest.NewUsecase(repo, nil)

	docID := uuid.New().String()
	_, _, err := u.IngestRecords(context.Background(), []ingest.RecordPayload{payloadRecord(docID)})
	require.NoError(t, err)

	second := payloadRecord(docID)
	second.RunID = "run-2"
	second.ExtractedValue = "$12,400.00"
	_, _, err = u.IngestRecords(context.Background(), []ingest.RecordPayload{second})
	require.NoError(t, err)

	require.Len(t, repo.rows, 2, "re-extraction appends, never overwrites")
	assert.Equal(t, 1, repo.rows[0].Version)
	assert.Equal(t, 2, repo.rows[1].Version)
}

func TestIngestRecords_SkipsInvalidRecords(t *testing.T) {
	repo := &memResults{}
	u := ingest.NewUsecase(repo, nil)

	docID := uuid.New().String()

	badConfidence := payloadRecord(docID)
	badConfidence.Confidence = 1.7

	badPage := payloadRecord(docID)
	badPage.SourcePage = 0

	badDoc := payloadRecord("not-a-uuid")

	badTime := payloadRecord(docID)
	badTime.ExtractedAt = "yesterday"

	stored, skipped, err := u.IngestRecords(context.Background(), []ingest.RecordPayload{
		payloadRecord(docID), badConfidence, badPage, badDoc, badTime,
	})
	require.NoError(t, err, "bad records are skipped, not fatal")
	assert.Equal(t, 1, stored)
	assert.Equal(t, 4, skipped)
}

func TestIngestBatch_EndToEnd(t *testing.T) {
	repo := &memResults{}
	u := ingest.NewUsecase(repo, nil)

	docID := uuid.New().String()
	data := []byte(`{
		"records": [
			{
				"application_id": "app-1",
				"document_id": "` + docID + `",
				"field_key": "ending_balance",
				"extracted_value": "$12,340.00",
				"confidence": 0.97,
				"source_page": 2,
				"extracted_at": "2024-05-01T12:00:00Z",
				"run_id": "run-1"
			}
		]
	}`)

	stored, skipped, err := u.IngestBatch(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, 1, stored)
	assert.Equal(t, 0, skipped)
}
