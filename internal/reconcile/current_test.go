package reconcile_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werb210/ocr-reconciler/internal/entity"
	"github.com/werb210/ocr-reconciler/internal/reconcile"
)

func rec(doc uuid.UUID, version int, extractedAt time.Time, runID string) *entity.OCRResult {
	return &entity.OCRResult{
		DocumentID:     doc,
		FieldKey:       "ending_balance",
		ExtractedValue: runID, // make the winner observable
		Version:        version,
		ExtractedAt:    extractedAt,
		RunID:          runID,
	}
}

func TestCurrentPerDocument_HighestVersionWins(t *testing.T) {
	doc := uuid.New()
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	current := reconcile.CurrentPerDocument([]*entity.OCRResult{
		rec(doc, 1, t0.Add(2*time.Hour), "run-a"),
		rec(doc, 3, t0, "run-b"),
		rec(doc, 2, t0.Add(time.Hour), "run-c"),
	})
	require.Len(t, current, 1)
	assert.Equal(t, 3, current[doc].Version)
}

func TestCurrentPerDocument_TimestampBreaksVersionTie(t *testing.T) {
	doc := uuid.New()
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	current := reconcile.CurrentPerDocument([]*entity.OCRResult{
		rec(doc, 2, t0, "run-early"),
		rec(doc, 2, t0.Add(time.Minute), "run-late"),
	})
	assert.Equal(t, "run-late", current[doc].RunID)
}

func TestCurrentPerDocument_RunIDIsLastResort(t *testing.T) {
	doc := uuid.New()
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	current := reconcile.CurrentPerDocument([]*entity.OCRResult{
		rec(doc, 2, t0, "run-aaa"),
		rec(doc, 2, t0, "run-zzz"),
	})
	assert.Equal(t, "run-zzz", current[doc].RunID)
}

func TestCurrentPerDocument_OrderIndependent(t *testing.T) {
	doc := uuid.New()
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	records := []*entity.OCRResult{
		rec(doc, 2, t0, "run-aaa"),
		rec(doc, 2, t0, "run-zzz"),
		rec(doc, 1, t0.Add(time.Hour), "run-mmm"),
	}
	forward := reconcile.CurrentPerDocument(records)

	reversed := []*entity.OCRResult{records[2], records[1], records[0]}
	backward := reconcile.CurrentPerDocument(reversed)

	assert.Equal(t, forward[doc].RunID, backward[doc].RunID)
}

func TestCurrentPerDocument_OnePerDocument(t *testing.T) {
	docA, docB := uuid.New(), uuid.New()
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	current := reconcile.CurrentPerDocument([]*entity.OCRResult{
		rec(docA, 1, t0, "run-a"),
		rec(docA, 2, t0, "run-b"),
		rec(docB, 1, t0, "run-c"),
	})
	require.Len(t, current, 2)
	assert.Equal(t, 2, current[docA].Version)
	assert.Equal(t, 1, current[docB].Version)
}
