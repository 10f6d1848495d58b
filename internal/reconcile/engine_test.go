package reconcile_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werb210/ocr-reconciler/internal/entity"
	"github.com/werb210/ocr-reconciler/internal/fields"
	"github.com/werb210/ocr-reconciler/internal/reconcile"
)

func newEngine() *reconcile.Engine {
	return reconcile.NewEngine(fields.Default(), nil)
}

func result(doc uuid.UUID, fieldKey, value string) *entity.OCRResult {
	return &entity.OCRResult{
		ID:             uuid.New(),
		ApplicationID:  "app-1",
		DocumentID:     doc,
		FieldKey:       fieldKey,
		ExtractedValue: value,
		Confidence:     0.9,
		SourcePage:     1,
		ExtractedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		RunID:          "run-1",
		Version:        1,
	}
}

func TestCompare_TextMismatchFlagsEveryContributor(t *testing.T) {
	docA, docB := uuid.New(), uuid.New()
	out := newEngine().Compare([]*entity.OCRResult{
		result(docA, "business_name", "Acme Holdings"),
		result(docB, "business_name", "Atlas Holdings"),
	})

	require.Len(t, out.MismatchFlags, 2, "each disagreeing record carries its own flag")
	for _, f := range out.MismatchFlags {
		assert.Equal(t, "business_name", f.FieldKey)
		assert.Equal(t, reconcile.SeverityConflict, f.Severity)
		require.Len(t, f.ConflictsWith, 1)
	}
}

func TestCompare_NumericWithinTolerance(t *testing.T) {
	docA, docB := uuid.New(), uuid.New()
	out := newEngine().Compare([]*entity.OCRResult{
		result(docA, "ending_balance", "10,000"),
		result(docB, "ending_balance", "$10,050.00"),
	})
	assert.Empty(t, out.MismatchFlags, "difference of 50 sits under the 100 floor")
}

func TestCompare_NumericPastTolerance(t *testing.T) {
	docA, docB := uuid.New(), uuid.New()
	out := newEngine().Compare([]*entity.OCRResult{
		result(docA, "ending_balance", "12,340"),
		result(docB, "ending_balance", "9,000"),
	})
	require.Len(t, out.MismatchFlags, 2)

	flagA, ok := out.FlagFor(docA, "ending_balance")
	require.True(t, ok)
	require.Len(t, flagA.ConflictsWith, 1)
	assert.Equal(t, "9,000", flagA.ConflictsWith[0].Value)

	flagB, ok := out.FlagFor(docB, "ending_balance")
	require.True(t, ok)
	assert.Equal(t, "12,340", flagB.ConflictsWith[0].Value)
}

func TestCompare_EquivalentRenditionsAgree(t *testing.T) {
	docA, docB := uuid.New(), uuid.New()
	out := newEngine().Compare([]*entity.OCRResult{
		result(docA, "ending_balance", "12,340"),
		result(docB, "ending_balance", "$12,340.00"),
	})
	assert.Empty(t, out.MismatchFlags)
}

func TestCompare_SingleDocumentNeverMismatches(t *testing.T) {
	doc := uuid.New()
	out := newEngine().Compare([]*entity.OCRResult{
		result(doc, "ending_balance", "12,340"),
		result(doc, "gross_revenue", "1,000,000"),
	})
	assert.Empty(t, out.MismatchFlags)
}

func TestCompare_DateMismatch(t *testing.T) {
	docA, docB := uuid.New(), uuid.New()

	out := newEngine().Compare([]*entity.OCRResult{
		result(docA, "statement_period_end", "2024-03-31"),
		result(docB, "statement_period_end", "03/31/2024"),
	})
	assert.Empty(t, out.MismatchFlags, "same date in different layouts agrees")

	out = newEngine().Compare([]*entity.OCRResult{
		result(docA, "statement_period_end", "2024-03-31"),
		result(docB, "statement_period_end", "2024-04-30"),
	})
	assert.Len(t, out.MismatchFlags, 2)
}

func TestCompare_UnknownFieldComparedAsText(t *testing.T) {
	docA, docB := uuid.New(), uuid.New()
	out := newEngine().Compare([]*entity.OCRResult{
		result(docA, "mystery_field", "Some Value"),
		result(docB, "mystery_field", "some   value"),
	})
	assert.Empty(t, out.MismatchFlags, "unknown keys use folded text comparison")

	out = newEngine().Compare([]*entity.OCRResult{
		result(docA, "mystery_field", "Some Value"),
		result(docB, "mystery_field", "Other Value"),
	})
	assert.Len(t, out.MismatchFlags, 2)
}

func TestCompare_MalformedRecordsDropped(t *testing.T) {
	docA, docB := uuid.New(), uuid.New()
	out := newEngine().Compare([]*entity.OCRResult{
		result(docA, "", "orphan value"),
		result(docB, "business_name", ""),
		result(docA, "business_name", "Acme Holdings"),
	})
	assert.Empty(t, out.MismatchFlags, "a dropped record leaves one document, so no pair to compare")
}

func TestCompare_MissingRequiredFields(t *testing.T) {
	doc := uuid.New()
	out := newEngine().Compare([]*entity.OCRResult{
		result(doc, "business_name", "Acme Holdings"),
	})
	assert.Contains(t, out.MissingRequiredFields, "requested_amount")
	assert.NotContains(t, out.MissingRequiredFields, "business_name")
}

func TestCompare_StaleVersionIgnored(t *testing.T) {
	docA, docB := uuid.New(), uuid.New()
	stale := result(docA, "ending_balance", "99,999")
	stale.Version = 1
	fresh := result(docA, "ending_balance", "12,340")
	fresh.Version = 2

	out := newEngine().Compare([]*entity.OCRResult{
		stale, fresh,
		result(docB, "ending_balance", "12,340"),
	})
	assert.Empty(t, out.MismatchFlags, "only the current version per document participates")
}

func TestCompare_Deterministic(t *testing.T) {
	docA, docB, docC := uuid.New(), uuid.New(), uuid.New()
	records := []*entity.OCRResult{
		result(docC, "business_name", "Acme Holdings"),
		result(docA, "business_name", "Atlas Holdings"),
		result(docB, "business_name", "Apex Holdings"),
		result(docA, "ending_balance", "12,340"),
		result(docB, "ending_balance", "9,000"),
	}

	first, err := json.Marshal(newEngine().Compare(records))
	require.NoError(t, err)
	second, err := json.Marshal(newEngine().Compare(records))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second), "same snapshot must serialize identically")
}

func TestCompare_GroupCapSkipsAndReports(t *testing.T) {
	engine := reconcile.NewEngine(fields.Default(), nil).WithMaxGroupDocs(3)

	var records []*entity.OCRResult
	for i := 0; i < 5; i++ {
		records = append(records, result(uuid.New(), "ending_balance", fmt.Sprintf("%d", i*100000)))
	}
	out := engine.Compare(records)

	assert.Empty(t, out.MismatchFlags)
	assert.Equal(t, []string{"ending_balance"}, out.SkippedFields)
}
