package insights_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werb210/ocr-reconciler/constants"
	"github.com/werb210/ocr-reconciler/internal/entity"
	"github.com/werb210/ocr-reconciler/internal/fields"
	"github.com/werb210/ocr-reconciler/internal/insights"
	"github.com/werb210/ocr-reconciler/internal/reconcile"
)

func doc(id uuid.UUID, name string, cat constants.DocumentCategory) *entity.Document {
	return &entity.Document{
		ID:            id,
		ApplicationID: "app-1",
		Category:      cat,
		Name:          name,
	}
}

func result(docID uuid.UUID, fieldKey, value string) *entity.OCRResult {
	return &entity.OCRResult{
		ID:             uuid.New(),
		ApplicationID:  "app-1",
		DocumentID:     docID,
		FieldKey:       fieldKey,
		ExtractedValue: value,
		Confidence:     0.9,
		SourcePage:     1,
		ExtractedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		RunID:          "run-1",
		Version:        1,
	}
}

func TestBuildInsights_ConflictRowsCarryComparisonValues(t *testing.T) {
	registry := fields.Default()
	engine := reconcile.NewEngine(registry, nil)

	docA, docB := uuid.New(), uuid.New()
	docs := []*entity.Document{
		doc(docA, "Jan Statement.pdf", constants.CashFlow),
		doc(docB, "Feb Statement.pdf", constants.CashFlow),
	}
	records := []*entity.OCRResult{
		result(docA, "ending_balance", "12,340"),
		result(docB, "ending_balance", "9,000"),
	}

	vm := insights.BuildInsights(docs, records, engine.Compare(records), registry)
	require.Len(t, vm.Categories, 1)
	group := vm.Categories[0]
	assert.Equal(t, constants.CashFlow, group.Category)
	require.Len(t, group.Rows, 2)

	for _, row := range group.Rows {
		assert.True(t, row.Conflict)
		require.Len(t, row.ComparisonValues, 1)
		if row.DocumentID == docA {
			assert.Equal(t, "Jan Statement.pdf", row.DocumentName)
			assert.Equal(t, []string{"9,000"}, row.ComparisonValues)
		} else {
			assert.Equal(t, []string{"12,340"}, row.ComparisonValues)
		}
	}
}

func TestBuildInsights_NoConflictNoComparisonValues(t *testing.T) {
	registry := fields.Default()
	engine := reconcile.NewEngine(registry, nil)

	docA, docB := uuid.New(), uuid.New()
	docs := []*entity.Document{
		doc(docA, "a.pdf", constants.CashFlow),
		doc(docB, "b.pdf", constants.CashFlow),
	}
	records := []*entity.OCRResult{
		result(docA, "ending_balance", "12,340"),
		result(docB, "ending_balance", "12,340"),
	}

	vm := insights.BuildInsights(docs, records, engine.Compare(records), registry)
	require.Len(t, vm.Categories, 1)
	for _, row := range vm.Categories[0].Rows {
		assert.False(t, row.Conflict)
		assert.Empty(t, row.ComparisonValues)
	}
}

func TestBuildInsights_FixedCategoryOrder(t *testing.T) {
	registry := fields.Default()
	engine := reconcile.NewEngine(registry, nil)

	d := uuid.New()
	docs := []*entity.Document{doc(d, "bundle.pdf", constants.Other)}
	records := []*entity.OCRResult{
		result(d, "invoice_total", "5,000"),
		result(d, "total_assets", "900,000"),
		result(d, "ending_balance", "12,340"),
	}

	vm := insights.BuildInsights(docs, records, engine.Compare(records), registry)
	require.Len(t, vm.Categories, 3)
	assert.Equal(t, constants.BalanceSheet, vm.Categories[0].Category)
	assert.Equal(t, constants.CashFlow, vm.Categories[1].Category)
	assert.Equal(t, constants.Invoices, vm.Categories[2].Category)
}

func TestBuildInsights_RowsSortedByLabel(t *testing.T) {
	registry := fields.Default()
	engine := reconcile.NewEngine(registry, nil)

	d := uuid.New()
	docs := []*entity.Document{doc(d, "statement.pdf", constants.CashFlow)}
	records := []*entity.OCRResult{
		result(d, "ending_balance", "12,340"),
		result(d, "average_daily_balance", "10,000"),
		result(d, "beginning_balance", "8,000"),
	}

	vm := insights.BuildInsights(docs, records, engine.Compare(records), registry)
	require.Len(t, vm.Categories, 1)
	rows := vm.Categories[0].Rows
	require.Len(t, rows, 3)
	assert.Equal(t, "Average Daily Balance", rows[0].Label)
	assert.Equal(t, "Beginning Balance", rows[1].Label)
	assert.Equal(t, "Ending Balance", rows[2].Label)
}

func TestBuildInsights_UnknownFieldsLandUnderOther(t *testing.T) {
	registry := fields.Default()
	engine := reconcile.NewEngine(registry, nil)

	d := uuid.New()
	docs := []*entity.Document{doc(d, "misc.pdf", constants.Contracts)}
	records := []*entity.OCRResult{result(d, "mystery_field", "hello")}

	vm := insights.BuildInsights(docs, records, engine.Compare(records), registry)
	require.Len(t, vm.Categories, 1)
	assert.Equal(t, constants.Other, vm.Categories[0].Category)
	assert.Equal(t, constants.Other, vm.Categories[0].Rows[0].DocumentCategory)
}

func TestBuildInsights_ComparisonValuesDeduplicated(t *testing.T) {
	registry := fields.Default()
	engine := reconcile.NewEngine(registry, nil)

	docA, docB, docC := uuid.New(), uuid.New(), uuid.New()
	docs := []*entity.Document{
		doc(docA, "a.pdf", constants.Other),
		doc(docB, "b.pdf", constants.Other),
		doc(docC, "c.pdf", constants.Other),
	}
	records := []*entity.OCRResult{
		result(docA, "business_name", "Acme Holdings"),
		result(docB, "business_name", "Atlas Holdings"),
		result(docC, "business_name", "Atlas Holdings"),
	}

	vm := insights.BuildInsights(docs, records, engine.Compare(records), registry)
	require.Len(t, vm.Categories, 1)

	var acmeRow *insights.Row
	for i := range vm.Categories[0].Rows {
		if vm.Categories[0].Rows[i].DocumentID == docA {
			acmeRow = &vm.Categories[0].Rows[i]
		}
	}
	require.NotNil(t, acmeRow)
	assert.Equal(t, []string{"Atlas Holdings"}, acmeRow.ComparisonValues, "two documents, one distinct opposing value")
}
