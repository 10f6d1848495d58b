package reconcile_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/werb210/ocr-reconciler/internal/reconcile"
)

func TestNumericMatch_AbsoluteFloor(t *testing.T) {
	tol := reconcile.DefaultTolerance()

	// 10,000 vs 10,050: 50 <= 100 floor
	assert.True(t, tol.NumericMatch(decimal.NewFromInt(10000), decimal.NewFromInt(10050)))
	// at 5,000 the floor governs (1% is only 51): diff 100 matches, 101 does not
	assert.True(t, tol.NumericMatch(decimal.NewFromInt(5000), decimal.NewFromInt(5100)))
	assert.False(t, tol.NumericMatch(decimal.NewFromInt(5000), decimal.NewFromInt(5101)))
	// at 10,000 the 1% bound edges past the floor: allowance is 101.01, not 100
	assert.True(t, tol.NumericMatch(decimal.NewFromInt(10000), decimal.NewFromInt(10101)))
	assert.False(t, tol.NumericMatch(decimal.NewFromInt(10000), decimal.NewFromInt(10102)))
	// 10,000 vs 12,000 is well past both bounds
	assert.False(t, tol.NumericMatch(decimal.NewFromInt(10000), decimal.NewFromInt(12000)))
}

func TestNumericMatch_RelativeBound(t *testing.T) {
	tol := reconcile.DefaultTolerance()

	// at 1,000,000 the 1% bound (10,000) dominates the absolute floor
	assert.True(t, tol.NumericMatch(decimal.NewFromInt(1000000), decimal.NewFromInt(1009000)))
	assert.True(t, tol.NumericMatch(decimal.NewFromInt(1000000), decimal.NewFromInt(1010000)))
	assert.False(t, tol.NumericMatch(decimal.NewFromInt(1000000), decimal.NewFromInt(1010200)))
}

func TestNumericMatch_Symmetric(t *testing.T) {
	tol := reconcile.DefaultTolerance()
	a, b := decimal.NewFromInt(10000), decimal.NewFromInt(10050)
	assert.Equal(t, tol.NumericMatch(a, b), tol.NumericMatch(b, a))
}

func TestNumericMatch_Negatives(t *testing.T) {
	tol := reconcile.DefaultTolerance()
	assert.True(t, tol.NumericMatch(decimal.NewFromInt(-10000), decimal.NewFromInt(-10050)))
	assert.False(t, tol.NumericMatch(decimal.NewFromInt(-10000), decimal.NewFromInt(10000)))
}

func TestDateMatch_ExactByDefault(t *testing.T) {
	tol := reconcile.DefaultTolerance()
	a := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	assert.True(t, tol.DateMatch(a, a))
	assert.False(t, tol.DateMatch(a, b))
}

func TestDateMatch_ConfigurableWindow(t *testing.T) {
	tol := reconcile.DefaultTolerance()
	tol.DateDays = 3
	a := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	assert.True(t, tol.DateMatch(a, a.AddDate(0, 0, 3)))
	assert.False(t, tol.DateMatch(a, a.AddDate(0, 0, 4)))
}
