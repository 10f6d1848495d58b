package reconcile

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tolerance is the per-comparison slack policy. Numeric values agree when
// they differ by no more than max(AbsoluteFloor, RelativeFrac * larger
// magnitude); dates agree within DateDays calendar days.
type Tolerance struct {
	AbsoluteFloor decimal.Decimal
	RelativeFrac  decimal.Decimal
	DateDays      int
}

// DefaultTolerance is the production policy: 100 currency units absolute,
// 1% relative, exact dates.
func DefaultTolerance() Tolerance {
	return Tolerance{
		AbsoluteFloor: decimal.NewFromInt(100),
		RelativeFrac:  decimal.NewFromFloat(0.01),
		DateDays:      0,
	}
}

// NumericMatch reports whether a and b are within tolerance of each other.
func (t Tolerance) NumericMatch(a, b decimal.Decimal) bool {
	diff := a.Sub(b).Abs()
	scale := decimal.Max(a.Abs(), b.Abs())
	allowed := decimal.Max(t.AbsoluteFloor, scale.Mul(t.RelativeFrac))
	return diff.LessThanOrEqual(allowed)
}

// DateMatch reports whether a and b fall within DateDays of each other.
// Both inputs are expected at midnight UTC (the normalizer guarantees it).
func (t Tolerance) DateMatch(a, b time.Time) bool {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	return diff <= time.Duration(t.DateDays)*24*time.Hour
}
