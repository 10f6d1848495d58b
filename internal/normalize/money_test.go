package normalize_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werb210/ocr-reconciler/internal/normalize"
)

func TestParseAmount_CurrencyFormats(t *testing.T) {
	a, ok := normalize.ParseAmount("$10,000.00")
	require.True(t, ok)
	b, ok := normalize.ParseAmount("10000")
	require.True(t, ok)
	assert.True(t, a.Equal(b), "formatted and plain renditions must normalize to the same number")

	c, ok := normalize.ParseAmount("  12,340 ")
	require.True(t, ok)
	assert.True(t, c.Equal(decimal.NewFromInt(12340)))

	d, ok := normalize.ParseAmount("€1,234.56")
	require.True(t, ok)
	assert.Equal(t, "1234.56", d.String())
}

func TestParseAmount_Negatives(t *testing.T) {
	a, ok := normalize.ParseAmount("(2,500.00)")
	require.True(t, ok)
	assert.True(t, a.Equal(decimal.NewFromInt(-2500)))

	b, ok := normalize.ParseAmount("-300")
	require.True(t, ok)
	assert.True(t, b.Equal(decimal.NewFromInt(-300)))
}

func TestParseAmount_CurrencyCodes(t *testing.T) {
	a, ok := normalize.ParseAmount("USD 9,000")
	require.True(t, ok)
	assert.True(t, a.Equal(decimal.NewFromInt(9000)))
}

func TestParseAmount_Rejects(t *testing.T) {
	for _, raw := range []string{"", "   ", "N/A", "twelve", "12.3.4", "1,2,3x"} {
		_, ok := normalize.ParseAmount(raw)
		assert.False(t, ok, "expected rejection for %q", raw)
	}
}
