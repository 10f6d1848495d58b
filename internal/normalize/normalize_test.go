package normalize_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werb210/ocr-reconciler/constants"
	"github.com/werb210/ocr-reconciler/internal/normalize"
)

func TestNormalize_NumericKind(t *testing.T) {
	v := normalize.Normalize("$10,000.00", constants.SemanticNumeric)
	require.Equal(t, normalize.KindNumeric, v.Kind)
	assert.True(t, v.Number.Equal(decimal.NewFromInt(10000)))
	assert.Equal(t, "$10,000.00", v.Raw, "raw string kept for display")
}

func TestNormalize_NumericFallsBackToText(t *testing.T) {
	v := normalize.Normalize("  see attached  ", constants.SemanticNumeric)
	require.Equal(t, normalize.KindText, v.Kind)
	assert.Equal(t, "see attached", v.Text)
}

func TestNormalize_DateFallsBackToText(t *testing.T) {
	v := normalize.Normalize("end of quarter", constants.SemanticDate)
	require.Equal(t, normalize.KindText, v.Kind)
	assert.Equal(t, "end of quarter", v.Text)
}

func TestNormalize_TextCollapsesWhitespace(t *testing.T) {
	v := normalize.Normalize("  Acme \t Holdings\n LLC ", constants.SemanticText)
	require.Equal(t, normalize.KindText, v.Kind)
	assert.Equal(t, "Acme Holdings LLC", v.Text)
	assert.Equal(t, "  Acme \t Holdings\n LLC ", v.Raw, "display casing and spacing untouched")
}

func TestTextEqual_CaseFoldedComparison(t *testing.T) {
	a := normalize.Normalize("ACME HOLDINGS", constants.SemanticText)
	b := normalize.Normalize("acme   holdings", constants.SemanticText)
	assert.True(t, a.TextEqual(b))

	c := normalize.Normalize("Atlas Holdings", constants.SemanticText)
	assert.False(t, a.TextEqual(c))
}

func TestNormalize_NeverPanicsOnGarbage(t *testing.T) {
	for _, raw := range []string{"", "\x00\xff", "   ", "$$$", "--"} {
		for _, st := range []constants.SemanticType{constants.SemanticNumeric, constants.SemanticDate, constants.SemanticText} {
			v := normalize.Normalize(raw, st)
			assert.NotEmpty(t, v.Kind)
		}
	}
}
