package fields_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werb210/ocr-reconciler/constants"
	"github.com/werb210/ocr-reconciler/internal/fields"
)

func TestLookup_KnownField(t *testing.T) {
	reg := fields.Default()

	def, ok := reg.Lookup("ending_balance")
	require.True(t, ok)
	assert.Equal(t, constants.SemanticNumeric, def.SemanticType)
	assert.Equal(t, constants.CashFlow, def.Category)
	assert.Equal(t, "Ending Balance", def.Label)
}

func TestLookup_UnknownFieldDefaultsToText(t *testing.T) {
	reg := fields.Default()

	def, ok := reg.Lookup("mystery_field")
	assert.False(t, ok)
	assert.Equal(t, constants.SemanticText, def.SemanticType)
	assert.Equal(t, constants.Other, def.Category)
	assert.Equal(t, "mystery_field", def.Label)
	assert.False(t, def.Required)
}

func TestRequired_SortedAndComplete(t *testing.T) {
	reg := fields.NewRegistry([]fields.Definition{
		{FieldKey: "zeta", Required: true},
		{FieldKey: "alpha", Required: true},
		{FieldKey: "mid", Required: false},
	})
	assert.Equal(t, []string{"alpha", "zeta"}, reg.Required())
}

func TestAll_DeterministicOrder(t *testing.T) {
	reg := fields.Default()
	first := reg.All()
	second := reg.All()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].FieldKey, second[i].FieldKey)
	}
}
