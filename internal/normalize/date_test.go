package normalize_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werb210/ocr-reconciler/internal/normalize"
)

func TestParseDate_Layouts(t *testing.T) {
	want := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{
		"2024-03-31",
		"2024-03-31T17:45:00Z",
		"03/31/2024",
		"3/31/2024",
		"Mar 31, 2024",
		"March 31, 2024",
		"31 Mar 2024",
	} {
		got, ok := normalize.ParseDate(raw)
		require.True(t, ok, "expected %q to parse", raw)
		assert.True(t, got.Equal(want), "%q parsed to %s", raw, got)
	}
}

func TestParseDate_TimeComponentDiscarded(t *testing.T) {
	got, ok := normalize.ParseDate("2024-03-31T23:59:59Z")
	require.True(t, ok)
	assert.Equal(t, 0, got.Hour())
	assert.Equal(t, 0, got.Minute())
}

func TestParseDate_Rejects(t *testing.T) {
	for _, raw := range []string{"", "last Tuesday", "2024-13-41", "Q1 2024"} {
		_, ok := normalize.ParseDate(raw)
		assert.False(t, ok, "expected rejection for %q", raw)
	}
}
