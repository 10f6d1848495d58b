package ingest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/werb210/ocr-reconciler/internal/ingest"
)

func TestDecodeBatch_ValidPayload(t *testing.T) {
	data := []byte(`{
		"records": [
			{
				"application_id": "app-1",
				"document_id": "5f6d22c9-9262-4f6f-a032-45f5be0eea53",
				"field_key": "ending_balance",
				"extracted_value": "$12,340.00",
				"confidence": 0.97,
				"source_page": 2,
				"extracted_at": "2024-05-01T12:00:00Z",
				"run_id": "run-1"
			}
		]
	}`)

	batch, err := ingest.DecodeBatch(data)
	require.NoError(t, err)
	require.Len(t, batch.Records, 1)
	assert.Equal(t, "ending_balance", batch.Records[0].FieldKey)
	assert.InDelta(t, 0.97, float64(batch.Records[0].Confidence), 1e-6)
}

func TestDecodeBatch_RejectsMissingRecords(t *testing.T) {
	_, err := ingest.DecodeBatch([]byte(`{"results": []}`))
	assert.Error(t, err)
}

func TestDecodeBatch_RejectsWrongTypes(t *testing.T) {
	_, err := ingest.DecodeBatch([]byte(`{
		"records": [{"application_id": "app-1", "document_id": 42, "field_key": "x", "run_id": "r"}]
	}`))
	assert.Error(t, err)
}

func TestDecodeBatch_RejectsNonJSON(t *testing.T) {
	_, err := ingest.DecodeBatch([]byte(`not json at all`))
	assert.Error(t, err)
}

func TestDecodeBatch_EmptyRecordsIsValid(t *testing.T) {
	batch, err := ingest.DecodeBatch([]byte(`{"records": []}`))
	require.NoError(t, err)
	assert.Empty(t, batch.Records)
}
