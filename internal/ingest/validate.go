package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// RecordPayload is one extracted observation as the provider sends it.
type RecordPayload struct {
	ApplicationID  string  `json:"application_id" validate:"required"`
	DocumentID     string  `json:"document_id" validate:"required,uuid"`
	FieldKey       string  `json:"field_key" validate:"required"`
	ExtractedValue string  `json:"extracted_value"`
	Confidence     float32 `json:"confidence" validate:"gte=0,lte=1"`
	SourcePage     int     `json:"source_page" validate:"gte=1"`
	ExtractedAt    string  `json:"extracted_at" validate:"required"`
	RunID          string  `json:"run_id" validate:"required"`
}

// BatchPayload is the provider's result envelope for one run.
type BatchPayload struct {
	Records []RecordPayload `json:"records"`
}

// batchSchema is the structural contract for provider payloads. Structural
// violations reject the whole batch; per-record value problems are handled
// record by record in the usecase.
var batchSchema = map[string]any{
	"type":     "object",
	"required": []any{"records"},
	"properties": map[string]any{
		"records": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"application_id", "document_id", "field_key", "run_id"},
				"properties": map[string]any{
					"application_id":  map[string]any{"type": "string"},
					"document_id":     map[string]any{"type": "string"},
					"field_key":       map[string]any{"type": "string"},
					"extracted_value": map[string]any{"type": "string"},
					"confidence":      map[string]any{"type": "number"},
					"source_page":     map[string]any{"type": "integer"},
					"extracted_at":    map[string]any{"type": "string"},
					"run_id":          map[string]any{"type": "string"},
				},
			},
		},
	},
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}

// DecodeBatch schema-validates and decodes a provider payload.
func DecodeBatch(data []byte) (*BatchPayload, error) {
	if err := ValidateJSONAgainstSchema(batchSchema, data); err != nil {
		return nil, err
	}
	var batch BatchPayload
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("decode batch: %w", err)
	}
	return &batch, nil
}
