package entity

import (
	"time"

	"github.com/google/uuid"
)

// OCRResult is one OCR observation of one field on one document.
// Rows are append-only: a re-extraction inserts a new row with an
// incremented version, it never updates an existing one.
type OCRResult struct {
	ID             uuid.UUID `json:"id"`
	ApplicationID  string    `json:"application_id"`
	DocumentID     uuid.UUID `json:"document_id"`
	FieldKey       string    `json:"field_key"`
	ExtractedValue string    `json:"extracted_value"`
	Confidence     float32   `json:"confidence"`
	SourcePage     int       `json:"source_page"`
	ExtractedAt    time.Time `json:"extracted_at"`
	RunID          string    `json:"run_id"`
	Version        int       `json:"version"`
}
