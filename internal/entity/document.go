package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/werb210/ocr-reconciler/constants"
)

// Document represents one uploaded application file for data transfer between layers.
type Document struct {
	ID            uuid.UUID                  `json:"id"`
	ApplicationID string                     `json:"application_id"`
	Category      constants.DocumentCategory `json:"category"`
	Name          string                     `json:"name"`
	UploadedAt    time.Time                  `json:"uploaded_at"`
}
