package reconcile

import (
	"github.com/google/uuid"

	"github.com/werb210/ocr-reconciler/internal/entity"
)

// moreCurrent reports whether a supersedes b as the current observation of
// one document+field. Highest version wins; equal versions fall back to the
// later extraction time, then to the lexicographically greater run id so the
// choice is deterministic even for degenerate inputs.
func moreCurrent(a, b *entity.OCRResult) bool {
	if a.Version != b.Version {
		return a.Version > b.Version
	}
	if !a.ExtractedAt.Equal(b.ExtractedAt) {
		return a.ExtractedAt.After(b.ExtractedAt)
	}
	return a.RunID > b.RunID
}

// CurrentPerDocument reduces one field group to the single current record
// per document. Records are append-only, so "current" is a pure function of
// the rows, never of arrival order.
func CurrentPerDocument(group []*entity.OCRResult) map[uuid.UUID]*entity.OCRResult {
	current := make(map[uuid.UUID]*entity.OCRResult)
	for _, rec := range group {
		best, ok := current[rec.DocumentID]
		if !ok || moreCurrent(rec, best) {
			current[rec.DocumentID] = rec
		}
	}
	return current
}
