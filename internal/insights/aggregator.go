package insights

import (
	"sort"

	"github.com/google/uuid"

	"github.com/werb210/ocr-reconciler/constants"
	"github.com/werb210/ocr-reconciler/internal/entity"
	"github.com/werb210/ocr-reconciler/internal/fields"
	"github.com/werb210/ocr-reconciler/internal/reconcile"
)

// Row is one document's current value for one field, shaped for the UI.
type Row struct {
	FieldKey         string                     `json:"fieldKey"`
	Label            string                     `json:"label"`
	DocumentID       uuid.UUID                  `json:"documentId"`
	DocumentName     string                     `json:"documentName"`
	DocumentCategory constants.DocumentCategory `json:"documentCategory"`
	Value            string                     `json:"value"`
	Conflict         bool                       `json:"conflict"`
	ComparisonValues []string                   `json:"comparisonValues"`
}

// CategoryGroup holds the rows of one category in presentation order.
type CategoryGroup struct {
	Category constants.DocumentCategory `json:"category"`
	Rows     []Row                      `json:"rows"`
}

// ViewModel is the category-grouped insights view consumed by the portal UI.
type ViewModel struct {
	Categories []CategoryGroup `json:"categories"`
}

// BuildInsights reshapes current records plus the comparison outcome into the
// fixed-category view. Categories appear in their fixed order; rows within a
// category sort by label. Fields with no definition land under "other".
func BuildInsights(documents []*entity.Document, records []*entity.OCRResult, comparison reconcile.ComparisonResult, registry *fields.Registry) ViewModel {
	docNames := make(map[uuid.UUID]string, len(documents))
	for _, d := range documents {
		docNames[d.ID] = d.Name
	}

	byField := make(map[string][]*entity.OCRResult)
	for _, rec := range records {
		if rec == nil || rec.FieldKey == "" || rec.ExtractedValue == "" {
			continue
		}
		byField[rec.FieldKey] = append(byField[rec.FieldKey], rec)
	}

	buckets := make(map[constants.DocumentCategory][]Row)
	for fieldKey, group := range byField {
		def, _ := registry.Lookup(fieldKey)
		current := reconcile.CurrentPerDocument(group)
		for _, rec := range current {
			row := Row{
				FieldKey:         fieldKey,
				Label:            def.Label,
				DocumentID:       rec.DocumentID,
				DocumentName:     docNames[rec.DocumentID],
				DocumentCategory: def.Category,
				Value:            rec.ExtractedValue,
				ComparisonValues: []string{},
			}
			if flag, ok := comparison.FlagFor(rec.DocumentID, fieldKey); ok {
				row.Conflict = true
				row.ComparisonValues = distinctValues(flag.ConflictsWith)
			}
			buckets[def.Category] = append(buckets[def.Category], row)
		}
	}

	vm := ViewModel{Categories: []CategoryGroup{}}
	for _, cat := range constants.CategoryOrder() {
		rows := buckets[cat]
		if len(rows) == 0 {
			continue
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Label != rows[j].Label {
				return rows[i].Label < rows[j].Label
			}
			if rows[i].FieldKey != rows[j].FieldKey {
				return rows[i].FieldKey < rows[j].FieldKey
			}
			return rows[i].DocumentID.String() < rows[j].DocumentID.String()
		})
		vm.Categories = append(vm.Categories, CategoryGroup{Category: cat, Rows: rows})
	}
	return vm
}

// distinctValues keeps the opposing values in discovery order, deduplicated.
func distinctValues(refs []reconcile.ValueRef) []string {
	seen := make(map[string]struct{}, len(refs))
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		if _, ok := seen[ref.Value]; ok {
			continue
		}
		seen[ref.Value] = struct{}{}
		out = append(out, ref.Value)
	}
	return out
}
