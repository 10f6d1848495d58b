package reconcile

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/werb210/ocr-reconciler/internal/entity"
	"github.com/werb210/ocr-reconciler/internal/fields"
	"github.com/werb210/ocr-reconciler/internal/normalize"
)

// SeverityConflict is the only severity currently emitted.
const SeverityConflict = "conflict"

// DefaultMaxGroupDocs caps the number of documents compared within one field
// group. Pairwise comparison is quadratic; a group past the cap is skipped
// and reported rather than allowed to dominate the request.
const DefaultMaxGroupDocs = 200

// ValueRef is one document's value for a field, as referenced by a flag.
type ValueRef struct {
	DocumentID uuid.UUID `json:"document_id"`
	Value      string    `json:"value"`
}

// MismatchFlag records that one document's value for a field disagrees with
// at least one other document. Every contributing record gets its own flag,
// so a two-way disagreement produces two flags for the same field key.
type MismatchFlag struct {
	FieldKey      string     `json:"field_key"`
	DocumentID    uuid.UUID  `json:"document_id"`
	Value         string     `json:"value"`
	ConflictsWith []ValueRef `json:"conflicts_with"`
	Severity      string     `json:"severity"`
}

// ComparisonResult is the reconciliation output for one application.
type ComparisonResult struct {
	MismatchFlags         []MismatchFlag `json:"mismatch_flags"`
	MissingRequiredFields []string       `json:"missing_required_fields"`
	SkippedFields         []string       `json:"skipped_fields,omitempty"`
}

// Engine compares extracted field values across the documents of one
// application. It holds only configuration, no mutable state, so a single
// instance is safe for concurrent use from many request handlers.
type Engine struct {
	registry     *fields.Registry
	tol          Tolerance
	maxGroupDocs int
	logger       *slog.Logger
}

func NewEngine(registry *fields.Registry, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		registry:     registry,
		tol:          DefaultTolerance(),
		maxGroupDocs: DefaultMaxGroupDocs,
		logger:       logger,
	}
}

// WithTolerance overrides the default tolerance policy.
func (e *Engine) WithTolerance(tol Tolerance) *Engine {
	e.tol = tol
	return e
}

// WithMaxGroupDocs overrides the per-group document cap.
func (e *Engine) WithMaxGroupDocs(n int) *Engine {
	if n > 0 {
		e.maxGroupDocs = n
	}
	return e
}

// Compare reconciles a snapshot of extracted records. Data-quality problems
// (malformed rows, unparseable values, unknown keys) degrade locally and
// never fail the whole comparison. Output ordering is deterministic:
// flags ascend by field key then document id.
func (e *Engine) Compare(records []*entity.OCRResult) ComparisonResult {
	groups := make(map[string][]*entity.OCRResult)
	for _, rec := range records {
		if rec == nil {
			continue
		}
		if rec.FieldKey == "" || rec.ExtractedValue == "" {
			e.logger.Warn("dropping malformed ocr record",
				"document_id", rec.DocumentID, "field_key", rec.FieldKey, "run_id", rec.RunID)
			continue
		}
		groups[rec.FieldKey] = append(groups[rec.FieldKey], rec)
	}

	result := ComparisonResult{
		MismatchFlags:         []MismatchFlag{},
		MissingRequiredFields: []string{},
	}

	for fieldKey, group := range groups {
		current := CurrentPerDocument(group)
		if len(current) < 2 {
			continue
		}
		if len(current) > e.maxGroupDocs {
			e.logger.Warn("comparison skipped: too many documents for field",
				"field_key", fieldKey, "documents", len(current), "cap", e.maxGroupDocs)
			result.SkippedFields = append(result.SkippedFields, fieldKey)
			continue
		}

		def, _ := e.registry.Lookup(fieldKey)

		type docValue struct {
			rec  *entity.OCRResult
			norm normalize.Value
		}
		values := make([]docValue, 0, len(current))
		for _, rec := range current {
			values = append(values, docValue{
				rec:  rec,
				norm: normalize.Normalize(rec.ExtractedValue, def.SemanticType),
			})
		}
		// stable iteration for deterministic conflicts_with ordering
		sort.Slice(values, func(i, j int) bool {
			return values[i].rec.DocumentID.String() < values[j].rec.DocumentID.String()
		})

		conflicts := make(map[uuid.UUID][]ValueRef)
		for i := 0; i < len(values); i++ {
			for j := i + 1; j < len(values); j++ {
				if e.agree(values[i].norm, values[j].norm) {
					continue
				}
				a, b := values[i], values[j]
				conflicts[a.rec.DocumentID] = append(conflicts[a.rec.DocumentID],
					ValueRef{DocumentID: b.rec.DocumentID, Value: b.rec.ExtractedValue})
				conflicts[b.rec.DocumentID] = append(conflicts[b.rec.DocumentID],
					ValueRef{DocumentID: a.rec.DocumentID, Value: a.rec.ExtractedValue})
			}
		}
		if len(conflicts) == 0 {
			continue
		}

		for _, v := range values {
			opposing, ok := conflicts[v.rec.DocumentID]
			if !ok {
				continue
			}
			result.MismatchFlags = append(result.MismatchFlags, MismatchFlag{
				FieldKey:      fieldKey,
				DocumentID:    v.rec.DocumentID,
				Value:         v.rec.ExtractedValue,
				ConflictsWith: opposing,
				Severity:      SeverityConflict,
			})
		}
	}

	sort.Slice(result.MismatchFlags, func(i, j int) bool {
		a, b := result.MismatchFlags[i], result.MismatchFlags[j]
		if a.FieldKey != b.FieldKey {
			return a.FieldKey < b.FieldKey
		}
		return a.DocumentID.String() < b.DocumentID.String()
	})
	sort.Strings(result.SkippedFields)

	for _, key := range e.registry.Required() {
		if len(groups[key]) == 0 {
			result.MissingRequiredFields = append(result.MissingRequiredFields, key)
		}
	}

	return result
}

// agree applies the per-kind comparison rule. Mixed kinds (one side parsed,
// the other fell back to text) are compared under text semantics on the raw
// strings so an OCR glitch reads as a conflict, not a silent match.
func (e *Engine) agree(a, b normalize.Value) bool {
	if a.Kind == normalize.KindNumeric && b.Kind == normalize.KindNumeric {
		return e.tol.NumericMatch(a.Number, b.Number)
	}
	if a.Kind == normalize.KindDate && b.Kind == normalize.KindDate {
		return e.tol.DateMatch(a.Date, b.Date)
	}
	return strings.EqualFold(textOf(a), textOf(b))
}

func textOf(v normalize.Value) string {
	if v.Kind == normalize.KindText {
		return v.Text
	}
	return normalize.CollapseWhitespace(v.Raw)
}

// HasConflict reports whether the given document+field pair carries a flag.
func (r ComparisonResult) HasConflict(documentID uuid.UUID, fieldKey string) bool {
	for _, f := range r.MismatchFlags {
		if f.FieldKey == fieldKey && f.DocumentID == documentID {
			return true
		}
	}
	return false
}

// FlagFor returns the flag for a document+field pair, if any.
func (r ComparisonResult) FlagFor(documentID uuid.UUID, fieldKey string) (MismatchFlag, bool) {
	for _, f := range r.MismatchFlags {
		if f.FieldKey == fieldKey && f.DocumentID == documentID {
			return f, true
		}
	}
	return MismatchFlag{}, false
}
