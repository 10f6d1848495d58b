// Code generated by ent, DO NOT EDIT.

package ocrresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/werb210/ocr-reconciler/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLTE(FieldID, id))
}

// DocumentID applies equality check predicate on the "document_id" field. It's identical to DocumentIDEQ.
func DocumentID(v uuid.UUID) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldDocumentID, v))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldApplicationID, v))
}

// FieldKey applies equality check predicate on the "field_key" field. It's identical to FieldKeyEQ.
func FieldKey(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldFieldKey, v))
}

// ExtractedValue applies equality check predicate on the "extracted_value" field. It's identical to ExtractedValueEQ.
func ExtractedValue(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldExtractedValue, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float32) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldConfidence, v))
}

// SourcePage applies equality check predicate on the "source_page" field. It's identical to SourcePageEQ.
func SourcePage(v int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldSourcePage, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldExtractedAt, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldRunID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldVersion, v))
}

// DocumentIDEQ applies the EQ predicate on the "document_id" field.
func DocumentIDEQ(v uuid.UUID) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldDocumentID, v))
}

// DocumentIDNEQ applies the NEQ predicate on the "document_id" field.
func DocumentIDNEQ(v uuid.UUID) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNEQ(FieldDocumentID, v))
}

// DocumentIDIn applies the In predicate on the "document_id" field.
func DocumentIDIn(vs ...uuid.UUID) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldIn(FieldDocumentID, vs...))
}

// DocumentIDNotIn applies the NotIn predicate on the "document_id" field.
func DocumentIDNotIn(vs ...uuid.UUID) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNotIn(FieldDocumentID, vs...))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNotIn(FieldApplicationID, vs...))
}

// ApplicationIDGT applies the GT predicate on the "application_id" field.
func ApplicationIDGT(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGT(FieldApplicationID, v))
}

// ApplicationIDGTE applies the GTE predicate on the "application_id" field.
func ApplicationIDGTE(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGTE(FieldApplicationID, v))
}

// ApplicationIDLT applies the LT predicate on the "application_id" field.
func ApplicationIDLT(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLT(FieldApplicationID, v))
}

// ApplicationIDLTE applies the LTE predicate on the "application_id" field.
func ApplicationIDLTE(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLTE(FieldApplicationID, v))
}

// ApplicationIDContains applies the Contains predicate on the "application_id" field.
func ApplicationIDContains(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldContains(FieldApplicationID, v))
}

// ApplicationIDHasPrefix applies the HasPrefix predicate on the "application_id" field.
func ApplicationIDHasPrefix(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldHasPrefix(FieldApplicationID, v))
}

// ApplicationIDHasSuffix applies the HasSuffix predicate on the "application_id" field.
func ApplicationIDHasSuffix(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldHasSuffix(FieldApplicationID, v))
}

// ApplicationIDEqualFold applies the EqualFold predicate on the "application_id" field.
func ApplicationIDEqualFold(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEqualFold(FieldApplicationID, v))
}

// ApplicationIDContainsFold applies the ContainsFold predicate on the "application_id" field.
func ApplicationIDContainsFold(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldContainsFold(FieldApplicationID, v))
}

// FieldKeyEQ applies the EQ predicate on the "field_key" field.
func FieldKeyEQ(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldFieldKey, v))
}

// FieldKeyNEQ applies the NEQ predicate on the "field_key" field.
func FieldKeyNEQ(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNEQ(FieldFieldKey, v))
}

// FieldKeyIn applies the In predicate on the "field_key" field.
func FieldKeyIn(vs ...string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldIn(FieldFieldKey, vs...))
}

// FieldKeyNotIn applies the NotIn predicate on the "field_key" field.
func FieldKeyNotIn(vs ...string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNotIn(FieldFieldKey, vs...))
}

// FieldKeyGT applies the GT predicate on the "field_key" field.
func FieldKeyGT(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGT(FieldFieldKey, v))
}

// FieldKeyGTE applies the GTE predicate on the "field_key" field.
func FieldKeyGTE(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGTE(FieldFieldKey, v))
}

// FieldKeyLT applies the LT predicate on the "field_key" field.
func FieldKeyLT(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLT(FieldFieldKey, v))
}

// FieldKeyLTE applies the LTE predicate on the "field_key" field.
func FieldKeyLTE(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLTE(FieldFieldKey, v))
}

// FieldKeyContains applies the Contains predicate on the "field_key" field.
func FieldKeyContains(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldContains(FieldFieldKey, v))
}

// FieldKeyHasPrefix applies the HasPrefix predicate on the "field_key" field.
func FieldKeyHasPrefix(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldHasPrefix(FieldFieldKey, v))
}

// FieldKeyHasSuffix applies the HasSuffix predicate on the "field_key" field.
func FieldKeyHasSuffix(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldHasSuffix(FieldFieldKey, v))
}

// FieldKeyEqualFold applies the EqualFold predicate on the "field_key" field.
func FieldKeyEqualFold(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEqualFold(FieldFieldKey, v))
}

// FieldKeyContainsFold applies the ContainsFold predicate on the "field_key" field.
func FieldKeyContainsFold(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldContainsFold(FieldFieldKey, v))
}

// ExtractedValueEQ applies the EQ predicate on the "extracted_value" field.
func ExtractedValueEQ(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldExtractedValue, v))
}

// ExtractedValueNEQ applies the NEQ predicate on the "extracted_value" field.
func ExtractedValueNEQ(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNEQ(FieldExtractedValue, v))
}

// ExtractedValueIn applies the In predicate on the "extracted_value" field.
func ExtractedValueIn(vs ...string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldIn(FieldExtractedValue, vs...))
}

// ExtractedValueNotIn applies the NotIn predicate on the "extracted_value" field.
func ExtractedValueNotIn(vs ...string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNotIn(FieldExtractedValue, vs...))
}

// ExtractedValueGT applies the GT predicate on the "extracted_value" field.
func ExtractedValueGT(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGT(FieldExtractedValue, v))
}

// ExtractedValueGTE applies the GTE predicate on the "extracted_value" field.
func ExtractedValueGTE(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGTE(FieldExtractedValue, v))
}

// ExtractedValueLT applies the LT predicate on the "extracted_value" field.
func ExtractedValueLT(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLT(FieldExtractedValue, v))
}

// ExtractedValueLTE applies the LTE predicate on the "extracted_value" field.
func ExtractedValueLTE(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLTE(FieldExtractedValue, v))
}

// ExtractedValueContains applies the Contains predicate on the "extracted_value" field.
func ExtractedValueContains(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldContains(FieldExtractedValue, v))
}

// ExtractedValueHasPrefix applies the HasPrefix predicate on the "extracted_value" field.
func ExtractedValueHasPrefix(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldHasPrefix(FieldExtractedValue, v))
}

// ExtractedValueHasSuffix applies the HasSuffix predicate on the "extracted_value" field.
func ExtractedValueHasSuffix(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldHasSuffix(FieldExtractedValue, v))
}

// ExtractedValueEqualFold applies the EqualFold predicate on the "extracted_value" field.
func ExtractedValueEqualFold(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEqualFold(FieldExtractedValue, v))
}

// ExtractedValueContainsFold applies the ContainsFold predicate on the "extracted_value" field.
func ExtractedValueContainsFold(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldContainsFold(FieldExtractedValue, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float32) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float32) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float32) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float32) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float32) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float32) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float32) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float32) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLTE(FieldConfidence, v))
}

// SourcePageEQ applies the EQ predicate on the "source_page" field.
func SourcePageEQ(v int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldSourcePage, v))
}

// SourcePageNEQ applies the NEQ predicate on the "source_page" field.
func SourcePageNEQ(v int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNEQ(FieldSourcePage, v))
}

// SourcePageIn applies the In predicate on the "source_page" field.
func SourcePageIn(vs ...int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldIn(FieldSourcePage, vs...))
}

// SourcePageNotIn applies the NotIn predicate on the "source_page" field.
func SourcePageNotIn(vs ...int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNotIn(FieldSourcePage, vs...))
}

// SourcePageGT applies the GT predicate on the "source_page" field.
func SourcePageGT(v int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGT(FieldSourcePage, v))
}

// SourcePageGTE applies the GTE predicate on the "source_page" field.
func SourcePageGTE(v int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGTE(FieldSourcePage, v))
}

// SourcePageLT applies the LT predicate on the "source_page" field.
func SourcePageLT(v int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLT(FieldSourcePage, v))
}

// SourcePageLTE applies the LTE predicate on the "source_page" field.
func SourcePageLTE(v int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLTE(FieldSourcePage, v))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLTE(FieldExtractedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldContainsFold(FieldRunID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int) predicate.OCRResult {
	return predicate.OCRResult(sql.FieldLTE(FieldVersion, v))
}

// HasDocument applies the HasEdge predicate on the "document" edge.
func HasDocument() predicate.OCRResult {
	return predicate.OCRResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentTable, DocumentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentWith applies the HasEdge predicate on the "document" edge with a given conditions (other predicates).
func HasDocumentWith(preds ...predicate.Document) predicate.OCRResult {
	return predicate.OCRResult(func(s *sql.Selector) {
		step := newDocumentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.OCRResult) predicate.OCRResult {
	return predicate.OCRResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.OCRResult) predicate.OCRResult {
	return predicate.OCRResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.OCRResult) predicate.OCRResult {
	return predicate.OCRResult(sql.NotPredicates(p))
}
