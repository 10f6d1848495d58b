// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/werb210/ocr-reconciler/gen/ent/document"
	"github.com/werb210/ocr-reconciler/gen/ent/ocrresult"
)

// OCRResult is the model entity for the OCRResult schema.
type OCRResult struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// DocumentID holds the value of the "document_id" field.
	DocumentID uuid.UUID `json:"document_id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID string `json:"application_id,omitempty"`
	// FieldKey holds the value of the "field_key" field.
	FieldKey string `json:"field_key,omitempty"`
	// ExtractedValue holds the value of the "extracted_value" field.
	ExtractedValue string `json:"extracted_value,omitempty"`
	// Confidence holds the value of the "confidence" field.
	Confidence float32 `json:"confidence,omitempty"`
	// SourcePage holds the value of the "source_page" field.
	SourcePage int `json:"source_page,omitempty"`
	// ExtractedAt holds the value of the "extracted_at" field.
	ExtractedAt time.Time `json:"extracted_at,omitempty"`
	// RunID holds the value of the "run_id" field.
	RunID string `json:"run_id,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the OCRResultQuery when eager-loading is set.
	Edges        OCRResultEdges `json:"edges"`
	selectValues sql.SelectValues
}

// OCRResultEdges holds the relations/edges for other nodes in the graph.
type OCRResultEdges struct {
	// Document holds the value of the document edge.
	Document *Document `json:"document,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentOrErr returns the Document value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e OCRResultEdges) DocumentOrErr() (*Document, error) {
	if e.Document != nil {
		return e.Document, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "document"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*OCRResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case ocrresult.FieldConfidence:
			values[i] = new(sql.NullFloat64)
		case ocrresult.FieldSourcePage, ocrresult.FieldVersion:
			values[i] = new(sql.NullInt64)
		case ocrresult.FieldApplicationID, ocrresult.FieldFieldKey, ocrresult.FieldExtractedValue, ocrresult.FieldRunID:
			values[i] = new(sql.NullString)
		case ocrresult.FieldExtractedAt:
			values[i] = new(sql.NullTime)
		case ocrresult.FieldID, ocrresult.FieldDocumentID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the OCRResult fields.
func (_m *OCRResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case ocrresult.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case ocrresult.FieldDocumentID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field document_id", values[i])
			} else if value != nil {
				_m.DocumentID = *value
			}
		case ocrresult.FieldApplicationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value.Valid {
				_m.ApplicationID = value.String
			}
		case ocrresult.FieldFieldKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field field_key", values[i])
			} else if value.Valid {
				_m.FieldKey = value.String
			}
		case ocrresult.FieldExtractedValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_value", values[i])
			} else if value.Valid {
				_m.ExtractedValue = value.String
			}
		case ocrresult.FieldConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field confidence", values[i])
			} else if value.Valid {
				_m.Confidence = float32(value.Float64)
			}
		case ocrresult.FieldSourcePage:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field source_page", values[i])
			} else if value.Valid {
				_m.SourcePage = int(value.Int64)
			}
		case ocrresult.FieldExtractedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field extracted_at", values[i])
			} else if value.Valid {
				_m.ExtractedAt = value.Time
			}
		case ocrresult.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case ocrresult.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the OCRResult.
// This includes values selected through modifiers, order, etc.
func (_m *OCRResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocument queries the "document" edge of the OCRResult entity.
func (_m *OCRResult) QueryDocument() *DocumentQuery {
	return NewOCRResultClient(_m.config).QueryDocument(_m)
}

// Update returns a builder for updating this OCRResult.
// Note that you need to call OCRResult.Unwrap() before calling this method if this OCRResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *OCRResult) Update() *OCRResultUpdateOne {
	return NewOCRResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the OCRResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *OCRResult) Unwrap() *OCRResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: OCRResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *OCRResult) String() string {
	var builder strings.Builder
	builder.WriteString("OCRResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("document_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentID))
	builder.WriteString(", ")
	builder.WriteString("application_id=")
	builder.WriteString(_m.ApplicationID)
	builder.WriteString(", ")
	builder.WriteString("field_key=")
	builder.WriteString(_m.FieldKey)
	builder.WriteString(", ")
	builder.WriteString("extracted_value=")
	builder.WriteString(_m.ExtractedValue)
	builder.WriteString(", ")
	builder.WriteString("confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Confidence))
	builder.WriteString(", ")
	builder.WriteString("source_page=")
	builder.WriteString(fmt.Sprintf("%v", _m.SourcePage))
	builder.WriteString(", ")
	builder.WriteString("extracted_at=")
	builder.WriteString(_m.ExtractedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteByte(')')
	return builder.String()
}

// OCRResults is a parsable slice of OCRResult.
type OCRResults []*OCRResult
