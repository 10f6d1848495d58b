package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// OCRResult rows are append-only: re-extraction inserts the next version,
// nothing ever updates a persisted row.
type OCRResult struct{ ent.Schema }

func (OCRResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_results"},
	}
}

func (OCRResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define composite indexes
		field.UUID("document_id", uuid.UUID{}).Immutable(),
		field.String("application_id").NotEmpty().Immutable(),
		field.String("field_key").NotEmpty().Immutable(),
		field.String("extracted_value").Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float32("confidence").Min(0).Max(1).Immutable(),
		field.Int("source_page").Min(1).Immutable(),
		field.Time("extracted_at").Default(time.Now).Immutable(),
		field.String("run_id").NotEmpty().Immutable(),
		field.Int("version").Min(1).Immutable(),
	}
}

func (OCRResult) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY results -> ONE document
		edge.From("document", Document.Type).
			Ref("results").
			Field("document_id").
			Immutable().
			Required().
			Unique(),
	}
}

func (OCRResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "field_key", "version").Unique(),
		index.Fields("application_id", "field_key"),
		index.Fields("application_id", "extracted_at"),
	}
}
