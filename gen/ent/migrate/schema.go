// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "application_id", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_application_id",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1]},
			},
			{
				Name:    "document_application_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[4]},
			},
		},
	}
	// OcrResultsColumns holds the columns for the "ocr_results" table.
	OcrResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "application_id", Type: field.TypeString},
		{Name: "field_key", Type: field.TypeString},
		{Name: "extracted_value", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "confidence", Type: field.TypeFloat32},
		{Name: "source_page", Type: field.TypeInt},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// OcrResultsTable holds the schema information for the "ocr_results" table.
	OcrResultsTable = &schema.Table{
		Name:       "ocr_results",
		Columns:    OcrResultsColumns,
		PrimaryKey: []*schema.Column{OcrResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "ocr_results_documents_results",
				Columns:    []*schema.Column{OcrResultsColumns[9]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "ocrresult_document_id_field_key_version",
				Unique:  true,
				Columns: []*schema.Column{OcrResultsColumns[9], OcrResultsColumns[2], OcrResultsColumns[8]},
			},
			{
				Name:    "ocrresult_application_id_field_key",
				Unique:  false,
				Columns: []*schema.Column{OcrResultsColumns[1], OcrResultsColumns[2]},
			},
			{
				Name:    "ocrresult_application_id_extracted_at",
				Unique:  false,
				Columns: []*schema.Column{OcrResultsColumns[1], OcrResultsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		OcrResultsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	OcrResultsTable.ForeignKeys[0].RefTable = DocumentsTable
	OcrResultsTable.Annotation = &entsql.Annotation{
		Table: "ocr_results",
	}
}
