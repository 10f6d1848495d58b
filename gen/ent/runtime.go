// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/werb210/ocr-reconciler/db/ent/schema"
	"github.com/werb210/ocr-reconciler/gen/ent/document"
	"github.com/werb210/ocr-reconciler/gen/ent/ocrresult"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescApplicationID is the schema descriptor for application_id field.
	documentDescApplicationID := documentFields[1].Descriptor()
	// document.ApplicationIDValidator is a validator for the "application_id" field. It is called by the builders before save.
	document.ApplicationIDValidator = documentDescApplicationID.Validators[0].(func(string) error)
	// documentDescCategory is the schema descriptor for category field.
	documentDescCategory := documentFields[2].Descriptor()
	// document.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	document.CategoryValidator = func() func(string) error {
		validators := documentDescCategory.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(category string) error {
			for _, fn := range fns {
				if err := fn(category); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescName is the schema descriptor for name field.
	documentDescName := documentFields[3].Descriptor()
	// document.NameValidator is a validator for the "name" field. It is called by the builders before save.
	document.NameValidator = documentDescName.Validators[0].(func(string) error)
	// documentDescUploadedAt is the schema descriptor for uploaded_at field.
	documentDescUploadedAt := documentFields[4].Descriptor()
	// document.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	document.DefaultUploadedAt = documentDescUploadedAt.Default.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	ocrresultFields := schema.OCRResult{}.Fields()
	_ = ocrresultFields
	// ocrresultDescApplicationID is the schema descriptor for application_id field.
	ocrresultDescApplicationID := ocrresultFields[2].Descriptor()
	// ocrresult.ApplicationIDValidator is a validator for the "application_id" field. It is called by the builders before save.
	ocrresult.ApplicationIDValidator = ocrresultDescApplicationID.Validators[0].(func(string) error)
	// ocrresultDescFieldKey is the schema descriptor for field_key field.
	ocrresultDescFieldKey := ocrresultFields[3].Descriptor()
	// ocrresult.FieldKeyValidator is a validator for the "field_key" field. It is called by the builders before save.
	ocrresult.FieldKeyValidator = ocrresultDescFieldKey.Validators[0].(func(string) error)
	// ocrresultDescConfidence is the schema descriptor for confidence field.
	ocrresultDescConfidence := ocrresultFields[5].Descriptor()
	// ocrresult.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	ocrresult.ConfidenceValidator = func() func(float32) error {
		validators := ocrresultDescConfidence.Validators
		fns := [...]func(float32) error{
			validators[0].(func(float32) error),
			validators[1].(func(float32) error),
		}
		return func(confidence float32) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// ocrresultDescSourcePage is the schema descriptor for source_page field.
	ocrresultDescSourcePage := ocrresultFields[6].Descriptor()
	// ocrresult.SourcePageValidator is a validator for the "source_page" field. It is called by the builders before save.
	ocrresult.SourcePageValidator = ocrresultDescSourcePage.Validators[0].(func(int) error)
	// ocrresultDescExtractedAt is the schema descriptor for extracted_at field.
	ocrresultDescExtractedAt := ocrresultFields[7].Descriptor()
	// ocrresult.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	ocrresult.DefaultExtractedAt = ocrresultDescExtractedAt.Default.(func() time.Time)
	// ocrresultDescRunID is the schema descriptor for run_id field.
	ocrresultDescRunID := ocrresultFields[8].Descriptor()
	// ocrresult.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	ocrresult.RunIDValidator = ocrresultDescRunID.Validators[0].(func(string) error)
	// ocrresultDescVersion is the schema descriptor for version field.
	ocrresultDescVersion := ocrresultFields[9].Descriptor()
	// ocrresult.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	ocrresult.VersionValidator = ocrresultDescVersion.Validators[0].(func(int) error)
	// ocrresultDescID is the schema descriptor for id field.
	ocrresultDescID := ocrresultFields[0].Descriptor()
	// ocrresult.DefaultID holds the default value on creation for the id field.
	ocrresult.DefaultID = ocrresultDescID.Default.(func() uuid.UUID)
}
