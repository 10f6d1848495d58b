// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// OCRResult is the predicate function for ocrresult builders.
type OCRResult func(*sql.Selector)
