package constants

// SemanticType is the declared value type of an extracted field.
type SemanticType string

// Stable values (stored in field definitions, never per row).
const (
	SemanticNumeric SemanticType = "numeric" // currency and plain amounts
	SemanticDate    SemanticType = "date"    // calendar dates, no time component
	SemanticText    SemanticType = "text"    // free text, default for unknown keys
)
