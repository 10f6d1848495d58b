package normalize

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/werb210/ocr-reconciler/constants"
)

// Kind tags the parsed representation held by a Value.
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindDate    Kind = "date"
	KindText    Kind = "text"
)

// Value is the canonical form of one extracted string. Exactly one of
// Number/Date/Text is meaningful, selected by Kind. Raw always holds the
// original string for display; normalization never rewrites what the
// reviewer sees.
type Value struct {
	Kind   Kind
	Number decimal.Decimal
	Date   time.Time
	Text   string
	Raw    string
}

var reWhitespace = regexp.MustCompile(`\s+`)

// CollapseWhitespace trims and squeezes internal runs of whitespace.
// Conservative: casing is untouched, case-folding happens only inside
// equality checks.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}

// Normalize converts one raw extracted string into its canonical Value for
// the declared semantic type. It is total: parse failures degrade to
// KindText on the trimmed raw string, they never surface as errors.
func Normalize(raw string, semanticType constants.SemanticType) Value {
	switch semanticType {
	case constants.SemanticNumeric:
		if d, ok := ParseAmount(raw); ok {
			return Value{Kind: KindNumeric, Number: d, Raw: raw}
		}
	case constants.SemanticDate:
		if t, ok := ParseDate(raw); ok {
			return Value{Kind: KindDate, Date: t, Raw: raw}
		}
	}
	return Value{Kind: KindText, Text: CollapseWhitespace(raw), Raw: raw}
}

// TextEqual reports whether two normalized values are the same fact under text
// semantics: case-folded, whitespace-normalized, and two empties agree.
// Numeric and date equality live in the reconciliation tolerance policy,
// not here.
func (v Value) TextEqual(o Value) bool {
	return strings.EqualFold(v.Text, o.Text)
}
