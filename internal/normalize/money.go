package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	reCurrencySym = regexp.MustCompile(`[$€£¥]|(?i)\b(usd|cad|eur|gbp)\b`)
	reThousands   = regexp.MustCompile(`,`)
	reAmount      = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// ParseAmount parses a currency-ish string into an exact decimal.
// Handles currency symbols and codes, thousands separators, and
// accountant-style parentheses for negatives. OCR output is messy, so
// anything that does not reduce to a plain decimal is rejected rather
// than guessed at.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Decimal{}, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = reCurrencySym.ReplaceAllString(s, "")
	s = reThousands.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "-") {
		negative = !negative
		s = s[1:]
	}

	if !reAmount.MatchString(s) {
		return decimal.Decimal{}, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}
