package constants

import (
	"strings"
)

// DocumentCategory classifies an uploaded application document.
type DocumentCategory string

const (
	BalanceSheet    DocumentCategory = "balance-sheet"
	IncomeStatement DocumentCategory = "income-statement"
	CashFlow        DocumentCategory = "cash-flow"
	Taxes           DocumentCategory = "taxes"
	Contracts       DocumentCategory = "contracts"
	Invoices        DocumentCategory = "invoices"
	Other           DocumentCategory = "other"
)

// categoryOrder is the fixed presentation order used by the insights view.
var categoryOrder = []DocumentCategory{
	BalanceSheet,
	IncomeStatement,
	CashFlow,
	Taxes,
	Contracts,
	Invoices,
	Other,
}

// CategoryOrder returns the fixed presentation order of categories.
func CategoryOrder() []DocumentCategory {
	out := make([]DocumentCategory, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

func AsStringSlice() []string {
	result := make([]string, len(categoryOrder))
	for i, cat := range categoryOrder {
		result[i] = string(cat)
	}
	return result
}

// Canonicalize maps free-form category text onto a DocumentCategory.
// Unrecognized input maps to Other with ok=false.
func Canonicalize(input string) (DocumentCategory, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]DocumentCategory{
		"balance sheet":    BalanceSheet,
		"bs":               BalanceSheet,
		"income statement": IncomeStatement,
		"p&l":              IncomeStatement,
		"profit and loss":  IncomeStatement,
		"pnl":              IncomeStatement,
		"cash flow":        CashFlow,
		"cashflow":         CashFlow,
		"bank statement":   CashFlow,
		"tax":              Taxes,
		"tax return":       Taxes,
		"contract":         Contracts,
		"agreement":        Contracts,
		"invoice":          Invoices,
		"receipt":          Invoices,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	for _, cat := range categoryOrder {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
