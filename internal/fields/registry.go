package fields

import (
	"sort"

	"github.com/werb210/ocr-reconciler/constants"
)

// Definition is one static schema entry for an extracted field key.
type Definition struct {
	FieldKey     string
	SemanticType constants.SemanticType
	Category     constants.DocumentCategory
	Required     bool
	Label        string
}

// Registry maps field keys to their definitions. It is configured at
// startup and read-only afterwards, so it is safe for concurrent use.
type Registry struct {
	defs map[string]Definition
}

func NewRegistry(defs []Definition) *Registry {
	m := make(map[string]Definition, len(defs))
	for _, d := range defs {
		m[d.FieldKey] = d
	}
	return &Registry{defs: m}
}

// Lookup returns the definition for key. Unknown keys get a synthetic
// text/other definition so callers never need a found flag to proceed.
func (r *Registry) Lookup(key string) (Definition, bool) {
	if d, ok := r.defs[key]; ok {
		return d, true
	}
	return Definition{
		FieldKey:     key,
		SemanticType: constants.SemanticText,
		Category:     constants.Other,
		Label:        key,
	}, false
}

// Required returns the field keys marked required, sorted ascending.
func (r *Registry) Required() []string {
	var keys []string
	for k, d := range r.defs {
		if d.Required {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// All returns every definition, sorted by field key for deterministic iteration.
func (r *Registry) All() []Definition {
	out := make([]Definition, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FieldKey < out[j].FieldKey })
	return out
}

// Default returns the deploy-time field schema for lending applications.
func Default() *Registry {
	return NewRegistry([]Definition{
		{FieldKey: "business_name", SemanticType: constants.SemanticText, Category: constants.Other, Required: true, Label: "Business Name"},
		{FieldKey: "requested_amount", SemanticType: constants.SemanticNumeric, Category: constants.Other, Required: true, Label: "Requested Amount"},
		{FieldKey: "ending_balance", SemanticType: constants.SemanticNumeric, Category: constants.CashFlow, Label: "Ending Balance"},
		{FieldKey: "beginning_balance", SemanticType: constants.SemanticNumeric, Category: constants.CashFlow, Label: "Beginning Balance"},
		{FieldKey: "average_daily_balance", SemanticType: constants.SemanticNumeric, Category: constants.CashFlow, Label: "Average Daily Balance"},
		{FieldKey: "statement_period_end", SemanticType: constants.SemanticDate, Category: constants.CashFlow, Label: "Statement Period End"},
		{FieldKey: "total_assets", SemanticType: constants.SemanticNumeric, Category: constants.BalanceSheet, Label: "Total Assets"},
		{FieldKey: "total_liabilities", SemanticType: constants.SemanticNumeric, Category: constants.BalanceSheet, Label: "Total Liabilities"},
		{FieldKey: "retained_earnings", SemanticType: constants.SemanticNumeric, Category: constants.BalanceSheet, Label: "Retained Earnings"},
		{FieldKey: "gross_revenue", SemanticType: constants.SemanticNumeric, Category: constants.IncomeStatement, Label: "Gross Revenue"},
		{FieldKey: "net_income", SemanticType: constants.SemanticNumeric, Category: constants.IncomeStatement, Label: "Net Income"},
		{FieldKey: "operating_expenses", SemanticType: constants.SemanticNumeric, Category: constants.IncomeStatement, Label: "Operating Expenses"},
		{FieldKey: "tax_year", SemanticType: constants.SemanticText, Category: constants.Taxes, Label: "Tax Year"},
		{FieldKey: "taxable_income", SemanticType: constants.SemanticNumeric, Category: constants.Taxes, Label: "Taxable Income"},
		{FieldKey: "ein", SemanticType: constants.SemanticText, Category: constants.Taxes, Label: "EIN"},
		{FieldKey: "contract_value", SemanticType: constants.SemanticNumeric, Category: constants.Contracts, Label: "Contract Value"},
		{FieldKey: "contract_start_date", SemanticType: constants.SemanticDate, Category: constants.Contracts, Label: "Contract Start Date"},
		{FieldKey: "counterparty_name", SemanticType: constants.SemanticText, Category: constants.Contracts, Label: "Counterparty Name"},
		{FieldKey: "invoice_total", SemanticType: constants.SemanticNumeric, Category: constants.Invoices, Label: "Invoice Total"},
		{FieldKey: "invoice_date", SemanticType: constants.SemanticDate, Category: constants.Invoices, Label: "Invoice Date"},
		{FieldKey: "invoice_number", SemanticType: constants.SemanticText, Category: constants.Invoices, Label: "Invoice Number"},
	})
}
