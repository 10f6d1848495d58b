package constants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/werb210/ocr-reconciler/constants"
)

func TestCanonicalize(t *testing.T) {
	cases := map[string]constants.DocumentCategory{
		"balance-sheet":    constants.BalanceSheet,
		"Balance Sheet":    constants.BalanceSheet,
		"P&L":              constants.IncomeStatement,
		"bank statement":   constants.CashFlow,
		"tax return":       constants.Taxes,
		"agreement":        constants.Contracts,
		"invoice":          constants.Invoices,
		"other":            constants.Other,
	}
	for input, want := range cases {
		got, ok := constants.Canonicalize(input)
		assert.True(t, ok, "expected %q to canonicalize", input)
		assert.Equal(t, want, got)
	}

	got, ok := constants.Canonicalize("mystery paperwork")
	assert.False(t, ok)
	assert.Equal(t, constants.Other, got)

	got, ok = constants.Canonicalize("")
	assert.False(t, ok)
	assert.Equal(t, constants.Other, got)
}

func TestCategoryOrder_FixedAndCopied(t *testing.T) {
	order := constants.CategoryOrder()
	assert.Equal(t, constants.BalanceSheet, order[0])
	assert.Equal(t, constants.Other, order[len(order)-1])

	order[0] = constants.Other
	assert.Equal(t, constants.BalanceSheet, constants.CategoryOrder()[0], "callers get a copy")
}
