// Package money renders amounts and currency codes the way scanning banking
// apps expect them.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const defaultCurrency = "CHF"

// FormatAmount renders an amount with exactly two decimals, dot separator,
// no grouping and no symbol. A nil amount means "payer chooses" and renders
// as the empty string. Negative amounts are a caller contract violation and
// must be rejected at the request boundary.
func FormatAmount(amount *decimal.Decimal) string {
	if amount == nil {
		return ""
	}
	return amount.StringFixed(2)
}

// NormalizeCurrency upper-cases the code, defaulting to CHF when absent.
// No ISO 4217 membership check is performed.
func NormalizeCurrency(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return defaultCurrency
	}
	return strings.ToUpper(code)
}
