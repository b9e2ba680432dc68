package utils

import (
	"github.com/shopspring/decimal"
)

// FormatPence renders an integer pence amount as a major-unit decimal string.
// Example: 12345 returns "123.45"; -50 returns "-0.50".
func FormatPence(pence int64) string {
	return decimal.NewFromInt(pence).Shift(-2).StringFixed(2)
}

// FormatPenceWithSymbol renders an integer pence amount prefixed with a
// currency symbol, keeping the sign outside the symbol.
// Example: (-12345, "£") returns "-£123.45".
func FormatPenceWithSymbol(pence int64, symbol string) string {
	if pence < 0 {
		return "-" + symbol + FormatPence(-pence)
	}
	return symbol + FormatPence(pence)
}
