package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount as a display string with a dollar sign,
// thousands separators and two decimal places, e.g. "$1,234.50".
// Negative amounts render as "-$1,234.50".
func FormatMoney(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	fixed := amount.Abs().StringFixed(2)

	intPart, fracPart, _ := strings.Cut(fixed, ".")
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// FormatPercent renders a 0-100 progress value like "42%".
func FormatPercent(pct float64) string {
	return decimal.NewFromFloat(pct).Round(0).String() + "%"
}
