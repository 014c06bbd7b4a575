package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatIDR formats an amount as Indonesian rupiah for display, e.g.
// 1500000 -> "Rp 1.500.000". IDR has no fractional sub-unit, so the amount is
// rounded to whole rupiah first.
func FormatIDR(amount decimal.Decimal) string {
	whole := amount.Round(0).String()

	negative := strings.HasPrefix(whole, "-")
	digits := strings.TrimPrefix(whole, "-")

	var b strings.Builder
	if negative {
		b.WriteString("-")
	}
	b.WriteString("Rp ")
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteString(".")
		}
		b.WriteRune(d)
	}
	return b.String()
}
