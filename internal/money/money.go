// Package money formats the currency amounts shown on KPI tiles. Amounts
// are summed as decimals so display totals don't pick up float artifacts
// from the loose numeric inputs.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Sum adds a series of float amounts exactly.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	f, _ := total.Float64()
	return f
}

// Format renders an amount as "$1,234.56". Negative amounts render as
// "-$1,234.56".
func Format(amount float64) string {
	d := decimal.NewFromFloat(amount)
	neg := d.IsNegative()
	s := d.Abs().StringFixed(2)

	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, c := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(frac)
	return b.String()
}

// FormatCompact renders an amount the way the net-worth tile does:
// "$nnnK" at or above a thousand, a signed "-$nnn" below zero, and a plain
// "$nnn" otherwise. Sub-dollar precision is dropped.
func FormatCompact(amount float64) string {
	d := decimal.NewFromFloat(amount)
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		k := d.Div(decimal.NewFromInt(1000)).Round(0)
		sign := ""
		if k.IsNegative() {
			sign = "-"
			k = k.Abs()
		}
		return sign + "$" + k.String() + "K"
	}
	whole := d.Round(0)
	if whole.IsNegative() {
		return "-$" + whole.Abs().String()
	}
	return "$" + whole.String()
}
