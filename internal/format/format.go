// Package format renders numbers for display in the en-US locale.
//
// Rounding is applied to the shortest decimal form of a float, half away
// from zero, so 1.005 renders as "$1.01" and -1.05 as "-1.1%". Values that
// round to zero carry no sign. Non-finite inputs produce a best-effort string
// instead of panicking.
package format

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency renders value as US dollars with thousands separators and
// two decimal places: 1234.5 becomes "$1,234.50".
func FormatCurrency(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "$∞"
	case math.IsInf(value, -1):
		return "-$∞"
	}
	return FormatMoney(decimal.NewFromFloat(value))
}

// FormatMoney is FormatCurrency for decimal amounts.
func FormatMoney(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	fixed := d.StringFixed(2)
	frac := fixed[strings.IndexByte(fixed, '.'):]
	return sign + "$" + humanize.BigComma(d.Truncate(0).BigInt()) + frac
}

// FormatPercentage renders value with one decimal place and a percent sign:
// 12.34 becomes "12.3%".
func FormatPercentage(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN%"
	case math.IsInf(value, 1):
		return "Infinity%"
	case math.IsInf(value, -1):
		return "-Infinity%"
	}

	d := decimal.NewFromFloat(value).Round(1)
	if d.IsZero() {
		d = decimal.Zero
	}
	return d.StringFixed(1) + "%"
}
