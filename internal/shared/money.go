package shared

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usdPrinter = message.NewPrinter(language.AmericanEnglish)

// FixedAmount renders v with exactly two decimals and no grouping.
func FixedAmount(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// DollarAmount prefixes FixedAmount with a dollar sign, as the sheet tables do.
func DollarAmount(v float64) string {
	return "$" + FixedAmount(v)
}

// USD renders v as grouped US currency, e.g. -$1,234.50.
func USD(v float64) string {
	rounded := decimal.NewFromFloat(math.Abs(v)).Round(2).InexactFloat64()
	sign := ""
	if v < 0 && rounded != 0 {
		sign = "-"
	}
	return sign + "$" + usdPrinter.Sprintf("%.2f", rounded)
}

// Percent renders a percentage with two decimals and an explicit sign.
func Percent(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	if d.IsPositive() {
		return "+" + d.StringFixed(2) + "%"
	}
	return d.StringFixed(2) + "%"
}
