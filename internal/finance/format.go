package finance

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var enIN = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a money value as whole rupees with Indian digit grouping,
// e.g. 123456.78 -> "₹1,23,457". Display-only; stored values keep full
// precision.
func FormatINR(v decimal.Decimal) string {
	return "₹" + GroupINR(v)
}

// GroupINR renders the integer-rounded value with en-IN grouping and no
// currency symbol.
func GroupINR(v decimal.Decimal) string {
	return enIN.Sprint(number.Decimal(v.Round(0).IntPart()))
}
