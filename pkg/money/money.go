// Package money formats decimal amounts for presentation. Internal totals
// stay at full precision everywhere; rounding to currency precision happens
// only here, at the point of display.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts with locale-aware digit grouping.
type Formatter struct {
	printer  *message.Printer
	currency string
}

// NewFormatter builds a formatter for the given BCP 47 locale (e.g. "de-CH")
// and currency code. Unparseable locales fall back to de-CH.
func NewFormatter(locale, currency string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse("de-CH")
	}
	return &Formatter{printer: message.NewPrinter(tag), currency: currency}
}

// Amount renders the value rounded to two decimals with locale grouping,
// without a currency prefix. Example (de-CH): 1081 -> "1’081.00".
func (f *Formatter) Amount(d decimal.Decimal) string {
	v, _ := d.Round(2).Float64()
	return f.printer.Sprintf("%v", number.Decimal(v, number.Scale(2)))
}

// Format renders "<currency> <amount>", e.g. "CHF 1’081.00".
func (f *Formatter) Format(d decimal.Decimal) string {
	return f.currency + " " + f.Amount(d)
}
