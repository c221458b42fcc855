package currency

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders monetary amounts for a fixed locale with exactly two
// fraction digits.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Format renders amount with the currency's locale symbol, e.g. "$10.00".
// Unknown ISO codes fall back to "10.00 XYZ".
func (f *Formatter) Format(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%.2f %s", amount, strings.ToUpper(code))
	}
	sym := f.printer.Sprint(currency.Symbol(unit))
	return f.printer.Sprintf("%s%.2f", sym, amount)
}

// GuessForLocale returns the likely currency code for a BCP 47 locale tag,
// or "" when no confident guess exists. "es-MX" maps to MXN, "en-US" to USD.
func GuessForLocale(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}
	unit, conf := currency.FromTag(tag)
	if conf == language.No {
		return ""
	}
	return unit.String()
}
