package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.Indonesian)

// FormatCurrency renders an integer rupiah amount with id-ID digit
// grouping, e.g. 15000 -> "Rp15.000".
func FormatCurrency(amount int) string {
	return currencyPrinter.Sprintf("Rp%d", amount)
}
