// Package format renders amounts and percentages with Indonesian
// locale conventions for CLI output.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// Rupiah formats a value as Indonesian Rupiah with grouping and no
// decimals, e.g. "Rp1.500.000".
func Rupiah(value float64) string {
	return printer.Sprintf("Rp%d", int64(value))
}

// Number formats a value with Indonesian thousand separators.
func Number(value float64) string {
	return printer.Sprintf("%d", int64(value))
}

// Percentage formats a percentage with the given decimal places.
func Percentage(value float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, value)
}
