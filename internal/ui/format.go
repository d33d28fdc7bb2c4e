package ui

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Money formats a value as a dollar amount with thousands separators,
// dropping the cents when they are zero.
func Money(value float64) string {
	if value == float64(int64(value)) {
		return printer.Sprintf("$%d", int64(value))
	}
	return printer.Sprintf("$%.2f", value)
}

// Percent formats a progress percentage with no decimal places.
func Percent(value float64) string {
	return fmt.Sprintf("%.0f%%", value)
}
