// Package format renders amounts for exports and terminal output.
package format

import (
	"fmt"
	"math"

	"github.com/iwvelando/loan-schedule/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Amount returns value with exactly two decimals and no grouping, e.g.
// "1234.50". Non-finite values are printed as Go formats them.
func Amount(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Sprintf("%.2f", value)
	}
	return decimal.NewFromFloat(value).StringFixed(constants.DecimalPlaces)
}

// Grouped returns value with two decimals and the thousands separators of
// the given language, e.g. "1,234.50" for English.
func Grouped(value float64, tag language.Tag) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Sprintf("%.2f", value)
	}
	rounded := decimal.NewFromFloat(value).Round(constants.DecimalPlaces).InexactFloat64()
	return message.NewPrinter(tag).Sprintf("%.2f", rounded)
}

// Percent renders an annual rate such as 4.5 as "4.50%".
func Percent(value float64) string {
	return Amount(value) + "%"
}
