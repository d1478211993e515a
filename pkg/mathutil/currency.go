// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/loan-schedule/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within one cent)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// ClampInt limits val to [lo, hi]. When hi < lo the result is lo.
func ClampInt(val, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// MonthlyRate converts annual percentage rates into a single monthly rate,
// e.g. 6% fixed plus 0.5% variable is 0.065 / 12.
func MonthlyRate(annualPercents ...float64) float64 {
	total := 0.0
	for _, p := range annualPercents {
		total += p
	}
	return total / constants.PercentageMultiplier / constants.MonthsPerYear
}
