// Package format provides display formatting helpers for monetary values.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Currency returns a Rupiah string with thousands separators (e.g., "Rp12.500").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-Rp" + formatted
	}
	return "Rp" + formatted
}

// NumericCurrency returns the grouped amount without a currency symbol
// (e.g., "-12.500").
func NumericCurrency(amount float64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return sign + formatPositiveCurrency(math.Abs(amount))
}

// Rupiah amounts are whole numbers; fractional parts round away here.
func formatPositiveCurrency(value float64) string {
	intPart := fmt.Sprintf("%.0f", value)

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte('.')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart
}
