// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatKcal formats an energy value as whole kilocalories.
// e.g., 1234.4 -> "1,234 kcal"
func FormatKcal(v float64) string {
	return FormatNumber(int64(math.Round(v))) + " kcal"
}

// FormatGrams formats a mass with one decimal, dropping a trailing ".0".
// e.g., 4.1 -> "4.1g", 42 -> "42g"
func FormatGrams(v float64) string {
	return FormatDecimal(v) + "g"
}

// FormatDecimal formats v to at most one decimal place.
func FormatDecimal(v float64) string {
	r := math.Round(v*10) / 10
	if r == math.Trunc(r) {
		return FormatNumber(int64(r))
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}

// FormatAmount formats a nutrient amount in its unit.
func FormatAmount(v float64, unit string) string {
	if unit == "kcal" {
		return FormatKcal(v)
	}
	return FormatDecimal(v) + unit
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 value as a whole percentage.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// ShortID returns the first 8 characters of an entry ID.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
