package quote

import (
	"math"
	"strconv"
	"strings"
)

// FormatPrice renders a price as "$" followed by the shortest decimal that
// round-trips to the same float64. No currency rounding is applied.
func FormatPrice(price float64) string {
	return "$" + formatNumber(price)
}

// formatNumber follows the ECMAScript Number-to-String rules: plain
// decimals in [1e-6, 1e21), exponent form outside, no leading zeros in the
// exponent.
func formatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	if abs := math.Abs(v); abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(v, 'e', -1, 64), "e")

	return mantissa + "e" + exponent[:1] + strings.TrimLeft(exponent[1:], "0")
}
