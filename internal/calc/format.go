package calc

import (
	"math"
	"strconv"
	"strings"
)

// ErrorDisplay is the display shown for undefined results.
const ErrorDisplay = "Error"

// MaxFractionDigits is the number of digits kept after the decimal point.
const MaxFractionDigits = 10

// Format renders v in ordinary decimal notation. It starts from the
// shortest decimal that round-trips to v, so no binary noise shows up in
// large values; only when that form has more than MaxFractionDigits
// fractional digits is it rounded to MaxFractionDigits places. Trailing
// zeros and a trailing point are dropped. Non-finite values render as
// ErrorDisplay. Negative zero, and negatives that round to zero, render
// as "0" rather than "-0".
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrorDisplay
	}

	text := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(text, '.'); i >= 0 && len(text)-i-1 > MaxFractionDigits {
		text = strconv.FormatFloat(v, 'f', MaxFractionDigits, 64)
		text = strings.TrimRight(text, "0")
		text = strings.TrimSuffix(text, ".")
	}

	if text == "-0" || text == "" {
		return "0"
	}
	return text
}
