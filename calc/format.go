package calc

import (
	"math"
	"strconv"
	"strings"
)

// Format renders a result for display. decimals bounds the number of
// digits after the point; a negative value means the shortest exact
// representation. When scientific is set, output uses e-notation.
// Trailing zeros in fixed notation are trimmed, so 17.000000 displays
// as 17.
func Format(v float64, decimals int, scientific bool) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	if scientific {
		return strconv.FormatFloat(v, 'e', decimals, 64)
	}
	if decimals < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}
