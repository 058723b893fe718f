package invoice

import (
	"strconv"
	"strings"
)

// parseAmount parses a decimal form value, falling back when the input is
// blank or unparsable. Negative results clamp to zero: money fields on the
// form are never negative.
func parseAmount(s string, fallback float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}

	return max(v, 0)
}

// parseDecimal is parseAmount without the clamp, for fields that may
// legitimately go negative such as a correction to the amount paid.
func parseDecimal(s string, fallback float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}

	return v
}

// parseRate parses a percentage, falling back on blank or unparsable input
// and clamping the result to [0, 100].
func parseRate(s string, fallback float64) float64 {
	s = strings.TrimSpace(s)

	v := fallback
	if s != "" {
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			v = parsed
		}
	}

	return min(max(v, 0), 100)
}

// parseQuantity parses an item count. Blank or unparsable input falls back
// to 1, matching the other numeric fields' fallback convention; negatives
// clamp to zero.
func parseQuantity(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 1
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}

	return max(v, 0)
}
