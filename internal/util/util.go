package util

import (
	"math"
	"strings"
)

// RoundTo rounds value to the given number of decimals, half away from zero.
func RoundTo(value float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(value)
	}
	pow := math.Pow10(decimals)

	return math.Round(value*pow) / pow
}

// CeilDiv divides a by b rounding up. It returns 0 when b is not positive.
func CeilDiv(a, b int) int {
	if b <= 0 || a <= 0 {
		return 0
	}

	q := a / b
	if a%b != 0 {
		q++
	}

	return q
}

// PageOffset converts a 1-based page into a row offset, saturating at
// math.MaxInt instead of overflowing.
func PageOffset(page, pageSize int) int {
	if page <= 1 || pageSize <= 0 {
		return 0
	}
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}

	return (page - 1) * pageSize
}

// ContainsFold reports whether substr is within s, ignoring case.
// An empty substr always matches.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}

	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// DerefString returns the pointed-to string or "".
func DerefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// NilIfBlank returns nil for blank strings and a trimmed copy otherwise.
func NilIfBlank(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
