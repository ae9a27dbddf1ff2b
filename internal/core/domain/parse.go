package domain

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumericOrZero parses s as a float. Anything that is not a finite
// number, including the empty string, yields 0.
func ParseNumericOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseIntOrZero parses the leading integer of s. "95" and "95.7" both give
// 95; values with no leading digits give 0.
func ParseIntOrZero(s string) int {
	v, ok := parseLeadingInt(s)
	if !ok {
		return 0
	}
	return v
}

// ParseYear returns the release year in s and whether it is usable. Years
// that fail to parse or are not after 1900 are reported as absent.
func ParseYear(s string) (int, bool) {
	y, ok := parseLeadingInt(s)
	if !ok || y <= MinReleaseYear {
		return 0, false
	}
	return y, true
}

// MinReleaseYear is the last year treated as invalid.
const MinReleaseYear = 1900

func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
