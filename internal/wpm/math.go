package wpm

import (
	"math"
	"strings"
)

// CountWords counts whitespace-separated words. Word counts are always
// derived this way, never estimated.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// PerMinute computes words per minute for a word count and duration in
// seconds. Defined as zero when the duration is zero.
func PerMinute(words int, seconds float64) float64 {
	minutes := seconds / 60.0
	if minutes == 0 {
		return 0
	}
	return float64(words) / minutes
}

// Round1 rounds to one decimal place, matching the report's wpm precision.
func Round1(value float64) float64 {
	return math.Round(value*10) / 10
}

// Round2 rounds to two decimal places, matching the report's duration precision.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
