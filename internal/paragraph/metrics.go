package paragraph

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// WordsPerMinute is the reading speed assumed by ReadingTime.
const WordsPerMinute = 200

// CountWords returns the number of whitespace-delimited non-empty tokens.
// Runs of whitespace collapse; empty or whitespace-only content yields 0.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountChars returns the character count as runes (not bytes), whitespace
// included.
func CountChars(text string) int {
	return utf8.RuneCountInString(text)
}

// ReadingTime estimates reading time from content at WordsPerMinute,
// rendered as "< 1 min" when the ceiling is at most one minute,
// otherwise "N min".
func ReadingTime(content string) string {
	minutes := int(math.Ceil(float64(CountWords(content)) / WordsPerMinute))
	if minutes <= 1 {
		return "< 1 min"
	}
	return fmt.Sprintf("%d min", minutes)
}
