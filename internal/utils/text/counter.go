// Package text provides utilities for text processing and analysis.
// The helpers here are shared between the summarization providers and the
// deterministic fallback summary so that both count and segment text the
// same way.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given
// text. Counting runes instead of bytes keeps multi-byte characters (CJK,
// emoji) from inflating the count.
func CountRunes(text string) int {
	return len([]rune(text))
}

// CountWords counts whitespace-separated words in the given text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// FirstSentence returns the first period-terminated sentence of the given
// text, including the period. If the text contains no period, the whole
// trimmed text is returned.
func FirstSentence(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}
	if idx := strings.Index(trimmed, "."); idx >= 0 {
		return strings.TrimSpace(trimmed[:idx]) + "."
	}
	return trimmed
}
