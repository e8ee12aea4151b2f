package wordfreq

import "unicode/utf8"

// runeLen returns length of word in characters
func runeLen(word string) int {
	return utf8.RuneCountInString(word)
}

// percentOf returns count as percentage of total; total must be > 0
func percentOf(count, total int) float64 {
	return float64(count) / float64(total) * 100
}
