package wordfreq

import (
	"fmt"
	"unicode/utf8"
)

// Filter reports whether a token should be kept
type Filter func(token string) bool

// MinLength keeps tokens with at least n characters
func MinLength(n int) Filter {
	return func(token string) bool {
		// fast path: byte length is an upper bound of rune count
		if len(token) < n {
			return false
		}
		return utf8.RuneCountInString(token) >= n
	}
}

// Exclude drops tokens present in words. Entries are lower-cased
// so that they match tokens of the ASCII charset.
func Exclude(words ...string) Filter {
	return ExcludeFor(ASCII, words...)
}

// ExcludeFor drops tokens present in words, lower-casing entries
// the same way tokens of charset cs are lower-cased
func ExcludeFor(cs Charset, words ...string) Filter {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[LowerWord(w, cs)] = struct{}{}
	}
	return func(token string) bool {
		_, ok := set[token]
		return !ok
	}
}

// Apply returns tokens accepted by every filter, in input order.
// The input slice is never modified.
func Apply(tokens []string, filters ...Filter) []string {
	if len(filters) == 0 {
		return append([]string(nil), tokens...)
	}
	kept := make([]string, 0, len(tokens))
outer:
	for _, token := range tokens {
		for _, keep := range filters {
			if !keep(token) {
				continue outer
			}
		}
		kept = append(kept, token)
	}
	return kept
}

// FilterTokens drops tokens shorter than minLength and tokens present in exclude
func FilterTokens(tokens []string, minLength int, exclude []string) ([]string, error) {
	if minLength < 1 {
		return nil, fmt.Errorf("%w: min length must be >= 1, got %d", ErrInvalidParameter, minLength)
	}
	filters := []Filter{MinLength(minLength)}
	if len(exclude) > 0 {
		filters = append(filters, Exclude(exclude...))
	}
	return Apply(tokens, filters...), nil
}
