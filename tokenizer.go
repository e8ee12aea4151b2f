package wordfreq

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Charset selects which characters are treated as word characters
type Charset int

const (
	// ASCII accepts [A-Za-z0-9_] only. Every byte of a non-ASCII
	// UTF-8 sequence acts as a separator, so "café" yields "caf".
	ASCII Charset = iota
	// Unicode accepts any Unicode letter, digit or underscore and
	// lower-cases tokens without assuming a language.
	Unicode
)

// String returns name of charset
func (c Charset) String() string {
	switch c {
	case ASCII:
		return "ascii"
	case Unicode:
		return "unicode"
	default:
		return fmt.Sprintf("charset(%d)", int(c))
	}
}

// ParseCharset returns charset for given name (ascii, unicode)
func ParseCharset(name string) (Charset, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ascii":
		return ASCII, nil
	case "unicode":
		return Unicode, nil
	}
	return ASCII, fmt.Errorf("%w: unknown charset %q", ErrInvalidParameter, name)
}

// Tokenize extracts lowercase words from text using the ASCII charset.
// Punctuation and whitespace are discarded and never produce empty tokens.
func Tokenize(text string) []string {
	return TokenizeWith(text, ASCII)
}

// TokenizeWith extracts lowercase words from text using given charset
func TokenizeWith(text string, cs Charset) []string {
	if cs == Unicode {
		return tokenizeUnicode(text)
	}
	return tokenizeASCII(text)
}

func tokenizeASCII(text string) []string {
	var tokens []string
	i := 0
	for i < len(text) {
		if !isASCIIWordByte(text[i]) {
			i++
			continue
		}
		start := i
		for i < len(text) && isASCIIWordByte(text[i]) {
			i++
		}
		tokens = append(tokens, asciiLower(text[start:i]))
	}
	return tokens
}

func tokenizeUnicode(text string) []string {
	var tokens []string
	// caser keeps state and must not be shared between calls
	lower := cases.Lower(language.Und)
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isWordRune(r) {
			i += size
			continue
		}
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if !isWordRune(r) {
				break
			}
			i += size
		}
		tokens = append(tokens, lower.String(text[start:i]))
	}
	return tokens
}

// LowerWord lower-cases word the way tokens of charset cs are lower-cased
func LowerWord(word string, cs Charset) string {
	if cs == Unicode {
		return cases.Lower(language.Und).String(word)
	}
	return strings.ToLower(word)
}

func isASCIIWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

func isWordRune(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// asciiLower avoids an allocation when word is already lowercase
func asciiLower(word string) string {
	for i := 0; i < len(word); i++ {
		if word[i] >= 'A' && word[i] <= 'Z' {
			return strings.ToLower(word)
		}
	}
	return word
}
