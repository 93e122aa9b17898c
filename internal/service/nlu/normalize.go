package nlu

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StripAccents removes diacritics by compatibility decomposition followed by
// dropping the combining marks.
func StripAccents(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Fold lowercases and strips accents.
func Fold(s string) string {
	return StripAccents(strings.ToLower(s))
}

// ContainsWord reports whether needle occurs in haystack delimited by
// non-word characters (or the string edges) on both sides.
func ContainsWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for offset := 0; offset <= len(haystack)-len(needle); {
		i := strings.Index(haystack[offset:], needle)
		if i < 0 {
			return false
		}
		start := offset + i
		end := start + len(needle)
		if boundaryBefore(haystack, start, needle) && boundaryAfter(haystack, end, needle) {
			return true
		}
		_, size := utf8.DecodeRuneInString(haystack[start:])
		offset = start + size
	}
	return false
}

// A word boundary exists between a and b when exactly one of them is a word
// character; the string edges count as non-word.
func boundaryBefore(s string, start int, needle string) bool {
	first, _ := utf8.DecodeRuneInString(needle)
	prevWord := false
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		prevWord = isWordRune(r)
	}
	return prevWord != isWordRune(first)
}

func boundaryAfter(s string, end int, needle string) bool {
	last, _ := utf8.DecodeLastRuneInString(needle)
	nextWord := false
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		nextWord = isWordRune(r)
	}
	return nextWord != isWordRune(last)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r)
}
