// Package utils provides text normalization helpers for Spanish slang
// words and search queries.
package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// enyePlaceholder temporarily protects the letter ñ while diacritics are
// stripped. Unlike accents, ñ is a distinct letter in Spanish and folding
// it to n would merge unrelated words (año/ano).
const enyePlaceholder = "\x00"

// NormalizeWord canonicalizes a word for storage and exact lookup:
// trimmed, lowercased, with inner whitespace collapsed to single spaces.
// Accents are preserved so the stored form matches what the author wrote.
func NormalizeWord(word string) string {
	return strings.Join(strings.Fields(strings.ToLower(word)), " ")
}

// FoldAccents strips diacritics from a string for accent-insensitive
// matching ("güey" and "guey" fold to the same form). The letter ñ is
// preserved. Returns the lowercased input unchanged if folding fails.
func FoldAccents(s string) string {
	s = strings.ToLower(s)
	if s == "" {
		return ""
	}

	protected := strings.ReplaceAll(s, "ñ", enyePlaceholder)

	folded, _, err := transform.String(transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	), protected)
	if err != nil {
		return s
	}

	return strings.ReplaceAll(folded, enyePlaceholder, "ñ")
}

// NormalizeQuery prepares a search query: canonical word form with
// accents folded, so queries match terms regardless of how either was
// accented.
func NormalizeQuery(query string) string {
	return FoldAccents(NormalizeWord(query))
}
