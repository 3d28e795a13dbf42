// Package textutil provides accent-insensitive text helpers.
// This is part of the platform layer and contains no business logic.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips combining diacritical marks, so that
// "Próximamente" and "proximamente" compare equal.
func Fold(s string) string {
	// transformers carry state, build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// FoldRune returns the lowercased, diacritic-free base character of a single
// rune. Spanish text folds rune-for-rune, which lets callers map positions in
// a folded string back to the original.
func FoldRune(r rune) rune {
	decomposed := norm.NFD.String(string(r))
	for _, d := range decomposed {
		if !unicode.Is(unicode.Mn, d) {
			return unicode.ToLower(d)
		}
	}
	return unicode.ToLower(r)
}

// ContainsFold reports whether needle occurs in haystack under accent- and
// case-insensitive comparison.
func ContainsFold(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}

// EqualFold reports whether two strings are equal under accent- and
// case-insensitive comparison.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
