package usecase

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Package-level compiled patterns and transforms for performance
var (
	nonAlnumRegex = regexp.MustCompile(`[^a-z0-9 ]`)
	multiSpace    = regexp.MustCompile(`\s+`)

	// NFD-decompose, drop combining marks, recompose. "á" -> "a", "ñ" -> "n".
	stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalize folds text for comparison: lower-case, diacritics stripped,
// anything outside [a-z0-9 ] replaced by a space, whitespace collapsed.
// Total function: never fails, empty in means empty out. Requested-item text
// and catalog names go through the same fold so comparisons are accent- and
// punctuation-insensitive.
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	lower := strings.ToLower(s)

	folded, _, err := transform.String(stripMarks, lower)
	if err != nil {
		// Malformed input: fall back to the lower-cased original so the
		// function stays total.
		folded = lower
	}

	folded = nonAlnumRegex.ReplaceAllString(folded, " ")
	folded = multiSpace.ReplaceAllString(folded, " ")
	return strings.TrimSpace(folded)
}
