package usecase

import (
	"regexp"
	"sort"
	"strings"

	"github.com/presupuestador/backend/internal/domain"
)

const minKeywordLen = 3

// noisePrefixRegex matches quantity-like lead-ins on a normalized item line:
// leading numerals ("2 biromes"), packaging prefixes ("paquete de 100 hojas",
// "caja de lapices") and multiplier shorthand ("x12 folios"). They carry no
// product signal and would otherwise become spurious keywords.
var noisePrefixRegex = regexp.MustCompile(
	`^(?:(?:\d+\s+)|(?:x\s*\d+\s+)|(?:(?:paquetes?|paq|cajas?|bolsas?|packs?|sets?|blisters?|sobres?|rollos?|pares?|docenas?|unidad(?:es)?|potes?)\s+(?:de\s+)?))+`,
)

// StripNoisePrefix removes quantity/packaging lead-ins from normalized text.
func StripNoisePrefix(s string) string {
	return strings.TrimSpace(noisePrefixRegex.ReplaceAllString(s, ""))
}

// ExpandKeywords turns requested items into the de-duplicated keyword set used
// for catalog pre-filtering:
//
//  1. each word of the cleaned item text (>= 3 chars) verbatim,
//  2. the targets of every table entry whose key appears as a substring of the
//     item text (cleaned or uncleaned),
//  3. fuzzy hits: table keys within a length-scaled edit distance of any token,
//     which recovers typos without an exact dictionary entry.
//
// Deterministic and side-effect-free: the result is sorted and does not depend
// on map iteration order.
func ExpandKeywords(items []domain.RequestedItem, table ExpansionTable) []string {
	set := make(map[string]struct{})

	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, it := range items {
		full := Normalize(it.Item)
		if full == "" {
			continue
		}
		cleaned := StripNoisePrefix(full)

		for _, tok := range strings.Fields(cleaned) {
			if len(tok) >= minKeywordLen {
				set[tok] = struct{}{}
			}
		}

		for _, key := range keys {
			if strings.Contains(full, key) || strings.Contains(cleaned, key) {
				for _, target := range table[key] {
					set[target] = struct{}{}
				}
				continue
			}

			// Fuzzy recovery for typos ("boligrafo" misspelled etc).
			tol := fuzzyTolerance(key)
			for _, tok := range strings.Fields(cleaned) {
				if len(tok) < minKeywordLen {
					continue
				}
				if lenDiff(tok, key) > tol {
					continue
				}
				if levenshteinDistance(tok, key) <= tol {
					set[key] = struct{}{}
					for _, target := range table[key] {
						set[target] = struct{}{}
					}
					break
				}
			}
		}
	}

	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// fuzzyTolerance scales the allowed edit distance with key length so short
// keys don't fuzzy-match unrelated words.
func fuzzyTolerance(key string) int {
	switch {
	case len(key) <= 4:
		return 1
	case len(key) <= 7:
		return 2
	default:
		return 3
	}
}

func lenDiff(a, b string) int {
	d := len(a) - len(b)
	if d < 0 {
		return -d
	}
	return d
}

// levenshteinDistance calculates the edit distance between two strings using
// two rows instead of the full matrix.
func levenshteinDistance(s1, s2 string) int {
	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}
