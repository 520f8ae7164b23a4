package usecase

import (
	"log"
	"sort"
	"strings"

	"github.com/presupuestador/backend/internal/domain"
)

// Scoring weights and bounds
const (
	multiPhraseWeight = 3 // phrase hits are strong signal, rare by chance
	startsWithBonus   = 3

	defaultShortlistLimit    = 300
	defaultBackfillThreshold = 50
	defaultBackfillLimit     = 100
)

// PreFilterConfig holds configuration for the catalog pre-filter.
type PreFilterConfig struct {
	ShortlistLimit     int
	BackfillThreshold  int
	BackfillLimit      int
	EnableDebugLogging bool
}

// PreFilter narrows the catalog to a bounded shortlist before the external
// matcher is called. The matcher has a bounded context budget, so the full
// catalog cannot be sent; the shortlist must surface the most relevant subset
// without false-negating a plausible match.
type PreFilter struct {
	table             ExpansionTable
	shortlistLimit    int
	backfillThreshold int
	backfillLimit     int
	debug             bool
}

// NewPreFilter creates a pre-filter with the given vocabulary table. The table
// is injected (not a hidden global) so tests can substitute a minimal one.
func NewPreFilter(table ExpansionTable, cfg PreFilterConfig) *PreFilter {
	limit := cfg.ShortlistLimit
	if limit <= 0 {
		limit = defaultShortlistLimit
	}
	threshold := cfg.BackfillThreshold
	if threshold <= 0 {
		threshold = defaultBackfillThreshold
	}
	backfill := cfg.BackfillLimit
	if backfill <= 0 {
		backfill = defaultBackfillLimit
	}

	return &PreFilter{
		table:             table,
		shortlistLimit:    limit,
		backfillThreshold: threshold,
		backfillLimit:     backfill,
		debug:             cfg.EnableDebugLogging,
	}
}

// Shortlist scores every catalog product against the keywords expanded from
// all requested items combined and returns at most ShortlistLimit entries,
// best first. When almost nothing scores, zero-score products are backfilled
// so the matcher still has raw material to reason about near-misses instead of
// an impossibly small candidate set; an empty item list degrades to that
// backfill on purpose.
func (f *PreFilter) Shortlist(items []domain.RequestedItem, catalog []domain.CatalogProduct) []domain.ScoredProduct {
	keywords := ExpandKeywords(items, f.table)

	var single, multi []string
	for _, kw := range keywords {
		if strings.ContainsRune(kw, ' ') {
			multi = append(multi, kw)
		} else {
			single = append(single, kw)
		}
	}

	scored := make([]domain.ScoredProduct, 0, len(catalog))
	var zeros []domain.ScoredProduct

	for _, p := range catalog {
		score := scoreProduct(p.Name, single, multi)
		sp := domain.ScoredProduct{CatalogProduct: p, Score: score}
		if score > 0 {
			scored = append(scored, sp)
		} else {
			zeros = append(zeros, sp)
		}
	}

	// Stable sort keeps catalog order for ties, which keeps the shortlist
	// deterministic across requests.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) < f.backfillThreshold {
		room := f.backfillLimit - len(scored)
		for i := 0; i < len(zeros) && i < room; i++ {
			scored = append(scored, zeros[i])
		}
	}

	if len(scored) > f.shortlistLimit {
		scored = scored[:f.shortlistLimit]
	}

	if f.debug {
		log.Printf("[PREFILTER] %d keywords (%d phrases) -> shortlist %d of %d products",
			len(keywords), len(multi), len(scored), len(catalog))
	}

	return scored
}

// scoreProduct computes the relevance of one catalog name:
//
//   - singleScore: single keywords that substring-match a name word in either
//     direction (handles partial stems both ways),
//   - multiScore: phrase keywords literally contained in the full name, x3,
//   - primaryBonus: single-keyword check restricted to the primary name, the
//     text before the first "+" or "/". Catalog names sometimes append bundled
//     accessories after a separator ("Acuarelas x12 + Pincel"); the main
//     identity is what should score, not the bundle,
//   - startsWith: +3 when the name leads with a keyword.
func scoreProduct(name string, single, multi []string) int {
	normName := Normalize(name)
	if normName == "" {
		return 0
	}
	nameWords := strings.Fields(normName)

	primary := name
	if idx := strings.IndexAny(primary, "+/"); idx > 0 {
		primary = primary[:idx]
	}
	primaryWords := strings.Fields(Normalize(primary))

	score := 0
	starts := false

	for _, kw := range single {
		if wordsOverlap(nameWords, kw) {
			score++
		}
		if wordsOverlap(primaryWords, kw) {
			score++
		}
		if strings.HasPrefix(normName, kw) {
			starts = true
		}
	}

	for _, phrase := range multi {
		if strings.Contains(normName, phrase) {
			score += multiPhraseWeight
		}
	}

	if starts {
		score += startsWithBonus
	}

	return score
}

// wordsOverlap reports whether any word contains the keyword or vice versa.
func wordsOverlap(words []string, kw string) bool {
	for _, w := range words {
		if strings.Contains(w, kw) || strings.Contains(kw, w) {
			return true
		}
	}
	return false
}
