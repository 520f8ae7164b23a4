package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/presupuestador/backend/internal/domain"
)

// QuoteServiceConfig holds configuration for the quote pipeline.
type QuoteServiceConfig struct {
	PreFilter          PreFilterConfig
	EnableDebugLogging bool
}

// QuoteService runs the request-scoped quoting pipeline:
// pre-filter -> match request -> external matcher -> overrides -> summary.
// Stages are strictly sequential; the only blocking stage is the matcher call.
type QuoteService struct {
	matcher   domain.Matcher
	catalog   *domain.CatalogView
	prefilter *PreFilter
	overrides *OverrideEngine
	debug     bool
}

// NewQuoteService wires the pipeline. The expansion table and override rules
// are injected here rather than read from globals so tests can substitute
// minimal ones.
func NewQuoteService(
	matcher domain.Matcher,
	catalog *domain.CatalogView,
	table ExpansionTable,
	rules []OverrideRule,
	cfg QuoteServiceConfig,
) *QuoteService {
	return &QuoteService{
		matcher:   matcher,
		catalog:   catalog,
		prefilter: NewPreFilter(table, cfg.PreFilter),
		overrides: NewOverrideEngine(rules, cfg.EnableDebugLogging),
		debug:     cfg.EnableDebugLogging,
	}
}

// Quote produces a priced quote for the requested items. Matcher parse and
// transport failures fail the whole attempt; catalog lookup misses degrade
// only the affected item.
func (s *QuoteService) Quote(ctx context.Context, items []domain.RequestedItem) (*domain.Quote, error) {
	items = sanitizeItems(items)

	// Nothing to match: skip the external call, return the empty quote shape.
	if len(items) == 0 {
		return &domain.Quote{Items: []domain.MatchedItem{}, Summary: Summarize(nil)}, nil
	}

	shortlist := s.prefilter.Shortlist(items, s.catalog.Products())
	prompt := BuildMatchPrompt(shortlist, items)

	matched, err := s.matcher.MatchCatalog(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("matching %d items: %w", len(items), err)
	}

	s.resolveCatalogRefs(matched)
	matched = s.overrides.Apply(matched, s.catalog)

	return &domain.Quote{
		Items:   matched,
		Summary: Summarize(matched),
	}, nil
}

// sanitizeItems drops blank lines and defaults quantities, without mutating
// the caller's slice.
func sanitizeItems(items []domain.RequestedItem) []domain.RequestedItem {
	out := make([]domain.RequestedItem, 0, len(items))
	for _, it := range items {
		if Normalize(it.Item) == "" {
			continue
		}
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		out = append(out, it)
	}
	return out
}

// resolveCatalogRefs re-anchors every matched item to the live catalog. SKU is
// tried first (most reliable), then exact name, then id — names can collide or
// arrive truncated, and the matcher occasionally invents ids. On a hit the
// item takes the catalog's canonical references and current price; on a miss
// the matcher's fields are kept as-is (item-level degradation, never fatal).
func (s *QuoteService) resolveCatalogRefs(items []domain.MatchedItem) {
	for i := range items {
		it := &items[i]
		if !it.Matched {
			continue
		}

		if it.CatalogSKU != nil {
			if p, ok := s.catalog.BySKU(*it.CatalogSKU); ok {
				it.SetProduct(p)
				continue
			}
		}
		if it.CatalogName != nil {
			if p, ok := s.catalog.ByName(*it.CatalogName); ok {
				it.SetProduct(p)
				continue
			}
		}
		if it.CatalogID != nil {
			if p, ok := s.catalog.ByID(*it.CatalogID); ok {
				it.SetProduct(p)
				continue
			}
		}

		log.Printf("[QUOTE] could not resolve %q against catalog (sku=%v name=%v id=%v)",
			it.RequestedItem, deref(it.CatalogSKU), deref(it.CatalogName), derefInt(it.CatalogID))
	}
}

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func derefInt(i *int) string {
	if i == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d", *i)
}
