package usecase

import (
	"log"
	"math"
	"regexp"

	"github.com/presupuestador/backend/internal/domain"
)

// OverrideRule forces a fixed outcome for requested items matching a known
// failure pattern of the external matcher. The pattern is evaluated against
// the normalized requested text only, never against what the matcher answered,
// so applying the rules a second time cannot change the result.
type OverrideRule struct {
	// Name identifies the rule in logs.
	Name string

	// Pattern is matched against Normalize(item.RequestedItem).
	Pattern *regexp.Regexp

	// Target is the canonical catalog product name. Price, id and sku are
	// resolved from the catalog at apply time, not at rule-authoring time, so
	// catalog price changes always flow through.
	Target string

	// InStoreOnly marks products that only exist at the physical store
	// (per-weight or per-sheet goods).
	InStoreOnly bool

	// Confidence reported for the forced match. Defaults to high.
	Confidence domain.Confidence
}

// OverrideEngine applies an ordered rule list to a match list. Rules are
// evaluated in declared order and only the first match fires: order IS
// precedence, so specific patterns must be listed before general ones that
// could shadow them. That is the whole contract — rule authors read support
// tickets, not specificity algorithms.
type OverrideEngine struct {
	rules []OverrideRule
	debug bool
}

// NewOverrideEngine creates an engine with the given rule list. Rules are
// injected so tests can pin precedence with a minimal list.
func NewOverrideEngine(rules []OverrideRule, debug bool) *OverrideEngine {
	return &OverrideEngine{rules: rules, debug: debug}
}

// Apply mutates items in place and returns the same slice. Safe to call more
// than once on the same list: the second pass reproduces the first.
//
// After the rule pass every item is swept back onto the model invariants:
// unmatched items carry no catalog references and zero prices, matched items
// always satisfy subtotal = unitPrice × quantity.
func (e *OverrideEngine) Apply(items []domain.MatchedItem, catalog *domain.CatalogView) []domain.MatchedItem {
	for i := range items {
		e.applyFirstMatch(&items[i], catalog)
		enforceInvariants(&items[i])
	}
	return items
}

func (e *OverrideEngine) applyFirstMatch(item *domain.MatchedItem, catalog *domain.CatalogView) {
	text := Normalize(item.RequestedItem)
	if text == "" {
		return
	}

	for _, rule := range e.rules {
		if !rule.Pattern.MatchString(text) {
			continue
		}

		if p, ok := catalog.ByName(rule.Target); ok {
			item.SetProduct(p)
		} else {
			// Rule references a product no longer in the catalog. Keep the
			// matcher's price/id/sku instead of corrupting the item further;
			// only the identity name is forced.
			log.Printf("[OVERRIDE] rule %q target %q not found in catalog", rule.Name, rule.Target)
			target := rule.Target
			item.Matched = true
			item.CatalogName = &target
		}

		item.InStoreOnly = rule.InStoreOnly
		if rule.Confidence != "" {
			item.Confidence = rule.Confidence
		} else {
			item.Confidence = domain.ConfidenceHigh
		}

		if e.debug {
			log.Printf("[OVERRIDE] %q matched rule %q -> %q", item.RequestedItem, rule.Name, rule.Target)
		}
		return
	}
}

// enforceInvariants normalizes one item to the model invariants regardless of
// what the matcher or a rule produced.
func enforceInvariants(item *domain.MatchedItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if !item.Matched {
		item.ClearMatch()
		return
	}
	item.Subtotal = roundCurrency(item.UnitPrice * float64(item.Quantity))
}

func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}
