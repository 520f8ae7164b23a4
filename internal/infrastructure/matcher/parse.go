package matcher

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/presupuestador/backend/internal/domain"
)

// rawMatchedItem is the duck-typed shape the matcher actually answers with.
// Every field is optional at the wire level; validation turns it into a
// well-formed domain.MatchedItem or drops it.
type rawMatchedItem struct {
	RequestedItem *string  `json:"requestedItem"`
	Quantity      *int     `json:"quantity"`
	Matched       *bool    `json:"matched"`
	CatalogID     *int     `json:"catalogId"`
	CatalogSKU    *string  `json:"catalogSku"`
	CatalogName   *string  `json:"catalogName"`
	UnitPrice     *float64 `json:"unitPrice"`
	Subtotal      *float64 `json:"subtotal"`
	Confidence    *string  `json:"confidence"`
	InStoreOnly   *bool    `json:"inStoreOnly"`
}

type rawRequestedItem struct {
	Item     *string `json:"item"`
	Quantity *int    `json:"quantity"`
	Notes    *string `json:"notes"`
}

// ExtractJSONArray digs the first well-formed-looking JSON array out of an
// untrusted model response: code-fence markers stripped, then the slice from
// the first '[' to the last ']'. Returns ErrMatcherParse when no array is
// there at all.
func ExtractJSONArray(text string) (string, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start < 0 || end <= start {
		return "", fmt.Errorf("%w: no JSON array in response", domain.ErrMatcherParse)
	}
	return cleaned[start : end+1], nil
}

// ParseMatchedItems defensively parses the matcher's match list. Items missing
// the required requestedItem field are dropped with a log line; matched items
// without any catalog reference are demoted to unmatched rather than
// propagating half-empty references downstream.
func ParseMatchedItems(text string) ([]domain.MatchedItem, error) {
	payload, err := ExtractJSONArray(text)
	if err != nil {
		return nil, err
	}

	var raw []rawMatchedItem
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMatcherParse, err)
	}

	items := make([]domain.MatchedItem, 0, len(raw))
	for i, r := range raw {
		if r.RequestedItem == nil || strings.TrimSpace(*r.RequestedItem) == "" {
			log.Printf("[MATCHER] dropping item %d: missing requestedItem", i)
			continue
		}

		item := domain.MatchedItem{
			RequestedItem: *r.RequestedItem,
			Quantity:      1,
			Confidence:    domain.ConfidenceLow,
		}
		if r.Quantity != nil && *r.Quantity > 0 {
			item.Quantity = *r.Quantity
		}
		if r.Matched != nil {
			item.Matched = *r.Matched
		}
		if r.Confidence != nil {
			switch domain.Confidence(strings.ToLower(*r.Confidence)) {
			case domain.ConfidenceHigh:
				item.Confidence = domain.ConfidenceHigh
			case domain.ConfidenceMedium:
				item.Confidence = domain.ConfidenceMedium
			}
		}
		if r.InStoreOnly != nil {
			item.InStoreOnly = *r.InStoreOnly
		}

		if item.Matched {
			if r.CatalogID == nil && r.CatalogSKU == nil && r.CatalogName == nil {
				log.Printf("[MATCHER] item %q claims matched but has no catalog reference", item.RequestedItem)
				item.ClearMatch()
			} else {
				item.CatalogID = r.CatalogID
				item.CatalogSKU = r.CatalogSKU
				item.CatalogName = r.CatalogName
				if r.UnitPrice != nil {
					item.UnitPrice = *r.UnitPrice
				}
				if r.Subtotal != nil {
					item.Subtotal = *r.Subtotal
				}
			}
		} else {
			item.ClearMatch()
		}

		items = append(items, item)
	}

	return items, nil
}

// ParseRequestedItems defensively parses an extraction response.
func ParseRequestedItems(text string) ([]domain.RequestedItem, error) {
	payload, err := ExtractJSONArray(text)
	if err != nil {
		return nil, err
	}

	var raw []rawRequestedItem
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMatcherParse, err)
	}

	items := make([]domain.RequestedItem, 0, len(raw))
	for i, r := range raw {
		if r.Item == nil || strings.TrimSpace(*r.Item) == "" {
			log.Printf("[MATCHER] dropping extracted item %d: missing item text", i)
			continue
		}
		item := domain.RequestedItem{Item: strings.TrimSpace(*r.Item), Quantity: 1}
		if r.Quantity != nil && *r.Quantity > 0 {
			item.Quantity = *r.Quantity
		}
		if r.Notes != nil {
			item.Notes = strings.TrimSpace(*r.Notes)
		}
		items = append(items, item)
	}

	return items, nil
}
