package domain

import "strings"

// CatalogProduct is a single entry of the merchant catalog as exported from the
// store back office. Products are loaded once at startup and never mutated.
type CatalogProduct struct {
	ID    int     `json:"id"`
	SKU   string  `json:"sku,omitempty"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"` // 0 means not available for online fulfillment
	Slug  string  `json:"slug,omitempty"`
}

// ScoredProduct is a catalog product plus its pre-filter relevance score.
// Ephemeral: created per pre-filter run, discarded after shortlist selection.
type ScoredProduct struct {
	CatalogProduct
	Score int `json:"score"`
}

// CatalogView is a read-only, indexed view over the loaded catalog. It is the
// only way the pipeline sees catalog data, so concurrent requests can share it
// without locking.
type CatalogView struct {
	products []CatalogProduct
	byID     map[int]int
	bySKU    map[string]int
	byName   map[string]int
	nameKey  func(string) string
}

// NewCatalogView builds the lookup indexes. nameKey canonicalizes product names
// for the by-name index (the pipeline passes its text normalizer) so lookups are
// case-, accent- and punctuation-insensitive. When two products share a key the
// first one wins, matching the order of the merchant export.
func NewCatalogView(products []CatalogProduct, nameKey func(string) string) *CatalogView {
	if nameKey == nil {
		nameKey = strings.ToLower
	}

	v := &CatalogView{
		products: make([]CatalogProduct, len(products)),
		byID:     make(map[int]int, len(products)),
		bySKU:    make(map[string]int, len(products)),
		byName:   make(map[string]int, len(products)),
		nameKey:  nameKey,
	}
	copy(v.products, products)

	for i, p := range v.products {
		if _, exists := v.byID[p.ID]; !exists {
			v.byID[p.ID] = i
		}
		if sku := normalizeSKU(p.SKU); sku != "" {
			if _, exists := v.bySKU[sku]; !exists {
				v.bySKU[sku] = i
			}
		}
		if key := nameKey(p.Name); key != "" {
			if _, exists := v.byName[key]; !exists {
				v.byName[key] = i
			}
		}
	}

	return v
}

// Products returns a copy of the full catalog in export order.
func (v *CatalogView) Products() []CatalogProduct {
	out := make([]CatalogProduct, len(v.products))
	copy(out, v.products)
	return out
}

// Len returns the number of products in the view.
func (v *CatalogView) Len() int {
	return len(v.products)
}

// ByID looks up a product by its catalog id.
func (v *CatalogView) ByID(id int) (CatalogProduct, bool) {
	if i, ok := v.byID[id]; ok {
		return v.products[i], true
	}
	return CatalogProduct{}, false
}

// BySKU looks up a product by SKU, ignoring case and surrounding whitespace.
func (v *CatalogView) BySKU(sku string) (CatalogProduct, bool) {
	key := normalizeSKU(sku)
	if key == "" {
		return CatalogProduct{}, false
	}
	if i, ok := v.bySKU[key]; ok {
		return v.products[i], true
	}
	return CatalogProduct{}, false
}

// ByName looks up a product by canonical name.
func (v *CatalogView) ByName(name string) (CatalogProduct, bool) {
	key := v.nameKey(name)
	if key == "" {
		return CatalogProduct{}, false
	}
	if i, ok := v.byName[key]; ok {
		return v.products[i], true
	}
	return CatalogProduct{}, false
}

func normalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}
