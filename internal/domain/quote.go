package domain

// RequestedItem is one line of the uploaded school-supply list, as produced by
// the upstream extraction step.
type RequestedItem struct {
	Item     string `json:"item" binding:"required"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// Confidence is the matcher's self-reported certainty for a single item.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// MatchedItem is one requested item resolved (or not) against the catalog.
// Produced by the external matcher, then mutated in place by the override
// engine, then read-only for aggregation.
type MatchedItem struct {
	RequestedItem string     `json:"requestedItem"`
	Quantity      int        `json:"quantity"`
	Matched       bool       `json:"matched"`
	CatalogID     *int       `json:"catalogId"`
	CatalogSKU    *string    `json:"catalogSku"`
	CatalogName   *string    `json:"catalogName"`
	CatalogSlug   *string    `json:"catalogSlug"`
	UnitPrice     float64    `json:"unitPrice"`
	Subtotal      float64    `json:"subtotal"`
	Confidence    Confidence `json:"confidence"`
	InStoreOnly   bool       `json:"inStoreOnly"`
}

// ClearMatch resets the item to the canonical unmatched shape: no catalog
// references, zero prices.
func (m *MatchedItem) ClearMatch() {
	m.Matched = false
	m.CatalogID = nil
	m.CatalogSKU = nil
	m.CatalogName = nil
	m.CatalogSlug = nil
	m.UnitPrice = 0
	m.Subtotal = 0
	m.InStoreOnly = false
}

// SetProduct points the item at a catalog product and takes the product's
// current price. The caller is responsible for recomputing the subtotal.
func (m *MatchedItem) SetProduct(p CatalogProduct) {
	id := p.ID
	name := p.Name
	m.Matched = true
	m.CatalogID = &id
	m.CatalogName = &name
	m.UnitPrice = p.Price
	if p.SKU != "" {
		sku := p.SKU
		m.CatalogSKU = &sku
	} else {
		m.CatalogSKU = nil
	}
	if p.Slug != "" {
		slug := p.Slug
		m.CatalogSlug = &slug
	} else {
		m.CatalogSlug = nil
	}
}

// Summary aggregates a finalized match list into quote totals.
type Summary struct {
	TotalItems      int     `json:"totalItems"`
	FoundItems      int     `json:"foundItems"`
	InStoreItems    int     `json:"inStoreItems"`
	NotFoundItems   int     `json:"notFoundItems"`
	CoveragePercent int     `json:"coveragePercent"`
	EstimatedTotal  float64 `json:"estimatedTotal"`
}

// Quote is the final output of the pipeline.
type Quote struct {
	Items   []MatchedItem `json:"items"`
	Summary Summary       `json:"summary"`
}
