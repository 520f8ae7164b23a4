package catalog

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/presupuestador/backend/internal/domain"
)

// loadExcel parses a back-office XLSX export. The first sheet is used; the
// header row maps columns by name so column order in the export doesn't
// matter.
func loadExcel(path string) ([]domain.CatalogProduct, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("catalog xlsx has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading catalog rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, domain.ErrCatalogEmpty
	}

	cols := mapColumns(rows[0])
	nameCol, ok := cols["name"]
	if !ok {
		return nil, fmt.Errorf("catalog xlsx has no name column (header: %v)", rows[0])
	}
	priceCol, ok := cols["price"]
	if !ok {
		return nil, fmt.Errorf("catalog xlsx has no price column (header: %v)", rows[0])
	}

	var products []domain.CatalogProduct
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) <= nameCol || len(row) <= priceCol {
			continue
		}

		name := strings.TrimSpace(row[nameCol])
		if name == "" {
			continue
		}

		price, err := parsePrice(row[priceCol])
		if err != nil {
			log.Printf("[CATALOG] row %d: bad price %q, skipping", i+1, row[priceCol])
			continue
		}

		p := domain.CatalogProduct{Name: name, Price: price}
		if col, ok := cols["id"]; ok && col < len(row) {
			if id, err := strconv.Atoi(strings.TrimSpace(row[col])); err == nil {
				p.ID = id
			}
		}
		if col, ok := cols["sku"]; ok && col < len(row) {
			p.SKU = strings.TrimSpace(row[col])
		}
		if col, ok := cols["stock"]; ok && col < len(row) {
			if stock, err := strconv.Atoi(strings.TrimSpace(row[col])); err == nil {
				p.Stock = stock
			}
		}
		if col, ok := cols["slug"]; ok && col < len(row) {
			p.Slug = strings.TrimSpace(row[col])
		}

		products = append(products, p)
	}

	return validate(products)
}

// mapColumns matches header cells against the names the store exports use, in
// Spanish and English.
func mapColumns(header []string) map[string]int {
	cols := make(map[string]int)
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case containsAny(name, "sku", "codigo", "código"):
			setOnce(cols, "sku", i)
		// Exact match for "id": too many Spanish words contain the substring
		// ("cantidad", "unidades").
		case name == "id" || strings.Contains(name, "identificador"):
			setOnce(cols, "id", i)
		case containsAny(name, "nombre", "name", "producto", "product"):
			setOnce(cols, "name", i)
		case containsAny(name, "precio", "price"):
			setOnce(cols, "price", i)
		case containsAny(name, "stock", "cantidad", "qty"):
			setOnce(cols, "stock", i)
		case containsAny(name, "slug", "url"):
			setOnce(cols, "slug", i)
		}
	}
	return cols
}

func setOnce(cols map[string]int, key string, idx int) {
	if _, exists := cols[key]; !exists {
		cols[key] = idx
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// parsePrice tolerates currency symbols and thousands separators
// ("$ 1.234,50" and "1234.50" both parse).
func parsePrice(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}

	// Comma as decimal separator means dots are thousands marks.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", raw)
	}
	return price, nil
}
