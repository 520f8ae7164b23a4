package catalog

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/presupuestador/backend/internal/domain"
)

// Load reads the merchant catalog export once at startup. Supported formats:
// a JSON array of products (the store-platform export) or an XLSX sheet from
// the back office. The caller wraps the result in a read-only CatalogView;
// nothing mutates the slice after this returns.
func Load(path string) ([]domain.CatalogProduct, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return loadJSON(path)
	case ".xlsx":
		return loadExcel(path)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func loadJSON(path string) ([]domain.CatalogProduct, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var products []domain.CatalogProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("parsing catalog JSON: %w", err)
	}

	return validate(products)
}

// validate drops entries that can't be quoted (no name, negative price) and
// assigns ids to entries missing one.
func validate(products []domain.CatalogProduct) ([]domain.CatalogProduct, error) {
	out := make([]domain.CatalogProduct, 0, len(products))
	maxID := 0
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	dropped := 0
	for _, p := range products {
		if strings.TrimSpace(p.Name) == "" || p.Price < 0 || p.Stock < 0 {
			dropped++
			continue
		}
		if p.ID == 0 {
			maxID++
			p.ID = maxID
		}
		out = append(out, p)
	}

	if dropped > 0 {
		log.Printf("[CATALOG] dropped %d invalid entries", dropped)
	}
	if len(out) == 0 {
		return nil, domain.ErrCatalogEmpty
	}
	return out, nil
}
