package usecase

import (
	"fmt"
	"testing"

	"github.com/presupuestador/backend/internal/domain"
)

func fillerCatalog(n int) []domain.CatalogProduct {
	products := make([]domain.CatalogProduct, 0, n)
	for i := 0; i < n; i++ {
		products = append(products, domain.CatalogProduct{
			ID:    1000 + i,
			Name:  fmt.Sprintf("Producto Relleno %d", i),
			Price: 100,
			Stock: 10,
		})
	}
	return products
}

func TestPreFilterShortlist(t *testing.T) {
	table := ExpansionTable{
		"birome":   {"boligrafo"},
		"goma eva": {"goma eva"},
	}

	t.Run("ranks scoring products first", func(t *testing.T) {
		f := NewPreFilter(table, PreFilterConfig{})
		catalog := []domain.CatalogProduct{
			{ID: 1, Name: "Cinta Adhesiva Cristal"},
			{ID: 2, Name: "Bolígrafo BIC Cristal Azul"},
			{ID: 3, Name: "Regla Plástica 20cm"},
		}

		got := f.Shortlist([]domain.RequestedItem{{Item: "2 biromes azules"}}, catalog)
		if len(got) == 0 {
			t.Fatal("Shortlist() returned nothing")
		}
		if got[0].ID != 2 {
			t.Errorf("Shortlist()[0].ID = %d, want 2 (the pen)", got[0].ID)
		}
		if got[0].Score <= 0 {
			t.Errorf("Shortlist()[0].Score = %d, want > 0", got[0].Score)
		}
	})

	t.Run("caps the shortlist at the configured limit", func(t *testing.T) {
		f := NewPreFilter(table, PreFilterConfig{ShortlistLimit: 5, BackfillThreshold: 50, BackfillLimit: 100})

		catalog := make([]domain.CatalogProduct, 0, 20)
		for i := 0; i < 20; i++ {
			catalog = append(catalog, domain.CatalogProduct{ID: i + 1, Name: fmt.Sprintf("Bolígrafo Variante %d", i)})
		}

		got := f.Shortlist([]domain.RequestedItem{{Item: "birome"}}, catalog)
		if len(got) != 5 {
			t.Errorf("len(Shortlist()) = %d, want 5", len(got))
		}
	})

	t.Run("backfills zero-score products when few hits", func(t *testing.T) {
		f := NewPreFilter(table, PreFilterConfig{})

		catalog := append([]domain.CatalogProduct{
			{ID: 1, Name: "Bolígrafo BIC Azul"},
			{ID: 2, Name: "Bolígrafo BIC Rojo"},
			{ID: 3, Name: "Bolígrafo Gel Roller"},
		}, fillerCatalog(150)...)

		got := f.Shortlist([]domain.RequestedItem{{Item: "birome"}}, catalog)

		// 3 scoring hits is under the threshold of 50, so zero-score products
		// fill the list up to the backfill limit of 100.
		if len(got) != 100 {
			t.Fatalf("len(Shortlist()) = %d, want 100", len(got))
		}
		for i := 0; i < 3; i++ {
			if got[i].Score == 0 {
				t.Errorf("Shortlist()[%d].Score = 0, scoring products must come first", i)
			}
		}
		if got[99].Score != 0 {
			t.Errorf("Shortlist()[99].Score = %d, want 0 (backfill)", got[99].Score)
		}
	})

	t.Run("empty item list degrades to pure backfill", func(t *testing.T) {
		f := NewPreFilter(table, PreFilterConfig{})

		got := f.Shortlist(nil, fillerCatalog(150))
		if len(got) != 100 {
			t.Fatalf("len(Shortlist()) = %d, want 100", len(got))
		}
		for _, sp := range got {
			if sp.Score != 0 {
				t.Fatalf("Shortlist() score = %d, want all zeros for empty request", sp.Score)
			}
		}
	})

	t.Run("no backfill once enough products score", func(t *testing.T) {
		f := NewPreFilter(table, PreFilterConfig{BackfillThreshold: 2, BackfillLimit: 100})

		catalog := append([]domain.CatalogProduct{
			{ID: 1, Name: "Bolígrafo BIC Azul"},
			{ID: 2, Name: "Bolígrafo BIC Rojo"},
		}, fillerCatalog(50)...)

		got := f.Shortlist([]domain.RequestedItem{{Item: "birome"}}, catalog)
		if len(got) != 2 {
			t.Errorf("len(Shortlist()) = %d, want 2 (threshold met, no backfill)", len(got))
		}
	})

	t.Run("keeps all variants of the same product family", func(t *testing.T) {
		f := NewPreFilter(table, PreFilterConfig{})
		catalog := []domain.CatalogProduct{
			{ID: 1, Name: "Cuaderno Rivadavia Tapa Dura 48 Hojas"},
			{ID: 2, Name: "Cuaderno Rivadavia Tapa Flexible 48 Hojas"},
			{ID: 3, Name: "Témperas x6"},
		}

		got := f.Shortlist([]domain.RequestedItem{{Item: "cuaderno rivadavia"}}, catalog)

		seen := map[int]bool{}
		for _, sp := range got {
			seen[sp.ID] = true
		}
		if !seen[1] || !seen[2] {
			t.Errorf("Shortlist() missing a variant: got ids %v, want both 1 and 2", seen)
		}
	})
}

func TestScoreProduct(t *testing.T) {
	t.Run("phrase hits outweigh single words", func(t *testing.T) {
		single := []string{"goma"}
		multi := []string{"goma eva"}

		eva := scoreProduct("Goma Eva 40x60cm", single, multi)
		borrar := scoreProduct("Goma de Borrar Lápiz", single, multi)

		if eva <= borrar {
			t.Errorf("scoreProduct(goma eva) = %d, scoreProduct(goma de borrar) = %d; phrase hit should win", eva, borrar)
		}
	})

	t.Run("leading keyword earns the starts-with bonus", func(t *testing.T) {
		leading := scoreProduct("Regla Plástica 20cm", []string{"regla"}, nil)
		trailing := scoreProduct("Set Escuadra y Regla", []string{"regla"}, nil)

		if leading <= trailing {
			t.Errorf("scoreProduct(leading) = %d, scoreProduct(trailing) = %d; leading name should win", leading, trailing)
		}
	})

	t.Run("bundle suffix after separator does not score the primary bonus", func(t *testing.T) {
		// "Pincel" appears only in the bundled accessory, after the "+".
		bundle := scoreProduct("Acuarelas x12 + Pincel", []string{"pincel"}, nil)
		standalone := scoreProduct("Pincel Escolar Nº4", []string{"pincel"}, nil)

		if standalone <= bundle {
			t.Errorf("scoreProduct(standalone) = %d, scoreProduct(bundle) = %d; standalone should win", standalone, bundle)
		}
	})

	t.Run("empty name scores zero", func(t *testing.T) {
		if got := scoreProduct("", []string{"regla"}, nil); got != 0 {
			t.Errorf("scoreProduct(\"\") = %d, want 0", got)
		}
	})
}
