package usecase

import (
	"fmt"
	"strings"

	"github.com/presupuestador/backend/internal/domain"
)

// outOfStockSentinel makes scarcity legible to the matcher: a literal "0"
// reads like any other number in a wall of catalog lines.
const outOfStockSentinel = "SIN STOCK"

// matchRules is the prose rule set sent with every matching request. The
// external matcher consumes natural language, not structured rules, so this
// block is effectively a second expansion table encoded as directives. Edit it
// the same way: one independent rule per line.
const matchRules = `Para cada ítem de la lista, encontrá el producto más parecido del catálogo siguiendo estas reglas:
- Matcheá por concepto, no por igualdad literal de texto ("birome" puede corresponder a "Bolígrafo").
- Ignorá prefijos de cantidad o empaque del ítem pedido ("paquete de", "caja de", "x12", números iniciales).
- Preferí siempre productos con stock; elegí una variante SIN STOCK solo si no existe alternativa con stock.
- Conservá la cantidad pedida tal cual; subtotal = unitPrice × quantity.
- Usá matched:false únicamente cuando no exista nada plausible en el catálogo.

Devolvé SOLO un array JSON válido con este formato exacto, sin texto adicional:
[{"requestedItem":"nombre solicitado","quantity":1,"matched":true,"catalogId":1,"catalogSku":"ABC-1","catalogName":"nombre producto","unitPrice":1000,"subtotal":1000,"confidence":"high"}]

Si no encontrás un producto similar, usá matched:false, catalogId:null, catalogSku:null, catalogName:null, unitPrice:0, subtotal:0.
Respondé ÚNICAMENTE con el JSON, empezando con [ y terminando con ].`

// BuildMatchPrompt serializes the shortlist and the requested items into the
// bounded text block sent to the external matcher.
func BuildMatchPrompt(shortlist []domain.ScoredProduct, items []domain.RequestedItem) string {
	var b strings.Builder

	b.WriteString("Tenés este catálogo de productos de una librería:\n")
	for _, p := range shortlist {
		stock := outOfStockSentinel
		if p.Stock > 0 {
			stock = fmt.Sprintf("%d", p.Stock)
		}
		sku := p.SKU
		if sku == "" {
			sku = "-"
		}
		fmt.Fprintf(&b, "ID:%d | SKU:%s | %q | $%.2f | stock:%s\n", p.ID, sku, p.Name, p.Price, stock)
	}

	b.WriteString("\nY esta lista de útiles escolares solicitados:\n")
	for i, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		fmt.Fprintf(&b, "%d. %q x%d", i, it.Item, qty)
		if it.Notes != "" {
			fmt.Fprintf(&b, " (nota: %s)", it.Notes)
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(matchRules)
	return b.String()
}
