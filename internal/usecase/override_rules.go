package usecase

import (
	"regexp"
)

// DefaultOverrideRules returns the production rule list.
//
// ORDER IS PRECEDENCE. The engine fires the first matching rule only, so keep
// specific patterns above the general ones that could also match the same
// text. Known traps, learned from tickets:
//
//   - "voligoma"/"boligoma" (glue) must stay above "boligrafo"/"birome" (pen):
//     the misspelling "boligoma" contains neither but fuzzy-adjacent text like
//     "boligoma escolar" has been routed to pens before.
//   - "goma eva" and "goma de pegar" must stay above the bare "goma" eraser
//     rule.
//   - "cinta de papel" must stay above the generic "cinta" rule.
//
// Patterns match against normalized text (lower-case, accents stripped), so
// write them accent-free.
func DefaultOverrideRules() []OverrideRule {
	return []OverrideRule{
		// -- Adhesives. The matcher keeps confusing glue brands with pens and
		// with erasers, and defaults to the out-of-stock 250ml format.
		{
			Name:    "voligoma",
			Pattern: regexp.MustCompile(`\b[vb]oligoma\b`),
			Target:  "Adhesivo Voligoma 30ml",
		},
		{
			Name:    "plasticola",
			Pattern: regexp.MustCompile(`plasticola|adhesivo vinilico|cola vinilica|cascola`),
			Target:  "Adhesivo Vinílico Plasticola 40g",
		},
		{
			Name:    "glue-stick",
			Pattern: regexp.MustCompile(`(adhesivo|pegamento|goma de pegar) (en )?barra`),
			Target:  "Adhesivo en Barra Pritt 10g",
		},
		{
			Name:    "glue-generic",
			Pattern: regexp.MustCompile(`\bpegamento\b|\bgoma de pegar\b`),
			Target:  "Adhesivo Vinílico Plasticola 40g",
		},

		// -- Pens. "birome" always means the classic blue ballpoint unless a
		// color is spelled out; the matcher used to pick gel rollers.
		{
			Name:    "birome-roja",
			Pattern: regexp.MustCompile(`(birome|boligrafo|lapicera)s? roja?s?\b`),
			Target:  "Bolígrafo BIC Cristal Rojo Trazo 1mm",
		},
		{
			Name:    "birome",
			Pattern: regexp.MustCompile(`\b(birome|boligrafo|lapicera)s?\b`),
			Target:  "Bolígrafo BIC Cristal Azul Trazo 1mm",
		},
		{
			Name:    "corrector",
			Pattern: regexp.MustCompile(`liquid ?paper|corrector`),
			Target:  "Corrector Líquido Tipo Lápiz 8ml",
		},

		// -- Paper goods sold by the sheet at the counter only.
		{
			Name:        "papel-madera",
			Pattern:     regexp.MustCompile(`papel madera`),
			Target:      "Papel Madera (pliego)",
			InStoreOnly: true,
		},
		{
			Name:        "papel-afiche",
			Pattern:     regexp.MustCompile(`papel afiche`),
			Target:      "Papel Afiche (pliego)",
			InStoreOnly: true,
		},
		{
			Name:        "papel-misionero",
			Pattern:     regexp.MustCompile(`papel misionero`),
			Target:      "Papel Misionero (pliego)",
			InStoreOnly: true,
		},
		{
			Name:        "cartulina",
			Pattern:     regexp.MustCompile(`cartulina`),
			Target:      "Cartulina Escolar (pliego)",
			InStoreOnly: true,
		},

		// -- Notebook refills: the matcher flips rayado/cuadriculado.
		{
			Name:    "repuesto-cuadriculado",
			Pattern: regexp.MustCompile(`(hojas?|repuesto)s? cuadriculad[ao]s?`),
			Target:  "Repuesto Escolar Cuadriculado x48 Hojas",
		},
		{
			Name:    "repuesto-rayado",
			Pattern: regexp.MustCompile(`(hojas?|repuesto)s? rayad[ao]s?`),
			Target:  "Repuesto Escolar Rayado x48 Hojas",
		},

		// -- Art supplies
		{
			Name:    "block-dibujo",
			Pattern: regexp.MustCompile(`block (de )?dibujo|el nene`),
			Target:  "Block de Dibujo El Nene Nº5 Blanco",
		},
		{
			Name:    "lapices-colores",
			Pattern: regexp.MustCompile(`lapices (de )?colores|pinturitas`),
			Target:  "Lápices de Colores x12 Largos",
		},
		{
			Name:    "temperas",
			Pattern: regexp.MustCompile(`temperas?\b`),
			Target:  "Témperas x6 Colores 8ml",
		},
		{
			Name:    "acuarelas",
			Pattern: regexp.MustCompile(`acuarelas?\b`),
			Target:  "Acuarelas x12 Colores con Pincel",
		},
		{
			Name:    "plastilina",
			Pattern: regexp.MustCompile(`plastilina|masa (para )?modelar`),
			Target:  "Plastilina x6 Colores",
		},

		// -- Erasers. Keep below goma eva / goma de pegar lookalikes.
		{
			Name:    "goma-eva",
			Pattern: regexp.MustCompile(`goma eva`),
			Target:  "Goma Eva 40x60cm",
		},
		{
			Name:    "goma-borrar",
			Pattern: regexp.MustCompile(`goma( de borrar| blanca)?\b`),
			Target:  "Goma de Borrar Lápiz y Tinta",
		},

		// -- Tape. Specific paper tape before the generic rule.
		{
			Name:    "cinta-papel",
			Pattern: regexp.MustCompile(`cinta de papel`),
			Target:  "Cinta de Papel 24mm x 50m",
		},
		{
			Name:    "cinta",
			Pattern: regexp.MustCompile(`\bcintas?\b|scotch`),
			Target:  "Cinta Adhesiva Cristal 12mm x 30m",
		},

		// -- Everything the matcher resolves to the wrong variant often
		// enough to have earned a ticket.
		{
			Name:    "cartuchera",
			Pattern: regexp.MustCompile(`cartuchera|canopla`),
			Target:  "Cartuchera 1 Piso Lisa",
		},
		{
			Name:    "sacapuntas",
			Pattern: regexp.MustCompile(`sacapuntas|tajador`),
			Target:  "Sacapuntas Metálico Simple",
		},
		{
			Name:    "tijera",
			Pattern: regexp.MustCompile(`\btijeras?\b|\btigeras?\b`),
			Target:  "Tijera Escolar 13cm Punta Redonda",
		},
		{
			Name:    "compas",
			Pattern: regexp.MustCompile(`\bcompas\b`),
			Target:  "Compás Escolar Metálico",
		},
		{
			Name:    "transportador",
			Pattern: regexp.MustCompile(`transportador`),
			Target:  "Transportador 180º Cristal",
		},
		{
			Name:    "folios",
			Pattern: regexp.MustCompile(`\bfolios?\b|fundas? a4`),
			Target:  "Folios A4 x10 Transparentes",
		},
	}
}
