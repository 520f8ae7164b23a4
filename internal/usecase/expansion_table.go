package usecase

// ExpansionTable maps user-facing vocabulary (regional slang, brand-name
// genericization, common misspellings) to the vocabulary the catalog actually
// uses in product names. Keys are normalized (see Normalize); values are
// phrases expected to appear in catalog names.
//
// This table is the cheapest lever against the vocabulary gap between how
// people write supply lists and how the store names products, and it grows one
// flat entry at a time as new failure cases show up in support tickets. Keep
// entries independent; never encode precedence here (that belongs to the
// override rules).
type ExpansionTable map[string][]string

// DefaultExpansionTable returns the production vocabulary table.
func DefaultExpansionTable() ExpansionTable {
	return ExpansionTable{
		// Pens and pencils. "birome" is the universal Argentine word for a
		// ballpoint; catalogs index them as "boligrafo" or "lapicera".
		"birome":      {"boligrafo", "lapicera", "bic"},
		"virome":      {"boligrafo", "lapicera"},
		"lapicera":    {"boligrafo", "roller", "pluma"},
		"boligrafo":   {"birome", "lapicera"},
		"lapiz":       {"lapiz", "grafito"},
		"lapis":       {"lapiz"},
		"lapiz negro": {"lapiz grafito", "lapiz hb"},
		"portaminas":  {"portaminas", "minas"},
		"minas":       {"minas", "portaminas"},

		// Markers. Regional names abound: fibras, fibrones, felpones.
		"fibras":       {"marcadores", "fibras"},
		"fibra":        {"marcador", "fibra"},
		"fibrones":     {"marcadores", "fibron"},
		"fibron":       {"marcador", "fibron"},
		"felpones":     {"marcadores"},
		"marcadores":   {"marcadores", "fibras"},
		"microfibra":   {"microfibra", "marcador fino"},
		"resaltador":   {"resaltador", "marcador fluorescente"},
		"resaltadores": {"resaltador", "marcador fluorescente"},

		// Color pencils / crayons / paint
		"lapices de colores": {"lapices de colores", "pinturitas"},
		"pinturitas":         {"lapices de colores"},
		"colores":            {"lapices de colores"},
		"crayones":           {"crayones", "ceras"},
		"ceritas":            {"crayones", "ceras"},
		"crayolas":           {"crayones"},
		"tempera":            {"tempera", "pintura"},
		"temperas":           {"tempera"},
		"acuarela":           {"acuarela"},
		"acuarelas":          {"acuarela"},
		"pincel":             {"pincel"},
		"pinceleta":          {"pincel", "pinceleta"},

		// Adhesives. "voligoma" and "plasticola" are brand names used
		// generically; both get misspelled constantly ("boligoma").
		"voligoma":           {"voligoma", "adhesivo"},
		"boligoma":           {"voligoma", "adhesivo"},
		"plasticola":         {"plasticola", "adhesivo vinilico"},
		"cascola":            {"cola vinilica", "adhesivo vinilico"},
		"cola vinilica":      {"adhesivo vinilico", "plasticola"},
		"adhesivo vinilico":  {"plasticola", "cola vinilica"},
		"pegamento":          {"adhesivo", "voligoma", "plasticola"},
		"goma de pegar":      {"adhesivo", "voligoma"},
		"pegamento en barra": {"adhesivo en barra"},
		"boligrafo de pegar": {"adhesivo en barra"},
		"silicona":           {"silicona", "adhesivo"},

		// Erasers / correction
		"goma de borrar": {"goma de borrar"},
		"goma blanca":    {"goma de borrar"},
		"liquid paper":   {"corrector"},
		"liquidpaper":    {"corrector"},
		"corrector":      {"corrector"},

		// Notebooks and paper refills. "Rivadavia", "Gloria" and "Exito" are
		// notebook brands people write instead of the product type.
		"cuaderno":             {"cuaderno"},
		"cuadernola":           {"cuaderno universitario"},
		"rivadavia":            {"cuaderno"},
		"gloria":               {"cuaderno"},
		"exito":                {"cuaderno", "block"},
		"repuesto":             {"repuesto de hojas", "hojas"},
		"repuesto de hojas":    {"repuesto escolar"},
		"hojas rayadas":        {"repuesto rayado"},
		"hojas cuadriculadas":  {"repuesto cuadriculado"},
		"hojas lisas":          {"repuesto liso"},
		"resma":                {"resma a4", "hojas a4"},
		"hojas canson":         {"hojas canson", "hojas de color"},
		"canson":               {"hojas canson"},
		"carpeta":              {"carpeta"},
		"folios":               {"folio", "funda"},
		"folio":                {"folio", "funda"},
		"separadores":          {"separadores"},
		"etiquetas":            {"etiqueta"},
		"forro":                {"forro", "papel para forrar"},
		"contact":              {"papel contact", "forro"},

		// Drawing blocks. "El Nene" is the dominant block brand.
		"block de dibujo": {"block de dibujo"},
		"block":           {"block de dibujo", "block"},
		"el nene":         {"block de dibujo"},
		"block de hojas":  {"block", "repuesto"},

		// Craft papers, mostly sold by the sheet
		"papel glase":       {"papel glase"},
		"papel glace":       {"papel glase"},
		"papel afiche":      {"papel afiche"},
		"papel crepe":       {"papel crepe"},
		"papel madera":      {"papel madera"},
		"papel misionero":   {"papel misionero"},
		"papel barrilete":   {"papel barrilete"},
		"cartulina":         {"cartulina"},
		"cartulinas":        {"cartulina"},
		"goma eva":          {"goma eva"},
		"plastilina":        {"plastilina", "masa"},
		"masa para modelar": {"plastilina", "masa"},

		// Geometry kit
		"regla":         {"regla"},
		"escuadra":      {"escuadra"},
		"transportador": {"transportador"},
		"compas":        {"compas"},
		"compaz":        {"compas"},

		// Cutting / fixing
		"tijera":         {"tijera"},
		"tigera":         {"tijera"},
		"tijerita":       {"tijera escolar"},
		"cinta scotch":   {"cinta adhesiva"},
		"cinta adhesiva": {"cinta adhesiva"},
		"cinta de papel": {"cinta de papel"},
		"cinta":          {"cinta adhesiva"},
		"abrochadora":    {"abrochadora", "broches"},
		"broches":        {"broches"},
		"ganchitos":      {"broches", "clips"},
		"clips":          {"clips"},
		"perforadora":    {"perforadora"},
		"ojalillos":      {"ojalillos"},

		// Cases and misc
		"cartuchera":  {"cartuchera", "canopla"},
		"canopla":     {"cartuchera"},
		"sacapuntas":  {"sacapuntas"},
		"tajador":     {"sacapuntas"},
		"mochila":     {"mochila"},
		"mapa":        {"mapa"},
		"mapas":       {"mapa"},
		"diccionario": {"diccionario"},
	}
}
