package matcher

import "fmt"

// Extraction prompts. These belong to the matcher collaborator, not the core
// pipeline: the core receives already-extracted items.

const extractFromImagePrompt = `Esta es una foto de una lista de útiles escolares.
Leé todos los productos que aparecen, incluyendo texto manuscrito o impreso.
Extraé cada ítem con su cantidad. Devolvé SOLO un JSON válido con este formato:
[{"item": "nombre del producto", "quantity": número, "notes": "detalles extra si hay"}]

Si no hay cantidad especificada, usá 1.
Ignorá encabezados, nombres de colegios, grados, fechas y texto irrelevante.
Respondé SOLO con el JSON, sin texto adicional.`

func extractFromTextPrompt(rawText string) string {
	return fmt.Sprintf(`Analizá el siguiente texto que es una lista de útiles escolares.
Extraé cada ítem con su cantidad. Devolvé SOLO un JSON válido con este formato:
[{"item": "nombre del producto", "quantity": número, "notes": "detalles extra si hay"}]

Si no hay cantidad especificada, usá 1.
Ignorá encabezados, nombres de colegios, grados, fechas y texto irrelevante.

TEXTO DE LA LISTA:
%s

Respondé SOLO con el JSON, sin texto adicional.`, rawText)
}
