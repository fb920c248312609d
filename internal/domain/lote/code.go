// Package lote contiene la lógica pura de códigos de lote: el formato
// legible LOTE-{empresa}-{consecutivo} y el parseo del consecutivo a partir
// del último lote registrado.
package lote

import (
	"fmt"
	"strconv"
	"strings"
)

// Separator separa los segmentos del código de lote.
const Separator = "-"

// FormatCode arma el código legible de un lote: LOTE-{companyID}-{n:04d}.
// El consecutivo se rellena con ceros a mínimo 4 dígitos.
func FormatCode(companyID int64, n int) string {
	return fmt.Sprintf("LOTE-%d-%04d", companyID, n)
}

// NextNumber calcula el consecutivo siguiente a partir del código del último
// lote de la empresa. Toma el último segmento separado por "-" y lo
// interpreta como entero; si el código está vacío o el segmento no es
// numérico, arranca en 1.
//
// El consecutivo es orientativo, no una secuencia estricta: dos entradas
// concurrentes pueden calcular el mismo número y es el constraint único
// (product_id, code) quien fuerza el reintento.
func NextNumber(lastCode string) int {
	if lastCode == "" {
		return 1
	}
	parts := strings.Split(lastCode, Separator)
	last := parts[len(parts)-1]
	n, err := strconv.Atoi(last)
	if err != nil || n < 0 {
		return 1
	}
	return n + 1
}
