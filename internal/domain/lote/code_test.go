package lote_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-lotes/internal/domain/lote"
)

func TestFormatCode(t *testing.T) {
	assert.Equal(t, "LOTE-7-0001", lote.FormatCode(7, 1))
	assert.Equal(t, "LOTE-12-0123", lote.FormatCode(12, 123))
	// Más de 4 dígitos: no se trunca, solo deja de rellenar.
	assert.Equal(t, "LOTE-7-10000", lote.FormatCode(7, 10000))
}

func TestNextNumber_SinLotePrevio(t *testing.T) {
	assert.Equal(t, 1, lote.NextNumber(""), "sin lote previo el consecutivo arranca en 1")
}

func TestNextNumber_IncrementaConsecutivo(t *testing.T) {
	assert.Equal(t, 2, lote.NextNumber("LOTE-7-0001"))
	assert.Equal(t, 100, lote.NextNumber("LOTE-7-0099"))
	assert.Equal(t, 10001, lote.NextNumber("LOTE-7-10000"))
}

func TestNextNumber_CodigoManualNoNumerico(t *testing.T) {
	// Un último lote con código manual sin segmento numérico reinicia en 1.
	assert.Equal(t, 1, lote.NextNumber("MANUAL"))
	assert.Equal(t, 1, lote.NextNumber("LOTE-7-ABC"))
}

func TestNextNumber_SegmentoFinalNumerico(t *testing.T) {
	// Solo importa el último segmento separado por "-".
	assert.Equal(t, 13, lote.NextNumber("ABC-12"))
}
