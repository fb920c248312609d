package entity

import "time"

// Tipos de movimiento de stock sobre un lote.
const (
	MovementTypeIn      = "IN"      // entrada (creación de lote)
	MovementTypeOut     = "OUT"     // salida FEFO
	MovementTypeAdjust  = "ADJUST"  // ajuste manual de cantidad
	MovementTypeExpired = "EXPIRED" // lote marcado como vencido
)

// ValidMovementType indica si t es uno de los tipos conocidos.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeAdjust, MovementTypeExpired:
		return true
	}
	return false
}

// Movement es un registro inmutable del libro de movimientos de un lote.
// Quantity es siempre una magnitud (>= 0), nunca un total resultante ni un
// valor con signo. Una vez creado no se modifica; borrarlo rompe la
// trazabilidad del lote y solo existe como salida administrativa.
type Movement struct {
	ID        int64
	BatchID   int64
	Type      string // IN, OUT, ADJUST, EXPIRED
	Quantity  int64
	Note      string
	Reference string // agrupa los OUT de una misma salida lógica (UUID)
	CreatedAt time.Time
}
