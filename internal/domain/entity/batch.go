package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Batch representa un lote de un producto: una recepción concreta de
// mercancía con su cantidad, costo, proveedor y fecha de vencimiento.
//
// Invariantes que mantiene el motor de stock:
//   - QuantityReceived se fija al crear el lote y nunca cambia.
//   - QuantityAvailable solo lo mutan las operaciones del motor (salida,
//     ajuste, vencimiento), siempre junto a un Movement en la misma
//     transacción.
//   - Code, si existe, es único por producto (constraint en BD).
type Batch struct {
	ID                int64
	ProductID         int64
	Code              string // vacío = sin código; se genera al registrar la entrada
	QuantityReceived  int64
	QuantityAvailable int64
	PurchasePrice     decimal.Decimal
	ExpirationDate    *time.Time // nil = no vence
	Supplier          string
	ReceivedAt        time.Time
}

// Expired indica si el lote ya pasó su fecha de vencimiento en el instante t.
func (b *Batch) Expired(t time.Time) bool {
	return b.ExpirationDate != nil && b.ExpirationDate.Before(t)
}
