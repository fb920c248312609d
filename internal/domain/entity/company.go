package entity

import "time"

// Company representa una organización/tenant del sistema. Todo recurso
// (categorías, productos, lotes, movimientos) cuelga de una Company y nunca
// es visible para usuarios de otra.
type Company struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
