package entity

import "time"

// Product representa un producto del inventario. Pertenece a una Company y a
// una Category de la misma empresa; el stock vive en sus lotes (Batch).
type Product struct {
	ID           int64
	CompanyID    int64
	CategoryID   int64
	Name         string
	Slug         string
	Presentation string // ej. "caja x 12", "frasco 500ml"
	Supplier     string // distribuidor habitual
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
