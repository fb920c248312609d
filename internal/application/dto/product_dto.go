package dto

import "time"

// ProductRequest body para crear/actualizar un producto.
// Slug es opcional: si falta se deriva del nombre.
type ProductRequest struct {
	CategoryID   int64  `json:"category_id"`
	Name         string `json:"name"`
	Slug         string `json:"slug,omitempty"`
	Presentation string `json:"presentation,omitempty"`
	Supplier     string `json:"supplier,omitempty"`
}

// ProductResponse producto serializado.
type ProductResponse struct {
	ID           int64     `json:"id"`
	CategoryID   int64     `json:"category_id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Presentation string    `json:"presentation,omitempty"`
	Supplier     string    `json:"supplier,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
