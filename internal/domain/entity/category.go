package entity

import "time"

// Category representa una categoría de productos de una empresa.
type Category struct {
	ID          int64
	CompanyID   int64
	Name        string
	Description string
	Slug        string // único por empresa
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
