package repository

import "github.com/jhoicas/inventario-lotes/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByIDAndCompany(id, companyID int64) (*entity.Product, error)
	GetByCompanyAndSlug(companyID int64, slug string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByCompany(companyID int64, limit, offset int) ([]*entity.Product, error)
	Delete(id, companyID int64) error
}
