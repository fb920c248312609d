package repository

import "github.com/jhoicas/inventario-lotes/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Todas las lecturas van filtradas por empresa: un id de otra empresa se
// comporta igual que un id inexistente.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByIDAndCompany(id, companyID int64) (*entity.Category, error)
	GetByCompanyAndSlug(companyID int64, slug string) (*entity.Category, error)
	Update(category *entity.Category) error
	ListByCompany(companyID int64, limit, offset int) ([]*entity.Category, error)
	Delete(id, companyID int64) error
}
