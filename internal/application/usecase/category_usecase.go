package usecase

import (
	"time"

	"github.com/jhoicas/inventario-lotes/internal/domain"
	"github.com/jhoicas/inventario-lotes/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes/internal/domain/repository"
	"github.com/jhoicas/inventario-lotes/pkg/slug"
)

// CategoryUseCase CRUD de categorías, siempre acotado a la empresa del caller.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// Create crea una categoría para la empresa. El slug se deriva del nombre si
// no viene; un slug repetido en la empresa devuelve ErrConflict.
func (uc *CategoryUseCase) Create(companyID int64, name, description, slugIn string) (*entity.Category, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	s := slugIn
	if s == "" {
		s = slug.Make(name)
	}
	existing, err := uc.categoryRepo.GetByCompanyAndSlug(companyID, s)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	category := &entity.Category{
		CompanyID:   companyID,
		Name:        name,
		Description: description,
		Slug:        s,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetByID devuelve la categoría si pertenece a la empresa; si no, ErrNotFound.
func (uc *CategoryUseCase) GetByID(id, companyID int64) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return category, nil
}

// List lista las categorías de la empresa.
func (uc *CategoryUseCase) List(companyID int64, limit, offset int) ([]*entity.Category, error) {
	return uc.categoryRepo.ListByCompany(companyID, limit, offset)
}

// Update actualiza nombre/descripción/slug. La empresa nunca cambia.
func (uc *CategoryUseCase) Update(id, companyID int64, name, description, slugIn string) (*entity.Category, error) {
	category, err := uc.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if name != "" {
		category.Name = name
	}
	category.Description = description
	if slugIn != "" && slugIn != category.Slug {
		existing, err := uc.categoryRepo.GetByCompanyAndSlug(companyID, slugIn)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrConflict
		}
		category.Slug = slugIn
	}
	category.UpdatedAt = time.Now()
	if err := uc.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete elimina la categoría de la empresa (cascada a productos en BD).
func (uc *CategoryUseCase) Delete(id, companyID int64) error {
	return uc.categoryRepo.Delete(id, companyID)
}
