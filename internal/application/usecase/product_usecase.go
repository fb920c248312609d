package usecase

import (
	"time"

	"github.com/jhoicas/inventario-lotes/internal/application/dto"
	"github.com/jhoicas/inventario-lotes/internal/domain"
	"github.com/jhoicas/inventario-lotes/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes/internal/domain/repository"
	"github.com/jhoicas/inventario-lotes/pkg/slug"
)

// ProductUseCase CRUD de productos, acotado a la empresa del caller.
// La categoría asignada debe ser de la misma empresa: una categoría ajena se
// rechaza como entrada inválida, no como "no encontrada", porque el producto
// en sí es del caller.
type ProductUseCase struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, categoryRepo: categoryRepo}
}

// Create crea un producto validando que la categoría es de la empresa.
func (uc *ProductUseCase) Create(companyID int64, in dto.ProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.CategoryID == 0 {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByIDAndCompany(in.CategoryID, companyID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrInvalidInput
	}

	s := in.Slug
	if s == "" {
		s = slug.Make(in.Name)
	}
	existing, err := uc.productRepo.GetByCompanyAndSlug(companyID, s)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrConflict
	}

	now := time.Now()
	product := &entity.Product{
		CompanyID:    companyID,
		CategoryID:   category.ID,
		Name:         in.Name,
		Slug:         s,
		Presentation: in.Presentation,
		Supplier:     in.Supplier,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID devuelve el producto si pertenece a la empresa; si no, ErrNotFound.
func (uc *ProductUseCase) GetByID(id, companyID int64) (*entity.Product, error) {
	product, err := uc.productRepo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// List lista los productos de la empresa.
func (uc *ProductUseCase) List(companyID int64, limit, offset int) ([]*entity.Product, error) {
	return uc.productRepo.ListByCompany(companyID, limit, offset)
}

// Update actualiza el producto. Cambiar de categoría exige que la nueva
// también sea de la empresa; la empresa nunca cambia.
func (uc *ProductUseCase) Update(id, companyID int64, in dto.ProductRequest) (*entity.Product, error) {
	product, err := uc.GetByID(id, companyID)
	if err != nil {
		return nil, err
	}
	if in.CategoryID != 0 && in.CategoryID != product.CategoryID {
		category, err := uc.categoryRepo.GetByIDAndCompany(in.CategoryID, companyID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrInvalidInput
		}
		product.CategoryID = category.ID
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Slug != "" && in.Slug != product.Slug {
		existing, err := uc.productRepo.GetByCompanyAndSlug(companyID, in.Slug)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrConflict
		}
		product.Slug = in.Slug
	}
	product.Presentation = in.Presentation
	product.Supplier = in.Supplier
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete elimina el producto de la empresa (cascada a lotes y movimientos en BD).
func (uc *ProductUseCase) Delete(id, companyID int64) error {
	return uc.productRepo.Delete(id, companyID)
}
