package usecase

import (
	"github.com/jhoicas/inventario-lotes/internal/domain"
	"github.com/jhoicas/inventario-lotes/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes/internal/domain/repository"
	"github.com/jhoicas/inventario-lotes/pkg/logger"
)

// BatchUseCase lectura y borrado administrativo de lotes. La creación de
// lotes NO pasa por aquí: solo el motor de stock crea lotes, para que cada
// lote nazca con su movimiento IN en la misma transacción.
type BatchUseCase struct {
	batchRepo   repository.BatchRepository
	productRepo repository.ProductRepository
	log         *logger.Logger
}

// NewBatchUseCase construye el caso de uso.
func NewBatchUseCase(batchRepo repository.BatchRepository, productRepo repository.ProductRepository, log *logger.Logger) *BatchUseCase {
	return &BatchUseCase{batchRepo: batchRepo, productRepo: productRepo, log: log}
}

// GetByID devuelve el lote si su producto pertenece a la empresa.
func (uc *BatchUseCase) GetByID(id, companyID int64) (*entity.Batch, error) {
	batch, err := uc.batchRepo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, domain.ErrNotFound
	}
	return batch, nil
}

// List lista los lotes de la empresa; productID > 0 filtra por producto
// (que debe ser de la empresa, si no ErrNotFound).
func (uc *BatchUseCase) List(companyID, productID int64, limit, offset int) ([]*entity.Batch, error) {
	if productID > 0 {
		product, err := uc.productRepo.GetByIDAndCompany(productID, companyID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
	}
	return uc.batchRepo.ListByCompany(companyID, productID, limit, offset)
}

// Delete borra un lote por acción administrativa. Deja huérfano el historial
// contable del lote (los movimientos caen en cascada), así que se deja
// rastro en el log.
func (uc *BatchUseCase) Delete(id, companyID int64) error {
	batch, err := uc.GetByID(id, companyID)
	if err != nil {
		return err
	}
	uc.log.Warn().
		Int64("batch_id", batch.ID).
		Int64("company_id", companyID).
		Str("code", batch.Code).
		Int64("quantity_available", batch.QuantityAvailable).
		Msg("borrado administrativo de lote: se pierde su historial de movimientos")
	return uc.batchRepo.Delete(id, companyID)
}
