package usecase

import (
	"github.com/jhoicas/inventario-lotes/internal/domain"
	"github.com/jhoicas/inventario-lotes/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes/internal/domain/repository"
	"github.com/jhoicas/inventario-lotes/pkg/logger"
)

// MovementUseCase lectura del libro de movimientos. El libro es append-only:
// los movimientos los crea el motor de stock y aquí solo se consultan.
// Delete existe como salida administrativa (rol admin) y queda logueado
// porque rompe la propiedad de que el libro reproduce cada cambio de stock.
type MovementUseCase struct {
	movementRepo repository.MovementRepository
	batchRepo    repository.BatchRepository
	log          *logger.Logger
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movementRepo repository.MovementRepository, batchRepo repository.BatchRepository, log *logger.Logger) *MovementUseCase {
	return &MovementUseCase{movementRepo: movementRepo, batchRepo: batchRepo, log: log}
}

// GetByID devuelve el movimiento si su lote pertenece a la empresa.
func (uc *MovementUseCase) GetByID(id, companyID int64) (*entity.Movement, error) {
	movement, err := uc.movementRepo.GetByIDAndCompany(id, companyID)
	if err != nil {
		return nil, err
	}
	if movement == nil {
		return nil, domain.ErrNotFound
	}
	return movement, nil
}

// List lista movimientos de la empresa con filtros opcionales por lote y tipo.
func (uc *MovementUseCase) List(companyID int64, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	if filter.Type != "" && !entity.ValidMovementType(filter.Type) {
		return nil, domain.ErrInvalidInput
	}
	if filter.BatchID > 0 {
		batch, err := uc.batchRepo.GetByIDAndCompany(filter.BatchID, companyID)
		if err != nil {
			return nil, err
		}
		if batch == nil {
			return nil, domain.ErrNotFound
		}
	}
	return uc.movementRepo.ListByCompany(companyID, filter, limit, offset)
}

// Delete borra un movimiento del libro. Solo para administración: el lote
// queda sin el respaldo contable de ese cambio.
func (uc *MovementUseCase) Delete(id, companyID int64) error {
	movement, err := uc.GetByID(id, companyID)
	if err != nil {
		return err
	}
	uc.log.Warn().
		Int64("movement_id", movement.ID).
		Int64("batch_id", movement.BatchID).
		Int64("company_id", companyID).
		Str("type", movement.Type).
		Int64("quantity", movement.Quantity).
		Msg("borrado administrativo de movimiento: el libro deja de cuadrar con el lote")
	return uc.movementRepo.Delete(id, companyID)
}
