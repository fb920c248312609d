package repository

import "github.com/jhoicas/inventario-lotes/internal/domain/entity"

// BatchRepository define el puerto de persistencia para Batch (DIP).
//
// Los métodos *ForUpdate solo tienen sentido dentro de una transacción
// (repositorio construido sobre la tx del TxRunner): bloquean las filas
// leídas hasta el Commit/Rollback.
type BatchRepository interface {
	// Create persiste un lote nuevo. Devuelve domain.ErrConflict si el
	// código ya está usado en ese producto (constraint único).
	Create(batch *entity.Batch) error
	GetByIDAndCompany(id, companyID int64) (*entity.Batch, error)
	// GetForUpdate lee el lote con bloqueo de fila (SELECT FOR UPDATE),
	// verificando de paso que pertenece a la empresa.
	GetForUpdate(id, companyID int64) (*entity.Batch, error)
	// ListAvailableForUpdate devuelve los lotes con disponibilidad > 0 de un
	// producto en orden FEFO (vencimiento ascendente, NULL al final, id como
	// desempate) y bloquea sus filas para serializar salidas concurrentes.
	ListAvailableForUpdate(productID int64) ([]*entity.Batch, error)
	// Save persiste la cantidad disponible mutada por el motor.
	Save(batch *entity.Batch) error
	// LastByCompany devuelve el lote más reciente (mayor id) entre todos los
	// productos de la empresa, o nil, nil si no hay ninguno.
	LastByCompany(companyID int64) (*entity.Batch, error)
	SumAvailableByProduct(productID int64) (int64, error)
	ListByCompany(companyID, productID int64, limit, offset int) ([]*entity.Batch, error)
	Delete(id, companyID int64) error
}
