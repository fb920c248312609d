package repository

import "github.com/jhoicas/inventario-lotes/internal/domain/entity"

// MovementFilter filtros opcionales para listar movimientos.
// Cero/vacío = sin filtro.
type MovementFilter struct {
	BatchID int64
	Type    string
}

// MovementRepository define el puerto de persistencia para Movement (DIP).
// El libro es append-only: no hay Update, y Delete existe únicamente como
// salida administrativa que rompe la trazabilidad del lote.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByIDAndCompany(id, companyID int64) (*entity.Movement, error)
	ListByCompany(companyID int64, filter MovementFilter, limit, offset int) ([]*entity.Movement, error)
	Delete(id, companyID int64) error
}
