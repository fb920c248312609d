package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/inventario-lotes/internal/domain"
	"github.com/jhoicas/inventario-lotes/internal/domain/entity"
	"github.com/jhoicas/inventario-lotes/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación de BatchRepository sobre PostgreSQL (usable con pool o tx).
// Los métodos *ForUpdate deben usarse con un repo atado a una transacción.
type BatchRepo struct {
	q Querier
}

// NewBatchRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBatchRepository(q Querier) *BatchRepo {
	return &BatchRepo{q: q}
}

const batchColumns = `b.id, b.product_id, b.code, b.quantity_received, b.quantity_available,
	b.purchase_price, b.expiration_date, b.supplier, b.received_at`

// Create persiste un lote nuevo y asigna el ID generado.
// Un código repetido en el producto devuelve ErrConflict (constraint único).
func (r *BatchRepo) Create(batch *entity.Batch) error {
	query := `
		INSERT INTO batches (product_id, code, quantity_received, quantity_available, purchase_price, expiration_date, supplier, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		batch.ProductID, nullIfEmpty(batch.Code), batch.QuantityReceived, batch.QuantityAvailable,
		batch.PurchasePrice, batch.ExpirationDate, batch.Supplier, batch.ReceivedAt,
	).Scan(&batch.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene un lote verificando, vía su producto, que
// pertenece a la empresa; nil, nil si no existe o es de otra empresa.
func (r *BatchRepo) GetByIDAndCompany(id, companyID int64) (*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM batches b
		JOIN products p ON p.id = b.product_id
		WHERE b.id = $1 AND p.company_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, companyID))
}

// GetForUpdate lee el lote con bloqueo de fila (SELECT FOR UPDATE) dentro de
// la transacción en curso, verificando la empresa.
func (r *BatchRepo) GetForUpdate(id, companyID int64) (*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM batches b
		JOIN products p ON p.id = b.product_id
		WHERE b.id = $1 AND p.company_id = $2
		FOR UPDATE OF b`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id, companyID))
}

// ListAvailableForUpdate devuelve los lotes disponibles del producto en orden
// FEFO (vencimiento ascendente, sin fecha al final, id como desempate) y
// bloquea sus filas hasta el fin de la transacción: dos salidas concurrentes
// sobre el mismo producto quedan serializadas aquí.
func (r *BatchRepo) ListAvailableForUpdate(productID int64) ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM batches b
		WHERE b.product_id = $1 AND b.quantity_available > 0
		ORDER BY b.expiration_date ASC NULLS LAST, b.id ASC
		FOR UPDATE`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list available batches: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// Save persiste la cantidad disponible mutada por el motor de stock.
func (r *BatchRepo) Save(batch *entity.Batch) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE batches SET quantity_available = $2 WHERE id = $1`,
		batch.ID, batch.QuantityAvailable)
	if err != nil {
		return fmt.Errorf("save batch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LastByCompany devuelve el lote más reciente (mayor id) entre todos los
// productos de la empresa; nil, nil si la empresa no tiene lotes.
func (r *BatchRepo) LastByCompany(companyID int64) (*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM batches b
		JOIN products p ON p.id = b.product_id
		WHERE p.company_id = $1
		ORDER BY b.id DESC
		LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID))
}

// SumAvailableByProduct suma la disponibilidad de todos los lotes del producto.
func (r *BatchRepo) SumAvailableByProduct(productID int64) (int64, error) {
	var total int64
	err := r.q.QueryRow(context.Background(),
		`SELECT COALESCE(SUM(quantity_available), 0) FROM batches WHERE product_id = $1`,
		productID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("sum available: %w", err)
	}
	return total, nil
}

// ListByCompany lista los lotes de la empresa, paginados; productID > 0
// filtra por producto.
func (r *BatchRepo) ListByCompany(companyID, productID int64, limit, offset int) ([]*entity.Batch, error) {
	query := `
		SELECT ` + batchColumns + `
		FROM batches b
		JOIN products p ON p.id = b.product_id
		WHERE p.company_id = $1`
	args := []any{companyID}
	pos := 2
	if productID > 0 {
		query += fmt.Sprintf(" AND b.product_id = $%d", pos)
		args = append(args, productID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY b.id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()
	return r.scanAll(rows)
}

// Delete elimina el lote si su producto pertenece a la empresa.
func (r *BatchRepo) Delete(id, companyID int64) error {
	cmd, err := r.q.Exec(context.Background(), `
		DELETE FROM batches b
		USING products p
		WHERE b.id = $1 AND p.id = b.product_id AND p.company_id = $2`,
		id, companyID)
	if err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *BatchRepo) scanOne(row pgx.Row) (*entity.Batch, error) {
	var b entity.Batch
	var code *string
	err := row.Scan(&b.ID, &b.ProductID, &code, &b.QuantityReceived, &b.QuantityAvailable,
		&b.PurchasePrice, &b.ExpirationDate, &b.Supplier, &b.ReceivedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get batch: %w", err)
	}
	b.Code = emptyIfNull(code)
	return &b, nil
}

func (r *BatchRepo) scanAll(rows pgx.Rows) ([]*entity.Batch, error) {
	var list []*entity.Batch
	for rows.Next() {
		var b entity.Batch
		var code *string
		if err := rows.Scan(&b.ID, &b.ProductID, &code, &b.QuantityReceived, &b.QuantityAvailable,
			&b.PurchasePrice, &b.ExpirationDate, &b.Supplier, &b.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		b.Code = emptyIfNull(code)
		list = append(list, &b)
	}
	return list, rows.Err()
}
