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

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: solo INSERT y SELECT en operación normal.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `m.id, m.batch_id, m.movement_type, m.quantity, m.note, m.reference, m.created_at`

// Create persiste un movimiento y asigna el ID generado.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (batch_id, movement_type, quantity, note, reference, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.BatchID, movement.Type, movement.Quantity, movement.Note,
		nullIfEmpty(movement.Reference), movement.CreatedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByIDAndCompany obtiene un movimiento verificando, vía lote y producto,
// que pertenece a la empresa; nil, nil si no existe o es de otra empresa.
func (r *MovementRepo) GetByIDAndCompany(id, companyID int64) (*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements m
		JOIN batches b ON b.id = m.batch_id
		JOIN products p ON p.id = b.product_id
		WHERE m.id = $1 AND p.company_id = $2`
	var m entity.Movement
	var reference *string
	err := r.q.QueryRow(context.Background(), query, id, companyID).Scan(
		&m.ID, &m.BatchID, &m.Type, &m.Quantity, &m.Note, &reference, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	m.Reference = emptyIfNull(reference)
	return &m, nil
}

// ListByCompany lista los movimientos de la empresa con filtros opcionales
// por lote y tipo, paginados, más reciente primero.
func (r *MovementRepo) ListByCompany(companyID int64, filter repository.MovementFilter, limit, offset int) ([]*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movements m
		JOIN batches b ON b.id = m.batch_id
		JOIN products p ON p.id = b.product_id
		WHERE p.company_id = $1`
	args := []any{companyID}
	pos := 2
	if filter.BatchID > 0 {
		query += fmt.Sprintf(" AND m.batch_id = $%d", pos)
		args = append(args, filter.BatchID)
		pos++
	}
	if filter.Type != "" {
		query += fmt.Sprintf(" AND m.movement_type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY m.id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		var reference *string
		if err := rows.Scan(&m.ID, &m.BatchID, &m.Type, &m.Quantity, &m.Note, &reference, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Reference = emptyIfNull(reference)
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete borra un movimiento (salida administrativa; rompe la trazabilidad del lote).
func (r *MovementRepo) Delete(id, companyID int64) error {
	cmd, err := r.q.Exec(context.Background(), `
		DELETE FROM movements m
		USING batches b, products p
		WHERE m.id = $1 AND b.id = m.batch_id AND p.id = b.product_id AND p.company_id = $2`,
		id, companyID)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
