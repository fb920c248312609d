package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-lotes/internal/application/auth"
	"github.com/jhoicas/inventario-lotes/internal/domain/repository"
)

// Ensure AuthTxRunner implements auth.TxRunner.
var _ auth.TxRunner = (*AuthTxRunner)(nil)

// AuthTxRunner ejecuta el alta de empresa + usuario dentro de una
// transacción PostgreSQL.
type AuthTxRunner struct {
	pool *pgxpool.Pool
}

// NewAuthTxRunner construye el runner con el pool.
func NewAuthTxRunner(pool *pgxpool.Pool) *AuthTxRunner {
	return &AuthTxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback.
func (r *AuthTxRunner) Run(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	userRepo := NewUserRepository(tx)
	companyRepo := NewCompanyRepository(tx)

	if err := fn(userRepo, companyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
