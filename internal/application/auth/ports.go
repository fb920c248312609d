package auth

import (
	"context"

	"github.com/jhoicas/inventario-lotes/internal/domain/repository"
)

// TxRunner ejecuta el callback con repos de usuario y empresa atados a una
// única transacción: el alta de empresa y la de su primer usuario se
// confirman o deshacen juntas, sin dejar empresas huérfanas.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		companyRepo repository.CompanyRepository,
	) error) error
}
