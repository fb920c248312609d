package repository

import "github.com/jhoicas/inventario-lotes/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	// FindByEmail devuelve nil, nil si no existe (el email es único global).
	FindByEmail(email string) (*entity.User, error)
}
