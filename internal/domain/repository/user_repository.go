package repository

import (
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User y sus roles (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	List(search string, limit, offset int) ([]*entity.User, int, error)
	Delete(id string) error

	// SetLockout fija (o limpia, con nil) el fin del bloqueo.
	// Devuelve false si el usuario no existe.
	SetLockout(id string, until *time.Time) (bool, error)

	// Gestión de roles (muchos-a-muchos). AddRoles y RemoveRoles se invocan
	// dentro de una transacción para reemplazos atómicos.
	GetRoles(id string) ([]string, error)
	AddRoles(id string, roles []string) error
	RemoveRoles(id string, roles []string) error
}
