package repository

import (
	"time"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// OrderFilter filtros del listado de pedidos.
type OrderFilter struct {
	Status string
	From   *time.Time
	To     *time.Time
}

// OrderRepository define el puerto de persistencia para Order (DIP).
// Create persiste cabecera y líneas; el resto de escrituras es solo el estado.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List(filter OrderFilter, limit, offset int) ([]*entity.Order, int, error)
	ListBetween(from, to time.Time) ([]*entity.Order, error)

	// UpdateStatus sobreescribe el estado y refresca updated_at.
	// Devuelve false si no existe un pedido con ese id.
	UpdateStatus(id, status string, updatedAt time.Time) (bool, error)

	CountByUser(userID string) (int, error)
}
