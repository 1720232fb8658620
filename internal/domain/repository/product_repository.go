package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// ProductFilter filtros del listado de productos.
type ProductFilter struct {
	Search        string // busca en nombre y marca
	CategoryID    string
	OnlyAvailable bool // la tienda pública solo muestra disponibles
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, int, error)
	ListAll() ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(id string) error

	// Operaciones masivas por conjunto de ids. Los ids inexistentes se ignoran
	// en silencio; devuelven el número de filas afectadas.
	SetAvailability(ids []string, available bool) (int64, error)
	DeleteByIDs(ids []string) (int64, error)

	// DecrementStock descuenta qty unidades; lo usa el worker dentro de una tx.
	DecrementStock(productID string, qty int) error
}
