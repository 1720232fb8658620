package repository

import "github.com/jhoicas/tienda-api/internal/domain/entity"

// CategoryWithCounts agrega a la categoría los conteos que usa el listado admin.
type CategoryWithCounts struct {
	Category      entity.Category
	ProductCount  int
	ChildrenCount int
}

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]CategoryWithCounts, error)
	ListRoots() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
	Exists(id string) (bool, error)
	CountProducts(categoryID string) (int, error)
	CountSubcategories(categoryID string) (int, error)
}
