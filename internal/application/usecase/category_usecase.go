package usecase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para el árbol de categorías.
// El borrado es preventivo: nunca hay cascada hacia productos ni subcategorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría; valida que el padre exista si se indica.
func (uc *CategoryUseCase) Create(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != "" {
		parent, err := uc.repo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		ParentID:    in.ParentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category, 0, 0), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	products, err := uc.repo.CountProducts(id)
	if err != nil {
		return nil, err
	}
	children, err := uc.repo.CountSubcategories(id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(category, products, children), nil
}

// List devuelve todas las categorías ordenadas por nombre con sus conteos.
func (uc *CategoryUseCase) List() (*dto.CategoryListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(&c.Category, c.ProductCount, c.ChildrenCount))
	}
	return &dto.CategoryListResponse{Items: items}, nil
}

// Update actualiza una categoría. Ante un conflicto de concurrencia del
// almacén se re-verifica la existencia una sola vez y se relanza el error.
func (uc *CategoryUseCase) Update(id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	if in.ParentID != nil {
		if *in.ParentID == id {
			return nil, domain.ErrInvalidInput // una categoría no puede ser su propio padre
		}
		category.ParentID = *in.ParentID
	}
	category.UpdatedAt = time.Now()
	if err := uc.repo.Update(category); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			exists, exErr := uc.repo.Exists(id)
			if exErr == nil && !exists {
				return nil, nil
			}
			return nil, err
		}
		return nil, err
	}
	products, _ := uc.repo.CountProducts(id)
	children, _ := uc.repo.CountSubcategories(id)
	return toCategoryResponse(category, products, children), nil
}

// Delete elimina una categoría si no tiene productos ni subcategorías.
// Devuelve ErrHasProducts o ErrHasSubcategories cuando la guarda lo impide.
func (uc *CategoryUseCase) Delete(id string) error {
	category, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	products, err := uc.repo.CountProducts(id)
	if err != nil {
		return err
	}
	if products > 0 {
		return domain.ErrHasProducts
	}
	children, err := uc.repo.CountSubcategories(id)
	if err != nil {
		return err
	}
	if children > 0 {
		return domain.ErrHasSubcategories
	}
	return uc.repo.Delete(id)
}

func toCategoryResponse(c *entity.Category, products, children int) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		Description:   c.Description,
		ParentID:      c.ParentID,
		ProductCount:  products,
		ChildrenCount: children,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
