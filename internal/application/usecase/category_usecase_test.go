package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de las guardas de borrado de categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteCategory_NoEncontrada(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}

func TestDeleteCategory_ConProductos(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.categories["cat-1"] = &entity.Category{ID: "cat-1", Name: "Laptops"}
	repo.productCounts["cat-1"] = 3
	uc := usecase.NewCategoryUseCase(repo)

	assert.ErrorIs(t, uc.Delete("cat-1"), domain.ErrHasProducts)
	assert.Contains(t, repo.categories, "cat-1", "la categoría con productos no debe borrarse")
}

func TestDeleteCategory_ConSubcategorias(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.categories["cat-1"] = &entity.Category{ID: "cat-1", Name: "Electrónica"}
	repo.childCounts["cat-1"] = 2
	uc := usecase.NewCategoryUseCase(repo)

	assert.ErrorIs(t, uc.Delete("cat-1"), domain.ErrHasSubcategories)
	assert.Contains(t, repo.categories, "cat-1")
}

// Con productos Y subcategorías gana la guarda de productos: se comprueba primero.
func TestDeleteCategory_ProductosGananASubcategorias(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.categories["cat-1"] = &entity.Category{ID: "cat-1", Name: "Electrónica"}
	repo.productCounts["cat-1"] = 1
	repo.childCounts["cat-1"] = 1
	uc := usecase.NewCategoryUseCase(repo)

	assert.ErrorIs(t, uc.Delete("cat-1"), domain.ErrHasProducts)
}

func TestDeleteCategory_Vacia(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.categories["cat-1"] = &entity.Category{ID: "cat-1", Name: "Vacía"}
	uc := usecase.NewCategoryUseCase(repo)

	require.NoError(t, uc.Delete("cat-1"))
	assert.NotContains(t, repo.categories, "cat-1")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateCategory_PadreInexistente(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Hijas", ParentID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateCategory_NombreVacio(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	_, err := uc.Create(dto.CreateCategoryRequest{Name: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateCategory_NoPuedeSerSuPropioPadre(t *testing.T) {
	repo := newFakeCategoryRepo()
	repo.categories["cat-1"] = &entity.Category{ID: "cat-1", Name: "Electrónica"}
	uc := usecase.NewCategoryUseCase(repo)

	parent := "cat-1"
	_, err := uc.Update("cat-1", dto.UpdateCategoryRequest{ParentID: &parent})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateCategory_NoEncontrada(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	out, err := uc.Update("no-existe", dto.UpdateCategoryRequest{})
	require.NoError(t, err)
	assert.Nil(t, out)
}
