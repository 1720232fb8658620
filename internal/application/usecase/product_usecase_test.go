package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

func newProductUC(t *testing.T) (*usecase.ProductUseCase, *fakeProductRepo, *fakeCategoryRepo) {
	t.Helper()
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	uc := usecase.NewProductUseCase(products, categories, &fakeImageStore{})
	return uc, products, categories
}

func seedProduct(repo *fakeProductRepo, id string, available bool) {
	repo.products[id] = &entity.Product{
		ID:          id,
		Name:        "Producto " + id,
		Price:       decimal.RequireFromString("100.00"),
		CategoryID:  "cat-1",
		IsAvailable: available,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests BulkAction
// ──────────────────────────────────────────────────────────────────────────────

// Selección vacía: rechaza sin tocar el almacén.
func TestBulkAction_SinSeleccion(t *testing.T) {
	uc, products, _ := newProductUC(t)
	seedProduct(products, "p1", true)

	err := uc.BulkAction(dto.BulkActionRequest{Action: usecase.BulkDelete, IDs: nil})

	assert.ErrorIs(t, err, domain.ErrNoSelection)
	assert.Empty(t, products.deletedByIDs, "con selección vacía no debe llegar ninguna llamada al repositorio")
	assert.Contains(t, products.products, "p1")
}

func TestBulkAction_AccionDesconocida(t *testing.T) {
	uc, products, _ := newProductUC(t)
	seedProduct(products, "p1", true)

	err := uc.BulkAction(dto.BulkActionRequest{Action: "archive", IDs: []string{"p1"}})

	assert.ErrorIs(t, err, domain.ErrUnknownAction)
	assert.Empty(t, products.setAvailabilityIDs)
	assert.Empty(t, products.deletedByIDs)
}

func TestBulkAction_Activate(t *testing.T) {
	uc, products, _ := newProductUC(t)
	seedProduct(products, "p1", false)
	seedProduct(products, "p2", false)

	err := uc.BulkAction(dto.BulkActionRequest{Action: usecase.BulkActivate, IDs: []string{"p1", "p2"}})

	require.NoError(t, err)
	assert.True(t, products.products["p1"].IsAvailable)
	assert.True(t, products.products["p2"].IsAvailable)
}

func TestBulkAction_Deactivate(t *testing.T) {
	uc, products, _ := newProductUC(t)
	seedProduct(products, "p1", true)

	err := uc.BulkAction(dto.BulkActionRequest{Action: usecase.BulkDeactivate, IDs: []string{"p1"}})

	require.NoError(t, err)
	assert.False(t, products.products["p1"].IsAvailable)
}

// Los ids inexistentes se ignoran en silencio: la acción aplica sobre los que
// existen y no reporta error por los demás.
func TestBulkAction_DeleteIgnoraIdsInexistentes(t *testing.T) {
	uc, products, _ := newProductUC(t)
	seedProduct(products, "p1", true)

	err := uc.BulkAction(dto.BulkActionRequest{Action: usecase.BulkDelete, IDs: []string{"p1", "no-existe"}})

	require.NoError(t, err)
	assert.NotContains(t, products.products, "p1")
	assert.Equal(t, []string{"p1", "no-existe"}, products.deletedByIDs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Create / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_CategoriaInexistente(t *testing.T) {
	uc, _, _ := newProductUC(t)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:       "Laptop",
		Price:      decimal.RequireFromString("999.00"),
		CategoryID: "no-existe",
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateProduct_PrecioNegativo(t *testing.T) {
	uc, _, categories := newProductUC(t)
	categories.categories["cat-1"] = &entity.Category{ID: "cat-1", Name: "Laptops"}

	_, err := uc.Create(dto.CreateProductRequest{
		Name:       "Laptop",
		Price:      decimal.RequireFromString("-1"),
		CategoryID: "cat-1",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteProduct_EliminaImagen(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo()
	images := &fakeImageStore{}
	uc := usecase.NewProductUseCase(products, categories, images)

	seedProduct(products, "p1", true)
	products.products["p1"].ImageURL = "/images/products/p1.jpg"

	require.NoError(t, uc.Delete("p1"))
	assert.NotContains(t, products.products, "p1")
	assert.Equal(t, []string{"/images/products/p1.jpg"}, images.deleted)
}

func TestDeleteProduct_NoEncontrado(t *testing.T) {
	uc, _, _ := newProductUC(t)
	assert.ErrorIs(t, uc.Delete("no-existe"), domain.ErrNotFound)
}
