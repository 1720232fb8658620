package cart_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/cart"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

type memCartStore struct {
	items map[string]map[string]int
}

func newMemCartStore() *memCartStore {
	return &memCartStore{items: map[string]map[string]int{}}
}

func (s *memCartStore) Items(_ context.Context, key string) (map[string]int, error) {
	out := map[string]int{}
	for id, qty := range s.items[key] {
		out[id] = qty
	}
	return out, nil
}

func (s *memCartStore) IncrementItem(_ context.Context, key, productID string, by int) error {
	if s.items[key] == nil {
		s.items[key] = map[string]int{}
	}
	s.items[key][productID] += by
	return nil
}

func (s *memCartStore) SetItem(_ context.Context, key, productID string, qty int) error {
	if s.items[key] == nil {
		s.items[key] = map[string]int{}
	}
	s.items[key][productID] = qty
	return nil
}

func (s *memCartStore) RemoveItem(_ context.Context, key, productID string) error {
	delete(s.items[key], productID)
	return nil
}

func (s *memCartStore) Clear(_ context.Context, key string) error {
	delete(s.items, key)
	return nil
}

type stubProductRepo struct {
	products map[string]*entity.Product
}

func (r *stubProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *stubProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *stubProductRepo) List(repository.ProductFilter, int, int) ([]*entity.Product, int, error) {
	return nil, 0, nil
}
func (r *stubProductRepo) ListAll() ([]*entity.Product, error)           { return nil, nil }
func (r *stubProductRepo) Update(*entity.Product) error                  { return nil }
func (r *stubProductRepo) Delete(string) error                           { return nil }
func (r *stubProductRepo) SetAvailability([]string, bool) (int64, error) { return 0, nil }
func (r *stubProductRepo) DeleteByIDs([]string) (int64, error)           { return 0, nil }
func (r *stubProductRepo) DecrementStock(string, int) error              { return nil }

func newCartUC() (*cart.UseCase, *memCartStore, *stubProductRepo) {
	store := newMemCartStore()
	repo := &stubProductRepo{products: map[string]*entity.Product{}}
	return cart.NewUseCase(store, repo), store, repo
}

func TestAddItem_ProductoInexistente(t *testing.T) {
	uc, _, _ := newCartUC()

	err := uc.AddItem(context.Background(), "cart-1", dto.AddCartItemRequest{ProductID: "no-existe", Quantity: 1})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItem_ProductoNoDisponible(t *testing.T) {
	uc, _, repo := newCartUC()
	repo.products["p1"] = &entity.Product{ID: "p1", Name: "Mouse", IsAvailable: false}

	err := uc.AddItem(context.Background(), "cart-1", dto.AddCartItemRequest{ProductID: "p1", Quantity: 1})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddItem_AcumulaCantidad(t *testing.T) {
	uc, store, repo := newCartUC()
	repo.products["p1"] = &entity.Product{ID: "p1", Name: "Mouse", Price: decimal.NewFromInt(500), IsAvailable: true}
	ctx := context.Background()

	require.NoError(t, uc.AddItem(ctx, "cart-1", dto.AddCartItemRequest{ProductID: "p1", Quantity: 2}))
	require.NoError(t, uc.AddItem(ctx, "cart-1", dto.AddCartItemRequest{ProductID: "p1", Quantity: 3}))

	assert.Equal(t, 5, store.items["cart-1"]["p1"])
}

func TestUpdateItem_CantidadCeroElimina(t *testing.T) {
	uc, store, repo := newCartUC()
	repo.products["p1"] = &entity.Product{ID: "p1", IsAvailable: true}
	ctx := context.Background()
	require.NoError(t, store.SetItem(ctx, "cart-1", "p1", 3))

	require.NoError(t, uc.UpdateItem(ctx, "cart-1", "p1", 0))

	_, ok := store.items["cart-1"]["p1"]
	assert.False(t, ok, "cantidad 0 debe eliminar la línea")
}

func TestUpdateItem_CantidadNegativa(t *testing.T) {
	uc, _, _ := newCartUC()
	assert.ErrorIs(t, uc.UpdateItem(context.Background(), "cart-1", "p1", -1), domain.ErrInvalidInput)
}

// Get calcula el total con precio vivo y omite productos eliminados del catálogo.
func TestGet_PrecioVivoYProductosEliminados(t *testing.T) {
	uc, store, repo := newCartUC()
	repo.products["p1"] = &entity.Product{ID: "p1", Name: "Teclado", Price: decimal.NewFromInt(1200), IsAvailable: true}
	ctx := context.Background()
	require.NoError(t, store.SetItem(ctx, "cart-1", "p1", 2))
	require.NoError(t, store.SetItem(ctx, "cart-1", "p-borrado", 1))

	resp, err := uc.Get(ctx, "cart-1")

	require.NoError(t, err)
	require.Len(t, resp.Items, 1, "la línea del producto borrado se omite")
	assert.Equal(t, "p1", resp.Items[0].ProductID)
	assert.True(t, resp.Items[0].LineTotal.Equal(decimal.NewFromInt(2400)))
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(2400)))
}

func TestGet_CarritoVacio(t *testing.T) {
	uc, _, _ := newCartUC()

	resp, err := uc.Get(context.Background(), "cart-vacio")

	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.Total.IsZero())
}
