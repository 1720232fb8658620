// Package cart implementa el carrito de la tienda sobre un almacén
// clave-valor con TTL. La clave es el id de usuario o el token de invitado.
package cart

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// CartStore puerto del almacén de carritos (Redis en producción).
type CartStore interface {
	Items(ctx context.Context, key string) (map[string]int, error)
	IncrementItem(ctx context.Context, key, productID string, by int) error
	SetItem(ctx context.Context, key, productID string, qty int) error
	RemoveItem(ctx context.Context, key, productID string) error
	Clear(ctx context.Context, key string) error
}

// UseCase operaciones del carrito con precios vivos del catálogo.
type UseCase struct {
	store       CartStore
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(store CartStore, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{store: store, productRepo: productRepo}
}

// AddItem acumula qty unidades del producto en el carrito.
// El producto debe existir y estar disponible.
func (uc *UseCase) AddItem(ctx context.Context, cartKey string, in dto.AddCartItemRequest) error {
	if in.ProductID == "" || in.Quantity < 1 {
		return domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil || !product.IsAvailable {
		return domain.ErrNotFound
	}
	return uc.store.IncrementItem(ctx, cartKey, in.ProductID, in.Quantity)
}

// UpdateItem fija la cantidad de una línea; cantidad 0 la elimina.
func (uc *UseCase) UpdateItem(ctx context.Context, cartKey, productID string, qty int) error {
	if qty < 0 {
		return domain.ErrInvalidInput
	}
	if qty == 0 {
		return uc.store.RemoveItem(ctx, cartKey, productID)
	}
	return uc.store.SetItem(ctx, cartKey, productID, qty)
}

// RemoveItem elimina la línea del producto.
func (uc *UseCase) RemoveItem(ctx context.Context, cartKey, productID string) error {
	return uc.store.RemoveItem(ctx, cartKey, productID)
}

// Clear vacía el carrito.
func (uc *UseCase) Clear(ctx context.Context, cartKey string) error {
	return uc.store.Clear(ctx, cartKey)
}

// Get devuelve el carrito con precio vivo por línea y total.
// Las líneas de productos que ya no existen se omiten.
func (uc *UseCase) Get(ctx context.Context, cartKey string) (*dto.CartResponse, error) {
	items, err := uc.store.Items(ctx, cartKey)
	if err != nil {
		return nil, err
	}
	resp := &dto.CartResponse{Items: []dto.CartItemResponse{}, Total: decimal.Zero}
	for productID, qty := range items {
		product, err := uc.productRepo.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			continue
		}
		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(qty)))
		resp.Items = append(resp.Items, dto.CartItemResponse{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    qty,
			LineTotal:   lineTotal,
		})
		resp.Total = resp.Total.Add(lineTotal)
	}
	return resp, nil
}
