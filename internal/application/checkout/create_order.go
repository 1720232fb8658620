// Package checkout convierte un carrito en un pedido del Order Ledger.
package checkout

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/tienda-api/internal/application/cart"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	appOrder "github.com/jhoicas/tienda-api/internal/application/order"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// CreateOrderUseCase crea el pedido con instantáneas de producto en una sola
// transacción, vacía el carrito y publica el evento para el worker.
type CreateOrderUseCase struct {
	txRunner    TxRunner
	cartStore   cart.CartStore
	productRepo repository.ProductRepository
	publisher   OrderPublisher
	log         *logger.Logger
}

// NewCreateOrderUseCase construye el caso de uso.
func NewCreateOrderUseCase(
	txRunner TxRunner,
	cartStore cart.CartStore,
	productRepo repository.ProductRepository,
	publisher OrderPublisher,
	log *logger.Logger,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		txRunner:    txRunner,
		cartStore:   cartStore,
		productRepo: productRepo,
		publisher:   publisher,
		log:         log,
	}
}

// CreateOrder arma el pedido desde el carrito. UserID vacío es pedido de invitado.
// Las líneas copian nombre y precio del producto al momento del checkout;
// el total es la suma de líneas más el precio de envío.
func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, cartKey, userID string, in dto.CheckoutRequest) (*dto.OrderResponse, error) {
	if in.CustomerName == "" || in.DeliveryAddress == "" || in.PaymentMethod == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.DeliveryPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	cartItems, err := uc.cartStore.Items(ctx, cartKey)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, domain.ErrEmptyCart
	}

	now := time.Now()
	order := &entity.Order{
		ID:              uuid.New().String(),
		OrderNumber:     newOrderNumber(now),
		UserID:          userID,
		CustomerName:    in.CustomerName,
		CustomerPhone:   in.CustomerPhone,
		CustomerEmail:   in.CustomerEmail,
		DeliveryAddress: in.DeliveryAddress,
		DeliveryMethod:  in.DeliveryMethod,
		DeliveryPrice:   in.DeliveryPrice,
		PaymentMethod:   in.PaymentMethod,
		Notes:           in.Notes,
		Status:          entity.OrderStatusNew,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	total := in.DeliveryPrice
	for productID, qty := range cartItems {
		product, err := uc.productRepo.GetByID(productID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsAvailable {
			return nil, domain.ErrNotFound
		}
		item := entity.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    qty,
		}
		order.Items = append(order.Items, item)
		total = total.Add(item.TotalPrice())
	}
	order.TotalAmount = total

	err = uc.txRunner.RunOrders(ctx, func(orderRepo repository.OrderRepository, _ repository.ProductRepository) error {
		return orderRepo.Create(order)
	})
	if err != nil {
		return nil, err
	}

	if err := uc.cartStore.Clear(ctx, cartKey); err != nil {
		uc.log.Warn().Err(err).Str("cart", cartKey).Msg("no se pudo vaciar el carrito tras el checkout")
	}

	msg := dto.OrderPlacedMessage{OrderID: order.ID, OrderNumber: order.OrderNumber, UserID: userID}
	if err := uc.publisher.PublishOrderPlaced(ctx, msg); err != nil {
		uc.log.Error().Err(err).Str("order_id", order.ID).Msg("publicar pedido creado")
	}

	return appOrder.ToOrderResponse(order), nil
}

// newOrderNumber genera el identificador visible del pedido, ej: ORD-20260830-483920.
func newOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%06d", now.Format("20060102"), rand.IntN(1_000_000))
}
