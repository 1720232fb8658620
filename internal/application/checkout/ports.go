package checkout

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta fn con repositorios atados a una transacción del almacén.
type TxRunner interface {
	RunOrders(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// OrderPublisher publica el evento de pedido creado para el worker de
// cumplimiento. La publicación es best-effort: el pedido ya está persistido.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, msg dto.OrderPlacedMessage) error
}
