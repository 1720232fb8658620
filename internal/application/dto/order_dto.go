package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateOrderStatusRequest entrada para la transición de estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderListRequest filtros de listado (query params).
type OrderListRequest struct {
	PageRequest
	Status string `query:"status"`
	From   string `query:"from"` // YYYY-MM-DD
	To     string `query:"to"`
}

// OrderItemResponse línea del pedido (instantánea del producto).
type OrderItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"order_number"`
	UserID          string              `json:"user_id,omitempty"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerEmail   string              `json:"customer_email"`
	DeliveryAddress string              `json:"delivery_address"`
	DeliveryMethod  string              `json:"delivery_method"`
	DeliveryPrice   decimal.Decimal     `json:"delivery_price"`
	PaymentMethod   string              `json:"payment_method"`
	Notes           string              `json:"notes,omitempty"`
	Status          string              `json:"status"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CheckoutRequest entrada del checkout: datos de entrega y pago.
// Las líneas salen del carrito, no del cuerpo de la petición.
type CheckoutRequest struct {
	CustomerName    string          `json:"customer_name" validate:"required"`
	CustomerPhone   string          `json:"customer_phone" validate:"required"`
	CustomerEmail   string          `json:"customer_email" validate:"required,email"`
	DeliveryAddress string          `json:"delivery_address" validate:"required"`
	DeliveryMethod  string          `json:"delivery_method" validate:"required"`
	DeliveryPrice   decimal.Decimal `json:"delivery_price"`
	PaymentMethod   string          `json:"payment_method" validate:"required"`
	Notes           string          `json:"notes"`
}

// OrderPlacedMessage mensaje publicado en la cola al crear un pedido.
type OrderPlacedMessage struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	UserID      string `json:"user_id,omitempty"`
}
