package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
const (
	OrderStatusNew        = "new"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lista los estados válidos en orden del flujo normal.
var OrderStatuses = []string{
	OrderStatusNew,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// orderTransitions es la tabla de transiciones permitidas por estado.
// Hoy la tabla es deliberadamente permisiva: el personal puede mover un pedido
// a cualquier estado (incluido delivered → new) para corregir errores manuales.
// Si algún día se restringe el flujo, basta con editar las entradas.
var orderTransitions = map[string][]string{
	OrderStatusNew:        {OrderStatusNew, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusNew, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusNew, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:  {OrderStatusNew, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusCancelled:  {OrderStatusNew, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled},
}

// IsValidOrderStatus indica si s es uno de los estados conocidos.
func IsValidOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition consulta la tabla de transiciones.
func CanTransition(from, to string) bool {
	targets, ok := orderTransitions[from]
	if !ok {
		return false
	}
	for _, t := range targets {
		if t == to {
			return true
		}
	}
	return false
}

// Order representa un pedido del Order Ledger. UserID vacío indica pedido de
// invitado. Tras el checkout, el pedido solo cambia de estado; nunca se borra
// desde la superficie administrativa.
type Order struct {
	ID              string
	OrderNumber     string
	UserID          string
	CustomerName    string
	CustomerPhone   string
	CustomerEmail   string
	DeliveryAddress string
	DeliveryMethod  string
	DeliveryPrice   decimal.Decimal
	PaymentMethod   string
	Notes           string
	Status          string
	TotalAmount     decimal.Decimal
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem es la instantánea de un producto al momento del pedido.
// Nombre y precio se copian a propósito: el histórico debe sobrevivir a
// ediciones y borrados del producto.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Price       decimal.Decimal
	Quantity    int
}

// TotalPrice devuelve precio × cantidad de la línea.
func (i OrderItem) TotalPrice() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
