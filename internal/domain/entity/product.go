package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Umbral bajo el cual un producto cuenta como "stock bajo" en el dashboard.
const LowStockThreshold = 10

// Product representa un producto del catálogo.
// StockQuantity se descuenta al procesar pedidos; IsAvailable controla la
// visibilidad en la tienda y es el flag que tocan las acciones masivas.
type Product struct {
	ID             string
	Name           string
	Brand          string
	Description    string
	Price          decimal.Decimal
	StockQuantity  int
	CategoryID     string
	IsAvailable    bool
	ImageURL       string
	Specifications string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
