package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// TopProductResult producto agregado por unidades vendidas e ingresos,
// calculado sobre las instantáneas de order_items (no sobre productos vivos).
type TopProductResult struct {
	ProductID   string
	ProductName string
	TotalSold   int
	Revenue     decimal.Decimal
}

// SalesPoint ventas agregadas por día.
type SalesPoint struct {
	Date       time.Time
	OrderCount int
	Revenue    decimal.Decimal
}

// CategorySalesResult ventas agregadas por categoría con pedidos distintos.
type CategorySalesResult struct {
	CategoryName string
	TotalSales   decimal.Decimal
	OrderCount   int
}

// TopCustomerResult cliente agregado por gasto dentro de la ventana.
type TopCustomerResult struct {
	UserID       string
	CustomerName string
	OrderCount   int
	TotalSpent   decimal.Decimal
}

// CustomerExportRow fila del export de clientes (usuario + agregados de pedidos).
type CustomerExportRow struct {
	UserID       string
	Email        string
	FullName     string
	RegisteredAt time.Time
	OrderCount   int
	TotalSpent   decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura para dashboard, analítica y
// exports. Proyecciones puras: sin mutación y sin invariantes propios.
type AnalyticsRepository interface {
	CountProducts(ctx context.Context) (int, error)
	CountOrders(ctx context.Context) (int, error)
	CountUsers(ctx context.Context) (int, error)
	CountOrdersByStatus(ctx context.Context, status string) (int, error)
	CountLowStock(ctx context.Context, threshold int) (int, error)

	// TotalRevenue suma total_amount de pedidos entregados en todo el histórico.
	TotalRevenue(ctx context.Context) (decimal.Decimal, error)
	// RevenueBetween suma total_amount de pedidos entregados creados en [from, to].
	RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	RecentOrders(ctx context.Context, limit int) ([]*entity.Order, error)
	RecentUsers(ctx context.Context, limit int) ([]*entity.User, error)
	TopProducts(ctx context.Context, limit int) ([]TopProductResult, error)

	SalesByDay(ctx context.Context, from, to time.Time) ([]SalesPoint, error)
	CategorySales(ctx context.Context, from, to time.Time) ([]CategorySalesResult, error)
	TopCustomers(ctx context.Context, from, to time.Time, limit int) ([]TopCustomerResult, error)

	CustomersForExport(ctx context.Context) ([]CustomerExportRow, error)
}
