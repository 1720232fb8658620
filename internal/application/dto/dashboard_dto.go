package dto

import "github.com/shopspring/decimal"

// TopProductDTO producto destacado por ingresos (instantáneas de order_items).
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	TotalSold   int             `json:"total_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// DashboardSummaryDTO resumen del back-office: totales, ingresos realizados
// (solo pedidos entregados), pedidos sin procesar y stock bajo.
type DashboardSummaryDTO struct {
	TotalProducts    int             `json:"total_products"`
	TotalOrders      int             `json:"total_orders"`
	TotalUsers       int             `json:"total_users"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	NewOrders        int             `json:"new_orders"`
	LowStockProducts int             `json:"low_stock_products"`
	RecentOrders     []OrderResponse `json:"recent_orders"`
	TopProducts      []TopProductDTO `json:"top_products"`
	RecentUsers      []UserResponse  `json:"recent_users"`
}
