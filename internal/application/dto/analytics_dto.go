package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesDataPointDTO ventas de un día dentro de la ventana.
type SalesDataPointDTO struct {
	Date       time.Time       `json:"date"`
	OrderCount int             `json:"order_count"`
	Revenue    decimal.Decimal `json:"revenue"`
}

// CategorySalesDTO ventas agregadas por categoría.
type CategorySalesDTO struct {
	CategoryName string          `json:"category_name"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	OrderCount   int             `json:"order_count"`
}

// TopCustomerDTO cliente por gasto dentro de la ventana.
type TopCustomerDTO struct {
	UserID       string          `json:"user_id"`
	CustomerName string          `json:"customer_name"`
	OrderCount   int             `json:"order_count"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
}

// AnalyticsRequest ventana de fechas (query params, YYYY-MM-DD).
// Si falta alguno de los extremos se usan los últimos 30 días.
type AnalyticsRequest struct {
	From string `query:"from"`
	To   string `query:"to"`
}

// AnalyticsResponse proyección de analítica sobre la ventana.
type AnalyticsResponse struct {
	From          time.Time           `json:"from"`
	To            time.Time           `json:"to"`
	Revenue       decimal.Decimal     `json:"revenue"`
	SalesData     []SalesDataPointDTO `json:"sales_data"`
	CategorySales []CategorySalesDTO  `json:"category_sales"`
	TopCustomers  []TopCustomerDTO    `json:"top_customers"`
}
