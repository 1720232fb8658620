package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura sobre PostgreSQL.
type AnalyticsRepo struct {
	q Querier
}

func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

func (r *AnalyticsRepo) CountProducts(ctx context.Context) (int, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM products`)
}

func (r *AnalyticsRepo) CountOrders(ctx context.Context) (int, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM orders`)
}

func (r *AnalyticsRepo) CountUsers(ctx context.Context) (int, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM users`)
}

func (r *AnalyticsRepo) CountOrdersByStatus(ctx context.Context, status string) (int, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM orders WHERE status = $1`, status)
}

func (r *AnalyticsRepo) CountLowStock(ctx context.Context, threshold int) (int, error) {
	return r.countQuery(ctx, `SELECT COUNT(*) FROM products WHERE stock_quantity < $1`, threshold)
}

func (r *AnalyticsRepo) countQuery(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}

// TotalRevenue suma únicamente pedidos entregados: lo que está en tránsito o
// cancelado no cuenta como ingreso.
func (r *AnalyticsRepo) TotalRevenue(ctx context.Context) (decimal.Decimal, error) {
	return r.revenueQuery(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM orders WHERE status = $1`,
		entity.OrderStatusDelivered)
}

func (r *AnalyticsRepo) RevenueBetween(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	return r.revenueQuery(ctx,
		`SELECT COALESCE(SUM(total_amount), 0) FROM orders
		 WHERE status = $1 AND created_at >= $2 AND created_at <= $3`,
		entity.OrderStatusDelivered, from, to)
}

func (r *AnalyticsRepo) revenueQuery(ctx context.Context, query string, args ...any) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("revenue: %w", err)
	}
	return total, nil
}

// RecentOrders últimos pedidos creados, solo cabeceras.
func (r *AnalyticsRepo) RecentOrders(ctx context.Context, limit int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.UserID, &o.CustomerName, &o.CustomerPhone, &o.CustomerEmail,
			&o.DeliveryAddress, &o.DeliveryMethod, &o.DeliveryPrice, &o.PaymentMethod, &o.Notes,
			&o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan recent order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// RecentUsers últimos usuarios registrados, sin roles.
func (r *AnalyticsRepo) RecentUsers(ctx context.Context, limit int) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, email, first_name, last_name, lockout_end, created_at, updated_at
		 FROM users ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.LockoutEnd, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recent user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// TopProducts agrega sobre las instantáneas de order_items, por lo que
// productos ya eliminados del catálogo siguen apareciendo.
func (r *AnalyticsRepo) TopProducts(ctx context.Context, limit int) ([]repository.TopProductResult, error) {
	rows, err := r.q.Query(ctx,
		`SELECT COALESCE(product_id, ''), product_name,
			SUM(quantity) AS total_sold, SUM(price * quantity) AS revenue
		 FROM order_items
		 GROUP BY product_id, product_name
		 ORDER BY total_sold DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()
	var list []repository.TopProductResult
	for rows.Next() {
		var t repository.TopProductResult
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.TotalSold, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// SalesByDay pedidos e ingresos agrupados por día natural dentro de la ventana.
func (r *AnalyticsRepo) SalesByDay(ctx context.Context, from, to time.Time) ([]repository.SalesPoint, error) {
	rows, err := r.q.Query(ctx,
		`SELECT DATE(created_at) AS day, COUNT(*) AS order_count,
			COALESCE(SUM(total_amount), 0) AS revenue
		 FROM orders
		 WHERE created_at >= $1 AND created_at <= $2
		 GROUP BY day
		 ORDER BY day`, from, to)
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}
	defer rows.Close()
	var list []repository.SalesPoint
	for rows.Next() {
		var p repository.SalesPoint
		if err := rows.Scan(&p.Date, &p.OrderCount, &p.Revenue); err != nil {
			return nil, fmt.Errorf("scan sales point: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CategorySales ventas por categoría del catálogo vivo; las líneas de
// productos eliminados quedan fuera porque ya no resuelven categoría.
func (r *AnalyticsRepo) CategorySales(ctx context.Context, from, to time.Time) ([]repository.CategorySalesResult, error) {
	rows, err := r.q.Query(ctx,
		`SELECT c.name, COALESCE(SUM(oi.price * oi.quantity), 0) AS total_sales,
			COUNT(DISTINCT oi.order_id) AS order_count
		 FROM order_items oi
		 JOIN orders o ON o.id = oi.order_id
		 JOIN products p ON p.id = oi.product_id
		 JOIN categories c ON c.id = p.category_id
		 WHERE o.created_at >= $1 AND o.created_at <= $2
		 GROUP BY c.name
		 ORDER BY total_sales DESC`, from, to)
	if err != nil {
		return nil, fmt.Errorf("category sales: %w", err)
	}
	defer rows.Close()
	var list []repository.CategorySalesResult
	for rows.Next() {
		var c repository.CategorySalesResult
		if err := rows.Scan(&c.CategoryName, &c.TotalSales, &c.OrderCount); err != nil {
			return nil, fmt.Errorf("scan category sales: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// TopCustomers clientes ordenados por gasto dentro de la ventana.
func (r *AnalyticsRepo) TopCustomers(ctx context.Context, from, to time.Time, limit int) ([]repository.TopCustomerResult, error) {
	rows, err := r.q.Query(ctx,
		`SELECT o.user_id, MAX(o.customer_name) AS customer_name,
			COUNT(*) AS order_count, COALESCE(SUM(o.total_amount), 0) AS total_spent
		 FROM orders o
		 WHERE o.user_id IS NOT NULL AND o.created_at >= $1 AND o.created_at <= $2
		 GROUP BY o.user_id
		 ORDER BY total_spent DESC
		 LIMIT $3`, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	defer rows.Close()
	var list []repository.TopCustomerResult
	for rows.Next() {
		var t repository.TopCustomerResult
		if err := rows.Scan(&t.UserID, &t.CustomerName, &t.OrderCount, &t.TotalSpent); err != nil {
			return nil, fmt.Errorf("scan top customer: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// CustomersForExport todos los usuarios con sus agregados de pedidos.
func (r *AnalyticsRepo) CustomersForExport(ctx context.Context) ([]repository.CustomerExportRow, error) {
	rows, err := r.q.Query(ctx,
		`SELECT u.id, u.email, u.first_name || ' ' || u.last_name AS full_name,
			u.created_at, COUNT(o.id) AS order_count,
			COALESCE(SUM(o.total_amount), 0) AS total_spent
		 FROM users u
		 LEFT JOIN orders o ON o.user_id = u.id
		 GROUP BY u.id, u.email, u.first_name, u.last_name, u.created_at
		 ORDER BY u.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("customers export: %w", err)
	}
	defer rows.Close()
	var list []repository.CustomerExportRow
	for rows.Next() {
		var c repository.CustomerExportRow
		if err := rows.Scan(&c.UserID, &c.Email, &c.FullName, &c.RegisteredAt, &c.OrderCount, &c.TotalSpent); err != nil {
			return nil, fmt.Errorf("scan customer export: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
