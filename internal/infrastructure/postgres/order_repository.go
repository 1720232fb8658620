package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderColumns = `id, order_number, COALESCE(user_id, ''), customer_name, customer_phone, customer_email,
	delivery_address, delivery_method, delivery_price, payment_method, notes, status, total_amount, created_at, updated_at`

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create persiste cabecera y líneas del pedido. Llamar dentro de una tx para
// que cabecera y líneas queden juntas o no queden.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (id, order_number, user_id, customer_name, customer_phone, customer_email,
			delivery_address, delivery_method, delivery_price, payment_method, notes, status, total_amount, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.UserID, order.CustomerName, order.CustomerPhone,
		order.CustomerEmail, order.DeliveryAddress, order.DeliveryMethod, order.DeliveryPrice,
		order.PaymentMethod, order.Notes, order.Status, order.TotalAmount,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for _, item := range order.Items {
		_, err := r.q.Exec(context.Background(),
			`INSERT INTO order_items (id, order_id, product_id, product_name, price, quantity)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			item.ID, order.ID, item.ProductID, item.ProductName, item.Price, item.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un pedido con sus líneas.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	var o entity.Order
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.OrderNumber, &o.UserID, &o.CustomerName, &o.CustomerPhone, &o.CustomerEmail,
		&o.DeliveryAddress, &o.DeliveryMethod, &o.DeliveryPrice, &o.PaymentMethod, &o.Notes,
		&o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.itemsByOrderIDs([]string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

// List lista pedidos filtrando por estado y ventana, más recientes primero.
// Devuelve también el total de filas que cumplen el filtro.
func (r *OrderRepo) List(filter repository.OrderFilter, limit, offset int) ([]*entity.Order, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0
	if filter.Status != "" {
		n++
		where += fmt.Sprintf(` AND status = $%d`, n)
		args = append(args, filter.Status)
	}
	if filter.From != nil {
		n++
		where += fmt.Sprintf(` AND created_at >= $%d`, n)
		args = append(args, *filter.From)
	}
	if filter.To != nil {
		n++
		where += fmt.Sprintf(` AND created_at <= $%d`, n)
		args = append(args, *filter.To)
	}

	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM orders`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count orders: %w", err)
	}

	query := `SELECT ` + orderColumns + ` FROM orders` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, limit, offset)
	list, err := r.queryOrders(query, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListBetween devuelve los pedidos creados en [from, to], más recientes
// primero, sin paginar (exports).
func (r *OrderRepo) ListBetween(from, to time.Time) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
		WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at DESC`
	return r.queryOrders(query, from, to)
}

// UpdateStatus sobreescribe el estado y refresca updated_at.
// Devuelve false si el pedido no existe.
func (r *OrderRepo) UpdateStatus(id, status string, updatedAt time.Time) (bool, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, updatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// CountByUser cuenta los pedidos que referencian al usuario.
func (r *OrderRepo) CountByUser(userID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders by user: %w", err)
	}
	return n, nil
}

func (r *OrderRepo) queryOrders(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	var ids []string
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.UserID, &o.CustomerName, &o.CustomerPhone, &o.CustomerEmail,
			&o.DeliveryAddress, &o.DeliveryMethod, &o.DeliveryPrice, &o.PaymentMethod, &o.Notes,
			&o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}
	items, err := r.itemsByOrderIDs(ids)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		o.Items = items[o.ID]
	}
	return list, nil
}

// itemsByOrderIDs carga las líneas de un lote de pedidos en una sola consulta.
func (r *OrderRepo) itemsByOrderIDs(orderIDs []string) (map[string][]entity.OrderItem, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, order_id, COALESCE(product_id, ''), product_name, price, quantity
		 FROM order_items WHERE order_id = ANY($1) ORDER BY product_name`,
		orderIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	result := make(map[string][]entity.OrderItem, len(orderIDs))
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName, &it.Price, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		result[it.OrderID] = append(result[it.OrderID], it)
	}
	return result, rows.Err()
}
