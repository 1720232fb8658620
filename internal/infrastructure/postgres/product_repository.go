package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, brand, description, price, stock_quantity, category_id, is_available, COALESCE(image_url, ''), specifications, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Brand, &p.Description, &p.Price, &p.StockQuantity,
		&p.CategoryID, &p.IsAvailable, &p.ImageURL, &p.Specifications,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, brand, description, price, stock_quantity, category_id, is_available, image_url, specifications, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Brand, product.Description, product.Price,
		product.StockQuantity, product.CategoryID, product.IsAvailable, product.ImageURL,
		product.Specifications, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List lista productos con búsqueda por nombre/marca, filtro por categoría y
// paginación. Devuelve también el total de filas que cumplen el filtro.
func (r *ProductRepo) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, int, error) {
	where := ` WHERE 1=1`
	args := []any{}
	n := 0
	if filter.Search != "" {
		n++
		where += fmt.Sprintf(` AND (name ILIKE '%%' || $%d || '%%' OR brand ILIKE '%%' || $%d || '%%')`, n, n)
		args = append(args, filter.Search)
	}
	if filter.CategoryID != "" {
		n++
		where += fmt.Sprintf(` AND category_id = $%d`, n)
		args = append(args, filter.CategoryID)
	}
	if filter.OnlyAvailable {
		where += ` AND is_available`
	}

	var total int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`+where, args...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products` + where +
		fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, n+1, n+2)
	args = append(args, limit, offset)
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, total, rows.Err()
}

// ListAll devuelve el catálogo completo (export).
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list all products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET name = $2, brand = $3, description = $4, price = $5, stock_quantity = $6,
		       category_id = $7, is_available = $8, image_url = NULLIF($9, ''), specifications = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Brand, product.Description, product.Price,
		product.StockQuantity, product.CategoryID, product.IsAvailable, product.ImageURL,
		product.Specifications, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID. Las instantáneas de order_items no se tocan.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// SetAvailability actualiza el flag de disponibilidad para todos los ids del
// conjunto en una sola sentencia. Los ids inexistentes se ignoran en silencio.
func (r *ProductRepo) SetAvailability(ids []string, available bool) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET is_available = $2, updated_at = now() WHERE id = ANY($1)`,
		ids, available,
	)
	if err != nil {
		return 0, fmt.Errorf("bulk set availability: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DeleteByIDs elimina todos los ids del conjunto en una sola sentencia.
func (r *ProductRepo) DeleteByIDs(ids []string) (int64, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE id = ANY($1)`, ids,
	)
	if err != nil {
		return 0, fmt.Errorf("bulk delete products: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// DecrementStock descuenta qty unidades de stock; falla con
// domain.ErrInsufficientStock si no hay suficientes.
func (r *ProductRepo) DecrementStock(productID string, qty int) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE products SET stock_quantity = stock_quantity - $2, updated_at = now()
		 WHERE id = $1 AND stock_quantity >= $2`,
		productID, qty,
	)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}
