package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Brand          string          `json:"brand"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	StockQuantity  int             `json:"stock_quantity" validate:"min=0"`
	CategoryID     string          `json:"category_id" validate:"required"`
	IsAvailable    bool            `json:"is_available"`
	Specifications string          `json:"specifications"`
}

// UpdateProductRequest entrada para actualizar un producto.
type UpdateProductRequest struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Brand          *string          `json:"brand"`
	Description    *string          `json:"description"`
	Price          *decimal.Decimal `json:"price"`
	StockQuantity  *int             `json:"stock_quantity" validate:"omitempty,min=0"`
	CategoryID     *string          `json:"category_id"`
	IsAvailable    *bool            `json:"is_available"`
	Specifications *string          `json:"specifications"`
}

// ProductListRequest filtros de listado (query params).
type ProductListRequest struct {
	PageRequest
	Search     string `query:"search"`
	CategoryID string `query:"category_id"`
}

// BulkActionRequest acción masiva sobre un conjunto de productos.
// Acciones válidas: activate, deactivate, delete.
type BulkActionRequest struct {
	Action string   `json:"action" validate:"required"`
	IDs    []string `json:"ids"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Brand          string          `json:"brand"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	StockQuantity  int             `json:"stock_quantity"`
	CategoryID     string          `json:"category_id"`
	IsAvailable    bool            `json:"is_available"`
	ImageURL       string          `json:"image_url,omitempty"`
	Specifications string          `json:"specifications,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
