package entity

import "time"

// Category representa una categoría del catálogo (árbol de profundidad libre).
// ParentID vacío indica categoría raíz.
type Category struct {
	ID          string
	Name        string
	Description string
	ParentID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
