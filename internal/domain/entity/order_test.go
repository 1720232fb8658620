package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la tabla de transiciones de estado
// ──────────────────────────────────────────────────────────────────────────────

func TestIsValidOrderStatus(t *testing.T) {
	for _, s := range entity.OrderStatuses {
		assert.True(t, entity.IsValidOrderStatus(s), "el estado %q debe ser válido", s)
	}
	assert.False(t, entity.IsValidOrderStatus("pending"), "estado desconocido debe rechazarse")
	assert.False(t, entity.IsValidOrderStatus(""), "estado vacío debe rechazarse")
	assert.False(t, entity.IsValidOrderStatus("NEW"), "los estados distinguen mayúsculas")
}

// La tabla es hoy permisiva: cualquier par de estados conocidos transiciona,
// incluidas las correcciones regresivas del personal (delivered → new).
func TestCanTransition_TablaPermisiva(t *testing.T) {
	for _, from := range entity.OrderStatuses {
		for _, to := range entity.OrderStatuses {
			assert.True(t, entity.CanTransition(from, to), "%s → %s debe estar permitido", from, to)
		}
	}
}

func TestCanTransition_EstadoDesconocido(t *testing.T) {
	assert.False(t, entity.CanTransition("pending", entity.OrderStatusNew))
	assert.False(t, entity.CanTransition(entity.OrderStatusNew, "pending"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de OrderItem
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderItem_TotalPrice(t *testing.T) {
	item := entity.OrderItem{
		Price:    decimal.RequireFromString("149.99"),
		Quantity: 3,
	}
	assert.True(t, item.TotalPrice().Equal(decimal.RequireFromString("449.97")),
		"el total de línea debe ser precio × cantidad")
}
