package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrLockedOut          = errors.New("la cuenta está bloqueada")

	// Guardas de borrado (integridad referencial preventiva).
	ErrHasProducts      = errors.New("la categoría contiene productos")
	ErrHasSubcategories = errors.New("la categoría contiene subcategorías")
	ErrHasOrders        = errors.New("el usuario tiene pedidos asociados")

	// Acciones administrativas.
	ErrSelfAction    = errors.New("no puedes aplicar esta acción sobre tu propia cuenta")
	ErrUnknownAction = errors.New("acción desconocida")
	ErrNoSelection   = errors.New("no se seleccionó ningún producto")

	// Carrito y checkout.
	ErrEmptyCart         = errors.New("el carrito está vacío")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
