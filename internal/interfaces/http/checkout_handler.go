package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/checkout"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// CheckoutHandler convierte el carrito en un pedido.
type CheckoutHandler struct {
	uc *checkout.CreateOrderUseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *checkout.CreateOrderUseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Create godoc
// @Summary      Crear pedido desde el carrito
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        X-Cart-Token  header  string  false  "Token de carrito de invitado"
// @Param        body  body  dto.CheckoutRequest  true  "Datos de entrega y pago"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Create(c *fiber.Ctx) error {
	key := cartKey(c)
	if key == "" {
		return missingCartKey(c)
	}
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateOrder(c.Context(), key, GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "customer_name, delivery_address y payment_method son requeridos"})
		}
		if errors.Is(err, domain.ErrEmptyCart) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "PRODUCT_UNAVAILABLE", Message: "un producto del carrito ya no está disponible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
