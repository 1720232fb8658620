package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/cart"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// HeaderCartToken identifica el carrito de un invitado sin sesión.
const HeaderCartToken = "X-Cart-Token"

// CartHandler maneja el carrito. La clave del carrito es el id de usuario
// autenticado o, para invitados, el token del header X-Cart-Token.
type CartHandler struct {
	uc *cart.UseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.UseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// cartKey resuelve la clave del carrito; vacía si no hay identidad ni token.
func cartKey(c *fiber.Ctx) string {
	if userID := GetUserID(c); userID != "" {
		return userID
	}
	return c.Get(HeaderCartToken)
}

func missingCartKey(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "MISSING_CART_KEY", Message: "se requiere sesión o header " + HeaderCartToken,
	})
}

// Get godoc
// @Summary      Ver carrito con precios vivos
// @Tags         cart
// @Produce      json
// @Param        X-Cart-Token  header  string  false  "Token de carrito de invitado"
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	key := cartKey(c)
	if key == "" {
		return missingCartKey(c)
	}
	out, err := h.uc.Get(c.Context(), key)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddItem godoc
// @Summary      Añadir producto al carrito
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartItemRequest  true  "Producto y cantidad"
// @Success      200   {object}  dto.ActionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	key := cartKey(c)
	if key == "" {
		return missingCartKey(c)
	}
	var in dto.AddCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddItem(c.Context(), key, in); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y quantity >= 1 son requeridos"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado o no disponible"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ActionResponse{Success: true, Message: "producto añadido"})
}

// UpdateItem godoc
// @Summary      Fijar cantidad de una línea (0 la elimina)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.UpdateCartItemRequest  true  "Cantidad"
// @Success      200  {object}  dto.ActionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cart/items/{productId} [put]
func (h *CartHandler) UpdateItem(c *fiber.Ctx) error {
	key := cartKey(c)
	if key == "" {
		return missingCartKey(c)
	}
	var in dto.UpdateCartItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.UpdateItem(c.Context(), key, c.Params("productId"), in.Quantity); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity no puede ser negativa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ActionResponse{Success: true, Message: "carrito actualizado"})
}

// RemoveItem godoc
// @Summary      Quitar producto del carrito
// @Tags         cart
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ActionResponse
// @Router       /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	key := cartKey(c)
	if key == "" {
		return missingCartKey(c)
	}
	if err := h.uc.RemoveItem(c.Context(), key, c.Params("productId")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ActionResponse{Success: true, Message: "producto quitado"})
}

// Clear godoc
// @Summary      Vaciar carrito
// @Tags         cart
// @Produce      json
// @Success      200  {object}  dto.ActionResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	key := cartKey(c)
	if key == "" {
		return missingCartKey(c)
	}
	if err := h.uc.Clear(c.Context(), key); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ActionResponse{Success: true, Message: "carrito vaciado"})
}
