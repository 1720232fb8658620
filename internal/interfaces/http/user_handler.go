package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// UserHandler administración de cuentas: bloqueo, borrado y roles.
type UserHandler struct {
	uc *usecase.UserAdminUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserAdminUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        page    query  int     false  "Página"  default(1)
// @Param        search  query  string  false  "Búsqueda por nombre, apellido o email"
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/admin/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var in dto.UserListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// Lock godoc
// @Summary      Bloquear cuenta (lockout lejano)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.ActionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/lock [post]
func (h *UserHandler) Lock(c *fiber.Ctx) error {
	if err := h.uc.Lock(GetUserID(c), c.Params("id")); err != nil {
		return h.mapUserActionError(c, err)
	}
	return c.JSON(dto.ActionResponse{Success: true, Message: "usuario bloqueado"})
}

// Unlock godoc
// @Summary      Desbloquear cuenta
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.ActionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/unlock [post]
func (h *UserHandler) Unlock(c *fiber.Ctx) error {
	if err := h.uc.Unlock(c.Params("id")); err != nil {
		return h.mapUserActionError(c, err)
	}
	return c.JSON(dto.ActionResponse{Success: true, Message: "usuario desbloqueado"})
}

// Delete godoc
// @Summary      Eliminar cuenta (sin pedidos asociados)
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.ActionResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return h.mapUserActionError(c, err)
	}
	return c.JSON(dto.ActionResponse{Success: true, Message: "usuario eliminado"})
}

// EditRoles godoc
// @Summary      Reemplazar el conjunto de roles del usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.EditRolesRequest  true  "Conjunto deseado de roles"
// @Success      200   {object}  dto.UserResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/admin/users/{id}/roles [put]
func (h *UserHandler) EditRoles(c *fiber.Ctx) error {
	var in dto.EditRolesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.EditRoles(c.Context(), c.Params("id"), in.Roles)
	if err != nil {
		return h.mapUserActionError(c, err)
	}
	return c.JSON(out)
}

// mapUserActionError traduce los errores comunes de las acciones sobre usuarios.
func (h *UserHandler) mapUserActionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrSelfAction):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "SELF_ACTION", Message: err.Error()})
	case errors.Is(err, domain.ErrHasOrders):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "HAS_ORDERS", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
