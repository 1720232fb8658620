package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// CatalogHandler vista pública del catálogo: solo productos disponibles.
type CatalogHandler struct {
	productUC  *usecase.ProductUseCase
	categoryUC *usecase.CategoryUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(productUC *usecase.ProductUseCase, categoryUC *usecase.CategoryUseCase) *CatalogHandler {
	return &CatalogHandler{productUC: productUC, categoryUC: categoryUC}
}

// ListProducts godoc
// @Summary      Listar productos disponibles (tienda)
// @Tags         catalog
// @Produce      json
// @Param        page         query  int     false  "Página"  default(1)
// @Param        search       query  string  false  "Búsqueda por nombre o marca"
// @Param        category_id  query  string  false  "Filtro por categoría"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/catalog/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	var in dto.ProductListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.productUC.List(in, true)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetProduct godoc
// @Summary      Obtener producto (tienda)
// @Tags         catalog
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	out, err := h.productUC.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil || !out.IsAvailable {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías (tienda)
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.categoryUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
