package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/reports"
	"github.com/jhoicas/tienda-api/internal/domain"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsHandler exports XLSX del back-office.
type ReportsHandler struct {
	uc *reports.ExportUseCase
}

// NewReportsHandler construye el handler.
func NewReportsHandler(uc *reports.ExportUseCase) *ReportsHandler {
	return &ReportsHandler{uc: uc}
}

// ExportOrders godoc
// @Summary      Exportar pedidos por ventana de fechas (XLSX)
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/reports/orders [get]
func (h *ReportsHandler) ExportOrders(c *fiber.Ctx) error {
	var in dto.AnalyticsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	content, fileName, err := h.uc.ExportOrders(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas o ventana invertida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendSpreadsheet(c, content, fileName)
}

// ExportProducts godoc
// @Summary      Exportar el catálogo completo (XLSX)
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/admin/reports/products [get]
func (h *ReportsHandler) ExportProducts(c *fiber.Ctx) error {
	content, fileName, err := h.uc.ExportProducts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendSpreadsheet(c, content, fileName)
}

// ExportCustomers godoc
// @Summary      Exportar clientes con agregados de pedidos (XLSX)
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/admin/reports/customers [get]
func (h *ReportsHandler) ExportCustomers(c *fiber.Ctx) error {
	content, fileName, err := h.uc.ExportCustomers(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return sendSpreadsheet(c, content, fileName)
}

func sendSpreadsheet(c *fiber.Ctx, content []byte, fileName string) error {
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return c.Send(content)
}
