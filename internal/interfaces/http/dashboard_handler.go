package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/analytics"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
)

// DashboardHandler resumen y analítica del back-office.
type DashboardHandler struct {
	dashboardUC *analytics.DashboardUseCase
	analyticsUC *analytics.AnalyticsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboardUC *analytics.DashboardUseCase, analyticsUC *analytics.AnalyticsUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC, analyticsUC: analyticsUC}
}

// Summary godoc
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	out, err := h.dashboardUC.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Analytics godoc
// @Summary      Analítica de ventas por ventana de fechas
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to    query  string  false  "Hasta (YYYY-MM-DD, inclusivo)"
// @Success      200  {object}  dto.AnalyticsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/analytics [get]
func (h *DashboardHandler) Analytics(c *fiber.Ctx) error {
	var in dto.AnalyticsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.analyticsUC.GetAnalytics(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas o ventana invertida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
