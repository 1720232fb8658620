package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/analytics"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ExportUseCase exports a hoja de cálculo: pedidos por ventana, productos y
// clientes. Lecturas puras, sin modos de fallo propios más allá de listas vacías.
type ExportUseCase struct {
	orderRepo     repository.OrderRepository
	productRepo   repository.ProductRepository
	analyticsRepo repository.AnalyticsRepository
	exporter      SpreadsheetExporter
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	analyticsRepo repository.AnalyticsRepository,
	exporter SpreadsheetExporter,
) *ExportUseCase {
	return &ExportUseCase{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		analyticsRepo: analyticsRepo,
		exporter:      exporter,
	}
}

// ExportOrders exporta los pedidos creados dentro de la ventana (por defecto,
// últimos 30 días). Devuelve los bytes y el nombre de archivo sugerido.
func (uc *ExportUseCase) ExportOrders(ctx context.Context, in dto.AnalyticsRequest) ([]byte, string, error) {
	from, to, err := analytics.ResolveWindow(in, time.Now())
	if err != nil {
		return nil, "", err
	}
	orders, err := uc.orderRepo.ListBetween(from, to)
	if err != nil {
		return nil, "", err
	}
	content, err := uc.exporter.ExportOrders(orders)
	if err != nil {
		return nil, "", fmt.Errorf("exportar pedidos: %w", err)
	}
	fileName := fmt.Sprintf("Orders_%s_%s.xlsx", from.Format("20060102"), to.Format("20060102"))
	return content, fileName, nil
}

// ExportProducts exporta el catálogo completo.
func (uc *ExportUseCase) ExportProducts(ctx context.Context) ([]byte, string, error) {
	products, err := uc.productRepo.ListAll()
	if err != nil {
		return nil, "", err
	}
	content, err := uc.exporter.ExportProducts(products)
	if err != nil {
		return nil, "", fmt.Errorf("exportar productos: %w", err)
	}
	fileName := fmt.Sprintf("Products_%s.xlsx", time.Now().Format("20060102"))
	return content, fileName, nil
}

// ExportCustomers exporta los usuarios registrados con sus agregados de pedidos.
func (uc *ExportUseCase) ExportCustomers(ctx context.Context) ([]byte, string, error) {
	rows, err := uc.analyticsRepo.CustomersForExport(ctx)
	if err != nil {
		return nil, "", err
	}
	content, err := uc.exporter.ExportCustomers(rows)
	if err != nil {
		return nil, "", fmt.Errorf("exportar clientes: %w", err)
	}
	fileName := fmt.Sprintf("Customers_%s.xlsx", time.Now().Format("20060102"))
	return content, fileName, nil
}
