package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const analyticsTopCustomers = 10

// defaultWindowDays ventana por defecto cuando el llamador no indica fechas.
const defaultWindowDays = 30

// AnalyticsUseCase proyecciones de ventas sobre una ventana de fechas.
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{analyticsRepo: analyticsRepo}
}

// ResolveWindow interpreta los extremos `from`/`to` (YYYY-MM-DD); si alguno
// falta se usa la ventana de los últimos 30 días. El extremo superior es
// inclusivo hasta el final del día.
func ResolveWindow(in dto.AnalyticsRequest, now time.Time) (from, to time.Time, err error) {
	to = now
	from = now.AddDate(0, 0, -defaultWindowDays)
	if in.From != "" {
		from, err = time.Parse("2006-01-02", in.From)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
	}
	if in.To != "" {
		parsed, err := time.Parse("2006-01-02", in.To)
		if err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
		to = parsed.Add(24*time.Hour - time.Nanosecond)
	}
	if to.Before(from) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return from, to, nil
}

// GetAnalytics calcula ventas por día, ventas por categoría, top de clientes
// e ingresos realizados dentro de la ventana.
func (uc *AnalyticsUseCase) GetAnalytics(ctx context.Context, in dto.AnalyticsRequest) (*dto.AnalyticsResponse, error) {
	from, to, err := ResolveWindow(in, time.Now())
	if err != nil {
		return nil, err
	}

	salesData, err := uc.analyticsRepo.SalesByDay(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics: ventas por día: %w", err)
	}
	categorySales, err := uc.analyticsRepo.CategorySales(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics: ventas por categoría: %w", err)
	}
	topCustomers, err := uc.analyticsRepo.TopCustomers(ctx, from, to, analyticsTopCustomers)
	if err != nil {
		return nil, fmt.Errorf("analytics: top clientes: %w", err)
	}
	revenue, err := uc.analyticsRepo.RevenueBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("analytics: ingresos: %w", err)
	}

	resp := &dto.AnalyticsResponse{
		From:          from,
		To:            to,
		Revenue:       revenue.Round(2),
		SalesData:     make([]dto.SalesDataPointDTO, 0, len(salesData)),
		CategorySales: make([]dto.CategorySalesDTO, 0, len(categorySales)),
		TopCustomers:  make([]dto.TopCustomerDTO, 0, len(topCustomers)),
	}
	for _, s := range salesData {
		resp.SalesData = append(resp.SalesData, dto.SalesDataPointDTO{
			Date:       s.Date,
			OrderCount: s.OrderCount,
			Revenue:    s.Revenue,
		})
	}
	for _, c := range categorySales {
		resp.CategorySales = append(resp.CategorySales, dto.CategorySalesDTO{
			CategoryName: c.CategoryName,
			TotalSales:   c.TotalSales,
			OrderCount:   c.OrderCount,
		})
	}
	for _, c := range topCustomers {
		resp.TopCustomers = append(resp.TopCustomers, dto.TopCustomerDTO{
			UserID:       c.UserID,
			CustomerName: c.CustomerName,
			OrderCount:   c.OrderCount,
			TotalSpent:   c.TotalSpent,
		})
	}
	return resp, nil
}
