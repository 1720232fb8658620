// Package analytics contiene los casos de uso de solo lectura del back-office:
// el resumen del dashboard y la analítica por ventana de fechas.
package analytics

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	appOrder "github.com/jhoicas/tienda-api/internal/application/order"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const (
	dashboardRecentItems = 5 // pedidos y usuarios recientes en el widget
	dashboardTopProducts = 5
)

// DashboardUseCase genera el resumen del back-office.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// Los ingresos cuentan solo pedidos entregados; los pedidos "new" alimentan
// el contador de pedidos sin procesar.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Tres llamadas en paralelo:
//  1. contadores (productos, pedidos, usuarios, nuevos, stock bajo, ingresos)
//  2. listas recientes (pedidos y usuarios)
//  3. top de productos por ingresos
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type countsResult struct {
		products, orders, users, newOrders, lowStock int
		revenue                                      decimal.Decimal
		err                                          error
	}
	type recentResult struct {
		orders []*entity.Order
		users  []*entity.User
		err    error
	}
	type topResult struct {
		products []repository.TopProductResult
		err      error
	}

	countsCh := make(chan countsResult, 1)
	recentCh := make(chan recentResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		var r countsResult
		if r.products, r.err = uc.analyticsRepo.CountProducts(ctx); r.err != nil {
			countsCh <- r
			return
		}
		if r.orders, r.err = uc.analyticsRepo.CountOrders(ctx); r.err != nil {
			countsCh <- r
			return
		}
		if r.users, r.err = uc.analyticsRepo.CountUsers(ctx); r.err != nil {
			countsCh <- r
			return
		}
		if r.newOrders, r.err = uc.analyticsRepo.CountOrdersByStatus(ctx, entity.OrderStatusNew); r.err != nil {
			countsCh <- r
			return
		}
		if r.lowStock, r.err = uc.analyticsRepo.CountLowStock(ctx, entity.LowStockThreshold); r.err != nil {
			countsCh <- r
			return
		}
		r.revenue, r.err = uc.analyticsRepo.TotalRevenue(ctx)
		countsCh <- r
	}()
	go func() {
		var r recentResult
		if r.orders, r.err = uc.analyticsRepo.RecentOrders(ctx, dashboardRecentItems); r.err != nil {
			recentCh <- r
			return
		}
		r.users, r.err = uc.analyticsRepo.RecentUsers(ctx, dashboardRecentItems)
		recentCh <- r
	}()
	go func() {
		products, err := uc.analyticsRepo.TopProducts(ctx, dashboardTopProducts)
		topCh <- topResult{products, err}
	}()

	counts := <-countsCh
	recent := <-recentCh
	top := <-topCh

	if counts.err != nil {
		return nil, fmt.Errorf("dashboard: contadores: %w", counts.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: recientes: %w", recent.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top productos: %w", top.err)
	}

	recentOrders := make([]dto.OrderResponse, 0, len(recent.orders))
	for _, o := range recent.orders {
		recentOrders = append(recentOrders, *appOrder.ToOrderResponse(o))
	}
	recentUsers := make([]dto.UserResponse, 0, len(recent.users))
	for _, u := range recent.users {
		recentUsers = append(recentUsers, dto.UserResponse{
			ID:        u.ID,
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Roles:     u.Roles,
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		})
	}
	topProducts := make([]dto.TopProductDTO, 0, len(top.products))
	for _, p := range top.products {
		topProducts = append(topProducts, dto.TopProductDTO{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			TotalSold:   p.TotalSold,
			Revenue:     p.Revenue,
		})
	}

	return &dto.DashboardSummaryDTO{
		TotalProducts:    counts.products,
		TotalOrders:      counts.orders,
		TotalUsers:       counts.users,
		TotalRevenue:     counts.revenue.Round(2),
		NewOrders:        counts.newOrders,
		LowStockProducts: counts.lowStock,
		RecentOrders:     recentOrders,
		TopProducts:      topProducts,
		RecentUsers:      recentUsers,
	}, nil
}
