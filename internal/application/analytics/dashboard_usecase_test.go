package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/analytics"
	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de analítica
// ──────────────────────────────────────────────────────────────────────────────

// fakeAnalyticsRepo reproduce en memoria la semántica de las consultas SQL:
// los ingresos suman total_amount solo de pedidos entregados y el stock bajo
// cuenta productos estrictamente por debajo del umbral.
type fakeAnalyticsRepo struct {
	orders   []*entity.Order
	products []*entity.Product

	lastLowStockThreshold int
}

func (f *fakeAnalyticsRepo) CountProducts(context.Context) (int, error) {
	return len(f.products), nil
}

func (f *fakeAnalyticsRepo) CountOrders(context.Context) (int, error) {
	return len(f.orders), nil
}

func (f *fakeAnalyticsRepo) CountUsers(context.Context) (int, error) { return 0, nil }

func (f *fakeAnalyticsRepo) CountOrdersByStatus(_ context.Context, status string) (int, error) {
	n := 0
	for _, o := range f.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeAnalyticsRepo) CountLowStock(_ context.Context, threshold int) (int, error) {
	f.lastLowStockThreshold = threshold
	n := 0
	for _, p := range f.products {
		if p.StockQuantity < threshold {
			n++
		}
	}
	return n, nil
}

func (f *fakeAnalyticsRepo) TotalRevenue(context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, o := range f.orders {
		if o.Status == entity.OrderStatusDelivered {
			total = total.Add(o.TotalAmount)
		}
	}
	return total, nil
}

func (f *fakeAnalyticsRepo) RevenueBetween(_ context.Context, from, to time.Time) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, o := range f.orders {
		if o.Status != entity.OrderStatusDelivered {
			continue
		}
		if o.CreatedAt.Before(from) || o.CreatedAt.After(to) {
			continue
		}
		total = total.Add(o.TotalAmount)
	}
	return total, nil
}

func (f *fakeAnalyticsRepo) RecentOrders(context.Context, int) ([]*entity.Order, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) RecentUsers(context.Context, int) ([]*entity.User, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) TopProducts(context.Context, int) ([]repository.TopProductResult, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) SalesByDay(context.Context, time.Time, time.Time) ([]repository.SalesPoint, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) CategorySales(context.Context, time.Time, time.Time) ([]repository.CategorySalesResult, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) TopCustomers(context.Context, time.Time, time.Time, int) ([]repository.TopCustomerResult, error) {
	return nil, nil
}

func (f *fakeAnalyticsRepo) CustomersForExport(context.Context) ([]repository.CustomerExportRow, error) {
	return nil, nil
}

func deliveredOrder(amount int64, createdAt time.Time) *entity.Order {
	return &entity.Order{
		Status:      entity.OrderStatusDelivered,
		TotalAmount: decimal.NewFromInt(amount),
		CreatedAt:   createdAt,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DashboardUseCase
// ──────────────────────────────────────────────────────────────────────────────

// Los ingresos del resumen cuentan solo pedidos entregados.
func TestGetSummary_IngresosSoloEntregados(t *testing.T) {
	now := time.Now()
	repo := &fakeAnalyticsRepo{
		orders: []*entity.Order{
			deliveredOrder(100, now),
			deliveredOrder(250, now),
			{Status: entity.OrderStatusShipped, TotalAmount: decimal.NewFromInt(999), CreatedAt: now},
			{Status: entity.OrderStatusCancelled, TotalAmount: decimal.NewFromInt(50), CreatedAt: now},
			{Status: entity.OrderStatusNew, TotalAmount: decimal.NewFromInt(40), CreatedAt: now},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.True(t, out.TotalRevenue.Equal(decimal.NewFromInt(350)), "ingresos %s", out.TotalRevenue)
	assert.Equal(t, 5, out.TotalOrders)
	assert.Equal(t, 1, out.NewOrders)
}

// El contador de stock bajo usa el umbral 10 y es estrictamente menor:
// stock 5 cuenta, stock 15 no, y stock exactamente 10 tampoco.
func TestGetSummary_StockBajoEstricto(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		products: []*entity.Product{
			{ID: "p1", StockQuantity: 5},
			{ID: "p2", StockQuantity: 15},
			{ID: "p3", StockQuantity: entity.LowStockThreshold},
		},
	}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, out.LowStockProducts)
	assert.Equal(t, entity.LowStockThreshold, repo.lastLowStockThreshold)
}

func TestGetSummary_SinPedidosIngresoCero(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{})

	out, err := uc.GetSummary(context.Background())

	require.NoError(t, err)
	assert.True(t, out.TotalRevenue.IsZero())
	assert.Empty(t, out.RecentOrders)
	assert.Empty(t, out.TopProducts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetAnalytics — ingresos por ventana
// ──────────────────────────────────────────────────────────────────────────────

func TestGetAnalytics_IngresosEnVentana(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		orders: []*entity.Order{
			deliveredOrder(120, time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)),
			deliveredOrder(80, time.Date(2026, 8, 14, 9, 0, 0, 0, time.UTC)),
			// Fuera de la ventana
			deliveredOrder(500, time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)),
			// Dentro de la ventana pero no entregado
			{Status: entity.OrderStatusProcessing, TotalAmount: decimal.NewFromInt(300), CreatedAt: time.Date(2026, 8, 12, 0, 0, 0, 0, time.UTC)},
		},
	}
	uc := analytics.NewAnalyticsUseCase(repo)

	out, err := uc.GetAnalytics(context.Background(), dto.AnalyticsRequest{From: "2026-08-01", To: "2026-08-15"})

	require.NoError(t, err)
	assert.True(t, out.Revenue.Equal(decimal.NewFromInt(200)), "ingresos %s", out.Revenue)
}

// Una ventana que no contiene ningún pedido devuelve ingreso cero, no error.
func TestGetAnalytics_VentanaSinPedidos(t *testing.T) {
	repo := &fakeAnalyticsRepo{
		orders: []*entity.Order{
			deliveredOrder(100, time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)),
		},
	}
	uc := analytics.NewAnalyticsUseCase(repo)

	out, err := uc.GetAnalytics(context.Background(), dto.AnalyticsRequest{From: "2026-01-01", To: "2026-01-31"})

	require.NoError(t, err)
	assert.True(t, out.Revenue.IsZero())
	assert.Empty(t, out.SalesData)
}
