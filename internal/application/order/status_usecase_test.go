package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/order"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

type fakeOrderRepo struct {
	orders     map[string]*entity.Order
	lastFilter repository.OrderFilter
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.Order{}}
}

func (f *fakeOrderRepo) Create(o *entity.Order) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) List(filter repository.OrderFilter, limit, offset int) ([]*entity.Order, int, error) {
	f.lastFilter = filter
	var out []*entity.Order
	for _, o := range f.orders {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		out = append(out, o)
	}
	return out, len(out), nil
}

func (f *fakeOrderRepo) ListBetween(_, _ time.Time) ([]*entity.Order, error) { return nil, nil }

func (f *fakeOrderRepo) UpdateStatus(id, status string, updatedAt time.Time) (bool, error) {
	o, ok := f.orders[id]
	if !ok {
		return false, nil
	}
	o.Status = status
	o.UpdatedAt = updatedAt
	return true, nil
}

func (f *fakeOrderRepo) CountByUser(string) (int, error) { return 0, nil }

func seedOrder(repo *fakeOrderRepo, id, status string) {
	repo.orders[id] = &entity.Order{ID: id, OrderNumber: "ORD-" + id, Status: status}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Transition
// ──────────────────────────────────────────────────────────────────────────────

func TestTransition_EstadoDesconocido(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "o1", entity.OrderStatusNew)
	uc := order.NewStatusUseCase(repo)

	err := uc.Transition("o1", "pending")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.OrderStatusNew, repo.orders["o1"].Status, "el estado no debe cambiar")
}

func TestTransition_PedidoInexistente(t *testing.T) {
	uc := order.NewStatusUseCase(newFakeOrderRepo())
	assert.ErrorIs(t, uc.Transition("no-existe", entity.OrderStatusShipped), domain.ErrNotFound)
}

func TestTransition_FlujoNormal(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "o1", entity.OrderStatusNew)
	uc := order.NewStatusUseCase(repo)

	require.NoError(t, uc.Transition("o1", entity.OrderStatusProcessing))
	require.NoError(t, uc.Transition("o1", entity.OrderStatusShipped))
	require.NoError(t, uc.Transition("o1", entity.OrderStatusDelivered))

	assert.Equal(t, entity.OrderStatusDelivered, repo.orders["o1"].Status)
}

// La tabla es permisiva: una corrección regresiva delivered → new pasa hoy.
func TestTransition_CorreccionRegresiva(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "o1", entity.OrderStatusDelivered)
	uc := order.NewStatusUseCase(repo)

	require.NoError(t, uc.Transition("o1", entity.OrderStatusNew))
	assert.Equal(t, entity.OrderStatusNew, repo.orders["o1"].Status)
}

func TestTransition_RefrescaUpdatedAt(t *testing.T) {
	repo := newFakeOrderRepo()
	seedOrder(repo, "o1", entity.OrderStatusNew)
	uc := order.NewStatusUseCase(repo)

	before := time.Now()
	require.NoError(t, uc.Transition("o1", entity.OrderStatusCancelled))
	assert.False(t, repo.orders["o1"].UpdatedAt.Before(before))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_EstadoInvalidoEnFiltro(t *testing.T) {
	uc := order.NewStatusUseCase(newFakeOrderRepo())
	_, err := uc.List(dto.OrderListRequest{Status: "pending"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_FechaInvalida(t *testing.T) {
	uc := order.NewStatusUseCase(newFakeOrderRepo())
	_, err := uc.List(dto.OrderListRequest{From: "30-08-2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// El extremo superior `to` incluye el día completo.
func TestList_ExtremoSuperiorInclusivo(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := order.NewStatusUseCase(repo)

	_, err := uc.List(dto.OrderListRequest{To: "2026-08-30"})
	require.NoError(t, err)

	require.NotNil(t, repo.lastFilter.To)
	endOfDay := time.Date(2026, 8, 30, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	assert.True(t, repo.lastFilter.To.Equal(endOfDay), "to debe extenderse al final del día")
}
