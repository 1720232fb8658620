package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

const (
	adminID  = "00000000-0000-0000-0000-00000000000a"
	victimID = "00000000-0000-0000-0000-00000000000b"
)

func newUserAdminUC(t *testing.T) (*usecase.UserAdminUseCase, *fakeUserRepo, *fakeOrderRepo) {
	t.Helper()
	users := newFakeUserRepo()
	orders := &fakeOrderRepo{ordersByUser: map[string]int{}}
	uc := usecase.NewUserAdminUseCase(users, orders, &fakeUsersTxRunner{repo: users})
	return uc, users, orders
}

func seedUser(repo *fakeUserRepo, id string, roles ...string) *entity.User {
	u := &entity.User{ID: id, Email: id + "@test.local", Roles: roles}
	repo.users[id] = u
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Lock / Unlock
// ──────────────────────────────────────────────────────────────────────────────

func TestLock_RechazaPropiaCuenta(t *testing.T) {
	uc, users, _ := newUserAdminUC(t)
	seedUser(users, adminID, entity.RoleAdmin)

	err := uc.Lock(adminID, adminID)

	assert.ErrorIs(t, err, domain.ErrSelfAction)
	assert.Nil(t, users.users[adminID].LockoutEnd, "la propia cuenta no debe quedar bloqueada")
}

func TestLock_FijaLockoutLejano(t *testing.T) {
	uc, users, _ := newUserAdminUC(t)
	seedUser(users, victimID, entity.RoleCliente)

	require.NoError(t, uc.Lock(adminID, victimID))

	locked := users.users[victimID]
	require.NotNil(t, locked.LockoutEnd)
	assert.True(t, locked.IsLockedOut(time.Now()))
	// 100 años vista: más allá de cualquier sesión razonable.
	assert.True(t, locked.LockoutEnd.After(time.Now().AddDate(99, 0, 0)))
}

func TestLock_UsuarioInexistente(t *testing.T) {
	uc, _, _ := newUserAdminUC(t)
	assert.ErrorIs(t, uc.Lock(adminID, "no-existe"), domain.ErrNotFound)
}

// Desbloquear no lleva guarda de auto-acción: desbloquearse a uno mismo es
// inofensivo y está permitido.
func TestUnlock_PermiteLaPropiaCuenta(t *testing.T) {
	uc, users, _ := newUserAdminUC(t)
	u := seedUser(users, adminID, entity.RoleAdmin)
	until := time.Now().AddDate(100, 0, 0)
	u.LockoutEnd = &until

	require.NoError(t, uc.Unlock(adminID))
	assert.Nil(t, users.users[adminID].LockoutEnd)
}

func TestUnlock_UsuarioInexistente(t *testing.T) {
	uc, _, _ := newUserAdminUC(t)
	assert.ErrorIs(t, uc.Unlock("no-existe"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteUser_RechazaPropiaCuenta(t *testing.T) {
	uc, users, _ := newUserAdminUC(t)
	seedUser(users, adminID, entity.RoleAdmin)

	assert.ErrorIs(t, uc.Delete(adminID, adminID), domain.ErrSelfAction)
	assert.Contains(t, users.users, adminID)
}

func TestDeleteUser_ConPedidos(t *testing.T) {
	uc, users, orders := newUserAdminUC(t)
	seedUser(users, victimID, entity.RoleCliente)
	orders.ordersByUser[victimID] = 2

	assert.ErrorIs(t, uc.Delete(adminID, victimID), domain.ErrHasOrders)
	assert.Contains(t, users.users, victimID, "la cuenta con pedidos no debe borrarse")
}

func TestDeleteUser_SinPedidos(t *testing.T) {
	uc, users, _ := newUserAdminUC(t)
	seedUser(users, victimID, entity.RoleCliente)

	require.NoError(t, uc.Delete(adminID, victimID))
	assert.NotContains(t, users.users, victimID)
}

// La guarda de auto-acción se evalúa antes que la existencia: borrarse a uno
// mismo devuelve SELF_ACTION aunque hubiera otros impedimentos.
func TestDeleteUser_SelfActionPrimero(t *testing.T) {
	uc, users, orders := newUserAdminUC(t)
	seedUser(users, adminID, entity.RoleAdmin)
	orders.ordersByUser[adminID] = 5

	assert.ErrorIs(t, uc.Delete(adminID, adminID), domain.ErrSelfAction)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests EditRoles — el resultado es exactamente el conjunto deseado
// ──────────────────────────────────────────────────────────────────────────────

func TestEditRoles_ReemplazaElConjunto(t *testing.T) {
	uc, users, _ := newUserAdminUC(t)
	seedUser(users, victimID, entity.RoleCliente, entity.RoleManager)

	out, err := uc.EditRoles(context.Background(), victimID, []string{entity.RoleAdmin, entity.RoleCliente})

	require.NoError(t, err)
	assert.ElementsMatch(t, []string{entity.RoleAdmin, entity.RoleCliente}, out.Roles,
		"el resultado debe ser exactamente el conjunto deseado, no una unión")
}

func TestEditRoles_ConjuntoVacioQuitaTodo(t *testing.T) {
	uc, users, _ := newUserAdminUC(t)
	seedUser(users, victimID, entity.RoleCliente, entity.RoleAdmin)

	out, err := uc.EditRoles(context.Background(), victimID, nil)

	require.NoError(t, err)
	assert.Empty(t, out.Roles)
}

func TestEditRoles_SinCambiosEsNoOp(t *testing.T) {
	uc, users, _ := newUserAdminUC(t)
	seedUser(users, victimID, entity.RoleCliente)

	out, err := uc.EditRoles(context.Background(), victimID, []string{entity.RoleCliente})

	require.NoError(t, err)
	assert.Equal(t, []string{entity.RoleCliente}, out.Roles)
}

func TestEditRoles_IgnoraDuplicadosYVacios(t *testing.T) {
	uc, users, _ := newUserAdminUC(t)
	seedUser(users, victimID)

	out, err := uc.EditRoles(context.Background(), victimID, []string{entity.RoleAdmin, entity.RoleAdmin, ""})

	require.NoError(t, err)
	assert.Equal(t, []string{entity.RoleAdmin}, out.Roles)
}

func TestEditRoles_UsuarioInexistente(t *testing.T) {
	uc, _, _ := newUserAdminUC(t)
	_, err := uc.EditRoles(context.Background(), "no-existe", []string{entity.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
