package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// Bloquear fija el fin del lockout 100 años en el futuro.
const lockoutYears = 100

// UsersTxRunner ejecuta fn con un repositorio de usuarios atado a una transacción.
type UsersTxRunner interface {
	RunUsers(ctx context.Context, fn func(userRepo repository.UserRepository) error) error
}

// UserAdminUseCase acciones administrativas sobre usuarios: bloqueo, borrado
// y edición de roles. Bloquear y borrar rechazan la propia cuenta del
// administrador; desbloquear no: auto-desbloquearse es inofensivo y así se
// comporta la superficie actual.
type UserAdminUseCase struct {
	repo      repository.UserRepository
	orderRepo repository.OrderRepository
	txRunner  UsersTxRunner
}

// NewUserAdminUseCase construye el caso de uso.
func NewUserAdminUseCase(repo repository.UserRepository, orderRepo repository.OrderRepository, txRunner UsersTxRunner) *UserAdminUseCase {
	return &UserAdminUseCase{repo: repo, orderRepo: orderRepo, txRunner: txRunner}
}

// GetByID obtiene un usuario con sus roles.
func (uc *UserAdminUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// List lista usuarios con búsqueda por nombre, apellido o email.
func (uc *UserAdminUseCase) List(in dto.UserListRequest) (*dto.UserListResponse, error) {
	offset := in.Offset()
	list, total, err := uc.repo.List(in.Search, dto.DefaultPageSize, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Items: items,
		Page:  dto.NewPageResponse(in.Page, total),
	}, nil
}

// Lock bloquea la cuenta con un lockout lejano en el futuro.
// Rechaza con ErrSelfAction si el administrador se apunta a sí mismo.
func (uc *UserAdminUseCase) Lock(actorID, userID string) error {
	if actorID == userID {
		return domain.ErrSelfAction
	}
	until := time.Now().AddDate(lockoutYears, 0, 0)
	found, err := uc.repo.SetLockout(userID, &until)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// Unlock limpia el lockout. Sin guarda de auto-acción.
func (uc *UserAdminUseCase) Unlock(userID string) error {
	found, err := uc.repo.SetLockout(userID, nil)
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un usuario. Rechaza la propia cuenta (ErrSelfAction) antes de
// cualquier otra comprobación, y cuentas con pedidos asociados (ErrHasOrders):
// el histórico de pedidos no debe quedar huérfano.
func (uc *UserAdminUseCase) Delete(actorID, userID string) error {
	if actorID == userID {
		return domain.ErrSelfAction
	}
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	orders, err := uc.orderRepo.CountByUser(userID)
	if err != nil {
		return err
	}
	if orders > 0 {
		return domain.ErrHasOrders
	}
	return uc.repo.Delete(userID)
}

// EditRoles reemplaza el conjunto de roles por exactamente el deseado.
// Se calcula el diff (altas y bajas) y se aplica dentro de una sola
// transacción: nunca queda un estado intermedio sin roles.
func (uc *UserAdminUseCase) EditRoles(ctx context.Context, userID string, desired []string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	toAdd, toRemove := diffRoles(user.Roles, desired)
	if len(toAdd) > 0 || len(toRemove) > 0 {
		err = uc.txRunner.RunUsers(ctx, func(userRepo repository.UserRepository) error {
			if len(toRemove) > 0 {
				if err := userRepo.RemoveRoles(userID, toRemove); err != nil {
					return err
				}
			}
			if len(toAdd) > 0 {
				if err := userRepo.AddRoles(userID, toAdd); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	user, err = uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// diffRoles devuelve qué roles hay que añadir y quitar para pasar de current a desired.
func diffRoles(current, desired []string) (toAdd, toRemove []string) {
	currentSet := make(map[string]bool, len(current))
	for _, r := range current {
		currentSet[r] = true
	}
	desiredSet := make(map[string]bool, len(desired))
	for _, r := range desired {
		if r == "" || desiredSet[r] {
			continue
		}
		desiredSet[r] = true
		if !currentSet[r] {
			toAdd = append(toAdd, r)
		}
	}
	for _, r := range current {
		if !desiredSet[r] {
			toRemove = append(toRemove, r)
		}
	}
	return toAdd, toRemove
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Roles:      roles,
		LockoutEnd: u.LockoutEnd,
		IsLocked:   u.IsLockedOut(time.Now()),
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}
