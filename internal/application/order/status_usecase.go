// Package order contiene los casos de uso del Order Ledger: consulta de
// pedidos y la transición de estado que usa el back-office.
package order

import (
	"time"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// StatusUseCase lectura de pedidos y transición de estado.
type StatusUseCase struct {
	repo repository.OrderRepository
}

// NewStatusUseCase construye el caso de uso.
func NewStatusUseCase(repo repository.OrderRepository) *StatusUseCase {
	return &StatusUseCase{repo: repo}
}

// GetByID obtiene un pedido con sus líneas.
func (uc *StatusUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	o, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, nil
	}
	return ToOrderResponse(o), nil
}

// List lista pedidos filtrando por estado y ventana de fechas, más recientes primero.
func (uc *StatusUseCase) List(in dto.OrderListRequest) (*dto.OrderListResponse, error) {
	filter := repository.OrderFilter{}
	if in.Status != "" {
		if !entity.IsValidOrderStatus(in.Status) {
			return nil, domain.ErrInvalidInput
		}
		filter.Status = in.Status
	}
	if in.From != "" {
		from, err := time.Parse("2006-01-02", in.From)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = &from
	}
	if in.To != "" {
		to, err := time.Parse("2006-01-02", in.To)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		// Incluir el día completo del extremo superior.
		end := to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &end
	}
	offset := in.Offset()
	list, total, err := uc.repo.List(filter, dto.DefaultPageSize, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *ToOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.NewPageResponse(in.Page, total),
	}, nil
}

// Transition mueve el pedido al estado pedido y refresca updated_at.
// Estado desconocido → ErrInvalidInput; pedido inexistente → ErrNotFound.
// La tabla de transiciones es hoy permisiva, así que cualquier par de estados
// conocidos pasa; la consulta se mantiene para que una futura restricción sea
// una edición de tabla y no una reescritura.
func (uc *StatusUseCase) Transition(orderID, newStatus string) error {
	if !entity.IsValidOrderStatus(newStatus) {
		return domain.ErrInvalidInput
	}
	current, err := uc.repo.GetByID(orderID)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.ErrNotFound
	}
	if !entity.CanTransition(current.Status, newStatus) {
		return domain.ErrConflict
	}
	found, err := uc.repo.UpdateStatus(orderID, newStatus, time.Now())
	if err != nil {
		return err
	}
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

// ToOrderResponse convierte la entidad al DTO de salida.
func ToOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
			TotalPrice:  it.TotalPrice(),
		})
	}
	return &dto.OrderResponse{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		UserID:          o.UserID,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		CustomerEmail:   o.CustomerEmail,
		DeliveryAddress: o.DeliveryAddress,
		DeliveryMethod:  o.DeliveryMethod,
		DeliveryPrice:   o.DeliveryPrice,
		PaymentMethod:   o.PaymentMethod,
		Notes:           o.Notes,
		Status:          o.Status,
		TotalAmount:     o.TotalAmount,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
