// Package reports contiene los casos de uso de generación de documentos:
// recibo PDF por pedido y exports a hoja de cálculo.
package reports

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ReceiptUseCase genera el recibo PDF de un pedido.
type ReceiptUseCase struct {
	orderRepo repository.OrderRepository
	generator ReceiptGenerator
	shop      ShopInfo
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(orderRepo repository.OrderRepository, generator ReceiptGenerator, shop ShopInfo) *ReceiptUseCase {
	return &ReceiptUseCase{orderRepo: orderRepo, generator: generator, shop: shop}
}

// GetReceipt devuelve los bytes del PDF y el nombre de archivo sugerido.
func (uc *ReceiptUseCase) GetReceipt(ctx context.Context, orderID string) ([]byte, string, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", err
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.generator.GenerateReceipt(ctx, order, uc.shop)
	if err != nil {
		return nil, "", fmt.Errorf("generar recibo: %w", err)
	}
	fileName := fmt.Sprintf("Receipt_%s.pdf", order.OrderNumber)
	return pdf, fileName, nil
}
