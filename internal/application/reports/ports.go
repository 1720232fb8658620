package reports

import (
	"context"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ShopInfo datos fijos de la tienda para la cabecera del recibo.
type ShopInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
	Website string
}

// ReceiptGenerator puerto del generador de recibos PDF.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, order *entity.Order, shop ShopInfo) ([]byte, error)
}

// SpreadsheetExporter puerto del generador de hojas de cálculo.
type SpreadsheetExporter interface {
	ExportOrders(orders []*entity.Order) ([]byte, error)
	ExportProducts(products []*entity.Product) ([]byte, error)
	ExportCustomers(rows []repository.CustomerExportRow) ([]byte, error)
}
