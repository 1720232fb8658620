// Package excel genera los exports administrativos en formato XLSX.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

const dateTimeLayout = "02/01/2006 15:04"

// ExcelizeExporter implementa reports.SpreadsheetExporter usando excelize.
type ExcelizeExporter struct{}

func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// ExportOrders una fila por pedido con sus líneas aplanadas en texto.
func (e *ExcelizeExporter) ExportOrders(orders []*entity.Order) ([]byte, error) {
	rows := make([][]any, 0, len(orders)+1)
	rows = append(rows, []any{
		"N° Pedido", "Fecha", "Cliente", "Email", "Teléfono",
		"Estado", "Método de pago", "Método de entrega", "Artículos", "Total",
	})
	for _, o := range orders {
		items := ""
		for i, it := range o.Items {
			if i > 0 {
				items += "; "
			}
			items += fmt.Sprintf("%s x%d", it.ProductName, it.Quantity)
		}
		total, _ := o.TotalAmount.Float64()
		rows = append(rows, []any{
			o.OrderNumber, o.CreatedAt.Format(dateTimeLayout), o.CustomerName,
			o.CustomerEmail, o.CustomerPhone, o.Status, o.PaymentMethod,
			o.DeliveryMethod, items, total,
		})
	}
	return buildSheet("Pedidos", rows)
}

// ExportProducts el catálogo completo, una fila por producto.
func (e *ExcelizeExporter) ExportProducts(products []*entity.Product) ([]byte, error) {
	rows := make([][]any, 0, len(products)+1)
	rows = append(rows, []any{
		"ID", "Nombre", "Marca", "Precio", "Stock", "Disponible", "Creado",
	})
	for _, p := range products {
		price, _ := p.Price.Float64()
		rows = append(rows, []any{
			p.ID, p.Name, p.Brand, price, p.StockQuantity,
			p.IsAvailable, p.CreatedAt.Format(dateTimeLayout),
		})
	}
	return buildSheet("Productos", rows)
}

// ExportCustomers usuarios registrados con sus agregados de pedidos.
func (e *ExcelizeExporter) ExportCustomers(customers []repository.CustomerExportRow) ([]byte, error) {
	rows := make([][]any, 0, len(customers)+1)
	rows = append(rows, []any{
		"ID", "Nombre completo", "Email", "Registrado", "Pedidos", "Gasto total",
	})
	for _, c := range customers {
		spent, _ := c.TotalSpent.Float64()
		rows = append(rows, []any{
			c.UserID, c.FullName, c.Email, c.RegisteredAt.Format(dateTimeLayout),
			c.OrderCount, spent,
		})
	}
	return buildSheet("Clientes", rows)
}

// buildSheet crea un libro de una hoja con cabecera en negrita y lo serializa.
func buildSheet(sheet string, rows [][]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("excel: eliminar hoja por defecto: %w", err)
	}

	for i, cells := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("excel: coordenada fila %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, fmt.Errorf("excel: escribir fila %d: %w", i+1, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo cabecera: %w", err)
	}
	if len(rows) > 0 {
		last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err != nil {
			return nil, fmt.Errorf("excel: coordenada cabecera: %w", err)
		}
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return nil, fmt.Errorf("excel: aplicar estilo: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar libro: %w", err)
	}
	return buf.Bytes(), nil
}
