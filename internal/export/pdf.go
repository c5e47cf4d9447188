package export

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/krotovalex/inventory-keeper/internal/models"
)

// ToPDF формирует PDF-отчёт по каталогу на листе Letter.
//
// Отчёт открывается заголовком Inventory Report с меткой времени, дальше
// идёт таблица товаров: шапка на фирменном фоне с белым жирным текстом,
// строки на белом фоне, все ячейки с рамкой и выравниванием по центру.
func ToPDF(products []*models.ProductInfo) ([]byte, error) {
	const op = "export.ToPDF"

	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()

	pdf.SetTextColor(233, 30, 99)
	pdf.SetFont("Helvetica", "B", 24)
	pdf.CellFormat(0, 12, "Inventory Report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, time.Now().Format("2006-01-02 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(len(columns))

	pdf.SetFillColor(233, 30, 99)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 12)
	for _, column := range columns {
		pdf.CellFormat(colWidth, 10, column, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFillColor(255, 255, 255)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for _, product := range products {
		pdf.CellFormat(colWidth, 8, product.Name, "1", 0, "C", true, 0, "")
		pdf.CellFormat(colWidth, 8, strconv.FormatFloat(product.Price, 'f', 2, 64), "1", 0, "C", true, 0, "")
		pdf.CellFormat(colWidth, 8, strconv.Itoa(product.Quantity), "1", 0, "C", true, 0, "")
		pdf.CellFormat(colWidth, 8, strconv.FormatFloat(product.TotalValue, 'f', 2, 64), "1", 0, "C", true, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}
