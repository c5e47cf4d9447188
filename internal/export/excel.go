// Package export формирует файлы выгрузки каталога товаров.
//
// Поддерживаются два формата: книга Excel с листом Inventory и PDF-отчёт
// с фирменным оформлением. Оба формата используют одинаковый набор колонок:
// название, цена, количество и стоимость позиции.
package export

import (
	"fmt"

	"github.com/krotovalex/inventory-keeper/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	sheetName  = "Inventory"
	themeColor = "E91E63"
)

var columns = []string{"name", "price", "quantity", "total_value"}

// ToExcel сериализует список товаров в книгу Excel с одним листом Inventory.
// Строка заголовка выделяется жирным шрифтом на фирменном фоне, ширина
// каждой колонки подгоняется под самое длинное значение в ней.
func ToExcel(products []*models.ProductInfo) ([]byte, error) {
	const op = "export.ToExcel"

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // буфер уже записан

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows := make([][]any, 0, len(products)+1)
	header := make([]any, len(columns))
	for i, column := range columns {
		header[i] = column
	}
	rows = append(rows, header)
	for _, product := range products {
		rows = append(rows, []any{product.Name, product.Price, product.Quantity, product.TotalValue})
	}

	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{themeColor}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(columns), 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeaderCell, headerStyle); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for c := range columns {
		width := 0
		for _, row := range rows {
			if l := len(fmt.Sprint(row[c])); l > width {
				width = l
			}
		}
		columnName, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if err := f.SetColWidth(sheetName, columnName, columnName, float64(width+2)); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return buf.Bytes(), nil
}
