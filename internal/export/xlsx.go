// internal/export/xlsx.go
package export

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/tealeg/xlsx/v3"

	"github.com/avelara/pos-be/internal/core/domain"
)

// catalogHeaders are the export columns, in sheet order.
var catalogHeaders = []string{
	"ID",
	"Name",
	"Category",
	"Sub-Category",
	"Brand",
	"SKU",
	"Price",
	"Cost",
	"Stock",
	"Low Stock",
	"Description",
}

// XLSXExporter writes the product catalog as an Excel workbook.
type XLSXExporter struct {
	sheetName string
	maxRows   int
	logger    *slog.Logger
}

// NewXLSXExporter creates an exporter. maxRows bounds the number of
// data rows written per export.
func NewXLSXExporter(sheetName string, maxRows int, logger *slog.Logger) *XLSXExporter {
	return &XLSXExporter{
		sheetName: sheetName,
		maxRows:   maxRows,
		logger:    logger.With(slog.String("exporter", "xlsx")),
	}
}

// WriteCatalog generates the workbook for the given products and writes
// it to w. Products beyond the row limit are dropped with a warning.
func (e *XLSXExporter) WriteCatalog(w io.Writer, products []domain.Product) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(e.sheetName)
	if err != nil {
		return fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range catalogHeaders {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	if len(products) > e.maxRows {
		e.logger.Warn("catalog exceeds export row limit, truncating",
			slog.Int("catalog_size", len(products)),
			slog.Int("max_rows", e.maxRows))
		products = products[:e.maxRows]
	}

	for i := range products {
		p := &products[i]
		row := sheet.AddRow()
		for _, value := range productRow(p) {
			row.AddCell().Value = value
		}
	}

	for i := range catalogHeaders {
		sheet.SetColWidth(i+1, i+1, 15)
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	e.logger.Info("catalog exported",
		slog.Int("rows", len(products)))

	return nil
}

func productRow(p *domain.Product) []string {
	cost := ""
	if p.Cost != nil {
		cost = p.Cost.StringFixed(2)
	}
	return []string{
		p.ID.String(),
		p.Name,
		string(p.Category),
		p.SubCategory,
		p.Brand,
		p.SKU,
		p.Price.StringFixed(2),
		cost,
		strconv.Itoa(p.Stock),
		strconv.FormatBool(p.LowStock()),
		p.Description,
	}
}
