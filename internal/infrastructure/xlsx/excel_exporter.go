// Package xlsx genera planillas Excel con el contenido de las tablas.
package xlsx

import (
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/gestion-patrimonial/internal/application/report"
)

const (
	minColWidth = 10
	maxColWidth = 60
)

var _ report.SpreadsheetWriter = (*ExcelExporter)(nil)

// ExcelExporter implementa report.SpreadsheetWriter con excelize.
type ExcelExporter struct{}

// NewExcelExporter construye el exportador.
func NewExcelExporter() *ExcelExporter { return &ExcelExporter{} }

// WriteWorkbook escribe una hoja por tabla: encabezado en negrita con fondo gris y
// una fila por registro. Devuelve los bytes del .xlsx.
func (e *ExcelExporter) WriteWorkbook(tables []*report.TableData) ([]byte, error) {
	if len(tables) == 0 {
		return nil, fmt.Errorf("xlsx: sin tablas para exportar")
	}
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo de encabezado: %w", err)
	}

	for i, t := range tables {
		sheet := sheetName(t.Table)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("xlsx: crear hoja %s: %w", sheet, err)
		}
		if err := writeSheet(f, sheet, t, headerStyle); err != nil {
			return nil, err
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, t *report.TableData, headerStyle int) error {
	widths := make([]int, len(t.Columns))
	for i, h := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("xlsx: encabezado %s: %w", h, err)
		}
		widths[i] = utf8.RuneCountInString(h)
	}
	if len(t.Columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(t.Columns), 1)
		if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("xlsx: estilo: %w", err)
		}
	}

	for r, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("xlsx: celda: %w", err)
		}
		values := make([]any, len(row))
		for c, v := range row {
			values[c] = v
			if c < len(widths) {
				widths[c] = max(widths[c], utf8.RuneCountInString(v))
			}
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("xlsx: fila %d: %w", r+1, err)
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("xlsx: columna: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, float64(min(max(w+2, minColWidth), maxColWidth))); err != nil {
			return fmt.Errorf("xlsx: ancho de columna: %w", err)
		}
	}
	return nil
}

// sheetName recorta al máximo de 31 caracteres que admite Excel.
func sheetName(table string) string {
	if utf8.RuneCountInString(table) <= 31 {
		return table
	}
	return string([]rune(table)[:31])
}
