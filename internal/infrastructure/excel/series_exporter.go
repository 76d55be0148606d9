// Package excel exporta vistas del dashboard a hojas de cálculo XLSX.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/ports"
)

// SeriesSheet nombre de la hoja con la serie de movimientos.
const SeriesSheet = "Movimientos"

// SeriesExporter implementa ports.SeriesExporter con excelize.
type SeriesExporter struct{}

var _ ports.SeriesExporter = (*SeriesExporter)(nil)

// NewSeriesExporter construye el exportador.
func NewSeriesExporter() *SeriesExporter { return &SeriesExporter{} }

// ExportMovementSeries escribe una fila por bucket y una fila final de totales.
func (e *SeriesExporter) ExportMovementSeries(organizationName string, series *dto.MovementSeriesDTO) ([]byte, error) {
	if series == nil {
		return nil, fmt.Errorf("excel: serie vacía")
	}
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SeriesSheet); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	title := fmt.Sprintf("%s - movimientos %s a %s (%s)", organizationName, series.From, series.To, series.Granularity)
	if err := f.SetCellValue(SeriesSheet, "A1", title); err != nil {
		return nil, fmt.Errorf("excel: título: %w", err)
	}
	if err := f.SetSheetRow(SeriesSheet, "A3", &[]any{"Periodo", "Inicio", "Fin", "Entradas", "Salidas", "Neto"}); err != nil {
		return nil, fmt.Errorf("excel: cabecera: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo: %w", err)
	}
	_ = f.SetCellStyle(SeriesSheet, "A1", "A1", bold)
	_ = f.SetCellStyle(SeriesSheet, "A3", "F3", bold)

	r := 4
	for _, b := range series.Buckets {
		cell, _ := excelize.CoordinatesToCellName(1, r)
		row := []any{b.Label, b.Start.Format("2006-01-02 15:04"), b.End.Format("2006-01-02 15:04"), b.Inflow, b.Outflow, b.Net}
		if err := f.SetSheetRow(SeriesSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", r, err)
		}
		r++
	}

	totalCell, _ := excelize.CoordinatesToCellName(1, r)
	totals := []any{"Total", "", "", series.TotalInflow, series.TotalOutflow, series.TotalInflow - series.TotalOutflow}
	if err := f.SetSheetRow(SeriesSheet, totalCell, &totals); err != nil {
		return nil, fmt.Errorf("excel: totales: %w", err)
	}
	endCell, _ := excelize.CoordinatesToCellName(6, r)
	_ = f.SetCellStyle(SeriesSheet, totalCell, endCell, bold)
	_ = f.SetColWidth(SeriesSheet, "A", "C", 18)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
