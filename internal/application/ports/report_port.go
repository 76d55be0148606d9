package ports

import (
	"context"
	"io"
	"time"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
)

// ExpiryReportRenderer genera el PDF del reporte de vencimientos.
type ExpiryReportRenderer interface {
	RenderExpiryReport(organizationName string, generatedAt time.Time, report *dto.ExpiryRiskDTO) ([]byte, error)
}

// SeriesExporter genera la hoja de cálculo de la serie de movimientos.
type SeriesExporter interface {
	ExportMovementSeries(organizationName string, series *dto.MovementSeriesDTO) ([]byte, error)
}

// ReportArchive guarda reportes generados en almacenamiento de objetos.
type ReportArchive interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (location string, err error)
}
