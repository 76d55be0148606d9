package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/ports"
)

// ReportSource datos completos (sin tablero) para exportaciones.
type ReportSource interface {
	ExpiryDigest(ctx context.Context, organizationID, locale string) (*dto.ExpiryRiskDTO, error)
	SeriesReport(ctx context.Context, organizationID string, req dto.AnalyticsRequest) (*dto.MovementSeriesDTO, error)
}

// ReportHandler descargas PDF y XLSX.
type ReportHandler struct {
	source   ReportSource
	orgs     OrganizationService
	renderer ports.ExpiryReportRenderer
	exporter ports.SeriesExporter
	now      func() time.Time
}

// NewReportHandler construye el handler.
func NewReportHandler(source ReportSource, orgs OrganizationService, renderer ports.ExpiryReportRenderer, exporter ports.SeriesExporter) *ReportHandler {
	return &ReportHandler{source: source, orgs: orgs, renderer: renderer, exporter: exporter, now: time.Now}
}

// ExpiryPDF godoc
// @Summary      Reporte PDF de lotes próximos a vencer
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/reports/expiry.pdf [get]
func (h *ReportHandler) ExpiryPDF(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	org, err := h.orgs.Get(c.Context(), orgID)
	if err != nil {
		return writeError(c, err)
	}
	report, err := h.source.ExpiryDigest(c.Context(), orgID, requestLocale(c))
	if err != nil {
		return writeError(c, err)
	}
	now := h.now()
	body, err := h.renderer.RenderExpiryReport(org.Name, now, report)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="vencimientos-%s.pdf"`, now.Format(dateLayout)))
	return c.Send(body)
}

// MovementsXLSX godoc
// @Summary      Serie de movimientos en Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from         query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        to           query  string  false  "Fin inclusive (YYYY-MM-DD)"
// @Param        granularity  query  string  false  "day | week | month | year"
// @Success      200  {file}  binary
// @Router       /api/reports/movements.xlsx [get]
func (h *ReportHandler) MovementsXLSX(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	req, err := parseAnalyticsRequest(c)
	if err != nil {
		return writeError(c, err)
	}
	org, err := h.orgs.Get(c.Context(), orgID)
	if err != nil {
		return writeError(c, err)
	}
	series, err := h.source.SeriesReport(c.Context(), orgID, req)
	if err != nil {
		return writeError(c, err)
	}
	body, err := h.exporter.ExportMovementSeries(org.Name, series)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="movimientos-%s-%s.xlsx"`, series.From, series.To))
	return c.Send(body)
}
