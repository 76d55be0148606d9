package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain"
)

// DashboardService vistas analíticas del dashboard.
type DashboardService interface {
	MovementSeries(ctx context.Context, organizationID string, req dto.AnalyticsRequest) (*dto.MovementSeriesDTO, error)
	StockSnapshot(ctx context.Context, organizationID string, req dto.AnalyticsRequest) (*dto.StockSnapshotDTO, error)
	StockHistory(ctx context.Context, organizationID string, req dto.AnalyticsRequest) (*dto.StockHistoryDTO, error)
	ProductTrajectory(ctx context.Context, organizationID, productID string, req dto.AnalyticsRequest) (*dto.TrajectoryDTO, error)
	ActivityRanking(ctx context.Context, organizationID string, req dto.AnalyticsRequest) (*dto.ActivityRankingDTO, error)
	ExpiryRisk(ctx context.Context, organizationID string, req dto.AnalyticsRequest) (*dto.ExpiryRiskDTO, error)
	Summary(ctx context.Context, organizationID string, req dto.AnalyticsRequest) (*dto.DashboardSummaryDTO, error)
	Latest(organizationID, userID, view string) (any, bool)
}

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc DashboardService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc DashboardService) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

const dateLayout = "2006-01-02"

// parseAnalyticsRequest lee from, to (YYYY-MM-DD), granularity, visible y el idioma.
func parseAnalyticsRequest(c *fiber.Ctx) (dto.AnalyticsRequest, error) {
	req := dto.AnalyticsRequest{
		UserID:      GetUserID(c),
		Granularity: c.Query("granularity"),
		Locale:      requestLocale(c),
		Visible:     c.QueryInt("visible", 0),
	}
	var err error
	if req.From, err = parseDateParam(c.Query("from")); err != nil {
		return req, fmt.Errorf("%w: from: %v", domain.ErrInvalidInput, err)
	}
	if req.To, err = parseDateParam(c.Query("to")); err != nil {
		return req, fmt.Errorf("%w: to: %v", domain.ErrInvalidInput, err)
	}
	return req, nil
}

func parseDateParam(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, s)
}

// view ejecuta una vista con los parámetros comunes.
func view[T any](c *fiber.Ctx, fn func(ctx context.Context, orgID string, req dto.AnalyticsRequest) (T, error)) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	req, err := parseAnalyticsRequest(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := fn(c.Context(), orgID, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetMovementSeries godoc
// @Summary      Entradas y salidas agrupadas por período
// @Description  Buckets semiabiertos [inicio, fin) en la zona horaria configurada. Devuelve 409 STALE_REQUEST si una consulta más reciente de la misma vista la reemplazó.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        from         query  string  false  "Inicio (YYYY-MM-DD). Default: hoy - 29 días."
// @Param        to           query  string  false  "Fin inclusive (YYYY-MM-DD). Default: hoy."
// @Param        granularity  query  string  false  "day | week | month | year (default month)"
// @Param        locale       query  string  false  "es | en (default Accept-Language)"
// @Success      200  {object}  dto.MovementSeriesDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dashboard/movements [get]
func (h *DashboardHandler) GetMovementSeries(c *fiber.Ctx) error {
	return view(c, h.uc.MovementSeries)
}

// GetStockSnapshot godoc
// @Summary      Stock actual de los primeros productos
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockSnapshotDTO
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stock [get]
func (h *DashboardHandler) GetStockSnapshot(c *fiber.Ctx) error {
	return view(c, h.uc.StockSnapshot)
}

// GetStockHistory godoc
// @Summary      Cambio neto diario por producto
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        to    query  string  false  "Fin inclusive (YYYY-MM-DD)"
// @Success      200  {object}  dto.StockHistoryDTO
// @Router       /api/dashboard/stock-history [get]
func (h *DashboardHandler) GetStockHistory(c *fiber.Ctx) error {
	return view(c, h.uc.StockHistory)
}

// GetProductTrajectory godoc
// @Summary      Stock acumulado de un producto movimiento a movimiento
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "producto_id"
// @Param        from  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        to    query  string  false  "Fin inclusive (YYYY-MM-DD)"
// @Success      200  {object}  dto.TrajectoryDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/products/{id}/trajectory [get]
func (h *DashboardHandler) GetProductTrajectory(c *fiber.Ctx) error {
	productID := c.Params("id")
	return view(c, func(ctx context.Context, orgID string, req dto.AnalyticsRequest) (*dto.TrajectoryDTO, error) {
		return h.uc.ProductTrajectory(ctx, orgID, productID, req)
	})
}

// GetActivityRanking godoc
// @Summary      Productos con más y menos movimiento
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Inicio (YYYY-MM-DD)"
// @Param        to    query  string  false  "Fin inclusive (YYYY-MM-DD)"
// @Success      200  {object}  dto.ActivityRankingDTO
// @Router       /api/dashboard/ranking [get]
func (h *DashboardHandler) GetActivityRanking(c *fiber.Ctx) error {
	return view(c, h.uc.ActivityRanking)
}

// GetExpiryRisk godoc
// @Summary      Lotes próximos a vencer
// @Description  Críticos (0-3 días) y próximos (0-7 días). visible controla cuántos se listan; siguiente_visible suma 5.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        visible  query  int  false  "Elementos visibles (default 5)"
// @Success      200  {object}  dto.ExpiryRiskDTO
// @Router       /api/dashboard/expiry [get]
func (h *DashboardHandler) GetExpiryRisk(c *fiber.Ctx) error {
	return view(c, h.uc.ExpiryRisk)
}

// GetSummary godoc
// @Summary      Tarjetas de resumen del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return view(c, h.uc.Summary)
}

// GetLatest godoc
// @Summary      Último resultado publicado de una vista
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        view  path  string  true  "series | snapshot | history | trajectory | ranking | expiry | summary"
// @Success      200  {object}  object
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dashboard/latest/{view} [get]
func (h *DashboardHandler) GetLatest(c *fiber.Ctx) error {
	orgID, ok := requireOrganization(c)
	if !ok {
		return nil
	}
	v, found := h.uc.Latest(orgID, GetUserID(c), c.Params("view"))
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la vista no tiene resultados publicados"})
	}
	return c.JSON(v)
}
