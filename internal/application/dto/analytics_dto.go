package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsRequest parámetros comunes de las vistas del dashboard.
// From/To son fechas de calendario (YYYY-MM-DD); vacías = últimos 30 días.
type AnalyticsRequest struct {
	UserID      string    `json:"-"`
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
	Granularity string    `json:"granularity,omitempty"` // day | week | month | year
	Locale      string    `json:"locale,omitempty"`      // es | en
	Visible     int       `json:"visible,omitempty"`     // elementos visibles en listas paginadas
}

// ── Serie por período ─────────────────────────────────────────────────────────

// BucketDTO entradas y salidas de un período.
type BucketDTO struct {
	Label   string    `json:"label"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Inflow  int64     `json:"entradas"`
	Outflow int64     `json:"salidas"`
	Net     int64     `json:"neto"`
}

// MovementSeriesDTO serie de movimientos agrupada por granularidad.
type MovementSeriesDTO struct {
	Granularity  string      `json:"granularity"`
	From         string      `json:"from"`
	To           string      `json:"to"`
	TotalInflow  int64       `json:"total_entradas"`
	TotalOutflow int64       `json:"total_salidas"`
	Buckets      []BucketDTO `json:"buckets"`
}

// ── Stock ─────────────────────────────────────────────────────────────────────

// StockEntryDTO barra del snapshot de stock.
type StockEntryDTO struct {
	ProductID    string `json:"producto_id"`
	Name         string `json:"nombre"`
	FullName     string `json:"nombre_completo"`
	CurrentStock int64  `json:"stock"`
}

// StockSnapshotDTO stock actual de los primeros productos.
type StockSnapshotDTO struct {
	Items []StockEntryDTO `json:"items"`
}

// ProductRefDTO referencia mínima a un producto.
type ProductRefDTO struct {
	ProductID string `json:"producto_id"`
	Name      string `json:"nombre"`
}

// ProductNetDTO variación neta de un producto en un día.
type ProductNetDTO struct {
	ProductID string `json:"producto_id"`
	Net       int64  `json:"neto"`
}

// StockHistoryRowDTO fila diaria del historial.
type StockHistoryRowDTO struct {
	Label  string          `json:"fecha"`
	Day    time.Time       `json:"dia"`
	Values []ProductNetDTO `json:"valores"`
}

// StockHistoryDTO historial diario de los productos seguidos.
type StockHistoryDTO struct {
	Products []ProductRefDTO      `json:"productos"`
	Rows     []StockHistoryRowDTO `json:"filas"`
}

// TrajectoryPointDTO punto de la curva de stock acumulado.
type TrajectoryPointDTO struct {
	Label     string    `json:"fecha"`
	Timestamp time.Time `json:"timestamp"`
	Stock     int64     `json:"stock"`
}

// TrajectoryDTO trayectoria de stock de un producto.
type TrajectoryDTO struct {
	ProductID   string               `json:"producto_id"`
	ProductName string               `json:"producto_nombre"`
	Points      []TrajectoryPointDTO `json:"puntos"`
}

// ── Ranking ───────────────────────────────────────────────────────────────────

// RankedProductDTO actividad de un producto en el período.
type RankedProductDTO struct {
	ProductID string          `json:"producto_id"`
	Name      string          `json:"nombre"`
	Activity  int64           `json:"actividad"`
	Inflow    int64           `json:"entradas"`
	Outflow   int64           `json:"salidas"`
	SharePct  decimal.Decimal `json:"porcentaje"`
}

// ActivityRankingDTO productos más y menos movidos.
type ActivityRankingDTO struct {
	Top           []RankedProductDTO `json:"top"`
	Bottom        []RankedProductDTO `json:"bottom"`
	TotalActivity int64              `json:"actividad_total"`
}

// ── Vencimientos ──────────────────────────────────────────────────────────────

// ExpiryItemDTO lote en ventana de vencimiento.
type ExpiryItemDTO struct {
	LotID           string `json:"lote_id"`
	ProductID       string `json:"producto_id"`
	ProductName     string `json:"producto_nombre"`
	Quantity        int64  `json:"cantidad"`
	ExpirationDate  string `json:"fecha_vencimiento"` // YYYY-MM-DD
	DaysUntilExpiry int    `json:"dias_restantes"`
	Level           string `json:"nivel"` // critical | near_term
}

// ExpiryRiskDTO lotes próximos a vencer, con la ventana visible aplicada.
type ExpiryRiskDTO struct {
	CriticalCount int             `json:"criticos"`
	NearTermCount int             `json:"proximos"`
	ExpiredCount  int             `json:"vencidos"`
	Total         int             `json:"total"`
	Visible       int             `json:"visibles"`
	NextVisible   int             `json:"siguiente_visible"`
	HasMore       bool            `json:"hay_mas"`
	Items         []ExpiryItemDTO `json:"items"`
}
