package dto

import "time"

// DashboardSummaryDTO tarjetas de resumen del dashboard.
type DashboardSummaryDTO struct {
	TotalProducts  int       `json:"total_productos"`
	TotalOperators int       `json:"total_operarios"`
	TotalStock     int64     `json:"stock_total"`
	ExpiringSoon   int       `json:"proximos_a_vencer"`
	CriticalLots   int       `json:"lotes_criticos"`
	MovementsToday int       `json:"movimientos_hoy"`
	GeneratedAt    time.Time `json:"generado"`
}
