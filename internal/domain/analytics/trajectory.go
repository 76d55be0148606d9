package analytics

import (
	"sort"
	"time"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

// TrajectoryPoint stock acumulado de un producto tras un movimiento.
type TrajectoryPoint struct {
	Label     string
	Timestamp time.Time
	Stock     int64
}

// Trajectory reconstruye la curva de stock acumulado de productID dentro del rango,
// partiendo de 0 al inicio de la ventana. Un punto por movimiento, en orden cronológico.
func Trajectory(movements []entity.Movement, productID string, r Range, opts FormatOptions) []TrajectoryPoint {
	selected := make([]entity.Movement, 0, len(movements))
	for _, m := range movements {
		if m.ProductID == productID && r.Contains(opts.Zone, m.Timestamp) {
			selected = append(selected, m)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool { return selected[i].Timestamp.Before(selected[j].Timestamp) })

	l := opts.locale()
	loc := opts.Zone.Location()
	points := make([]TrajectoryPoint, 0, len(selected))
	var cumulative int64
	for _, m := range selected {
		cumulative += m.SignedQuantity()
		points = append(points, TrajectoryPoint{
			Label:     dayLabel(m.Timestamp.In(loc), l),
			Timestamp: m.Timestamp,
			Stock:     cumulative,
		})
	}
	return points
}

// DefaultHistoryProducts cantidad de productos que sigue el historial de stock.
const DefaultHistoryProducts = 5

// ProductNet variación neta de un producto en un día.
type ProductNet struct {
	ProductID string
	Name      string
	Net       int64
}

// HistoryRow fila diaria del historial de stock. Values sigue el orden de los productos.
type HistoryRow struct {
	Label  string
	Day    time.Time
	Values []ProductNet
}

// HistoryOptions parámetros de StockHistory.
type HistoryOptions struct {
	FormatOptions
	// Products cantidad de productos seguidos (los primeros del store). <= 0 usa el default.
	Products int
}

// StockHistory agrupa por día la variación neta de los primeros productos del catálogo.
// Sólo aparecen los días con movimientos de esos productos; cada fila trae todos los
// productos seguidos, con 0 cuando no se movieron ese día.
func StockHistory(movements []entity.Movement, products []entity.Product, r Range, opts HistoryOptions) []HistoryRow {
	limit := opts.Products
	if limit <= 0 {
		limit = DefaultHistoryProducts
	}
	tracked := products[:min(limit, len(products))]
	index := make(map[string]int, len(tracked))
	for i, p := range tracked {
		if _, dup := index[p.ID]; !dup {
			index[p.ID] = i
		}
	}

	l := opts.locale()
	rows := []HistoryRow{}
	byDay := map[time.Time]int{}
	for _, m := range movements {
		pi, ok := index[m.ProductID]
		if !ok || !r.Contains(opts.Zone, m.Timestamp) {
			continue
		}
		day := opts.Zone.DayOf(m.Timestamp)
		ri, ok := byDay[day]
		if !ok {
			values := make([]ProductNet, len(tracked))
			for i, p := range tracked {
				values[i] = ProductNet{ProductID: p.ID, Name: p.Name}
			}
			rows = append(rows, HistoryRow{Label: dayLabel(day, l), Day: day, Values: values})
			ri = len(rows) - 1
			byDay[day] = ri
		}
		rows[ri].Values[pi].Net += m.SignedQuantity()
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Day.Before(rows[j].Day) })
	return rows
}
