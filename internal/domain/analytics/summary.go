package analytics

import (
	"time"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

// SummaryInput filas ya cargadas de la organización.
type SummaryInput struct {
	Products  []entity.Product
	Operators int
	Levels    []entity.StockLevel
	Lots      []entity.Lot
	Movements []entity.Movement
}

// Summary tarjetas de resumen del dashboard.
type Summary struct {
	TotalProducts  int
	TotalOperators int
	TotalStock     int64
	ExpiringSoon   int
	CriticalLots   int
	MovementsToday int
}

// Summarize calcula las tarjetas de resumen. "Hoy" empieza a las 00:00 en la zona.
func Summarize(in SummaryInput, now time.Time, opts ExpiryOptions) Summary {
	s := Summary{
		TotalProducts:  len(in.Products),
		TotalOperators: in.Operators,
	}
	for _, lv := range in.Levels {
		s.TotalStock += lv.CurrentStock
	}
	report := AssessExpiry(in.Lots, in.Products, now, opts)
	s.ExpiringSoon = report.NearTermCount
	s.CriticalLots = report.CriticalCount

	today := opts.Zone.Today(now)
	for _, m := range in.Movements {
		if !m.Timestamp.Before(today) && !m.Timestamp.After(now) {
			s.MovementsToday++
		}
	}
	return s
}
