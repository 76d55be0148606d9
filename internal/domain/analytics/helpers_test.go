package analytics_test

import (
	"time"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/analytics"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures compartidos
// ──────────────────────────────────────────────────────────────────────────────

var bogota = analytics.FixedZone(analytics.DefaultOffsetSeconds)

// at instante local (UTC-05:00).
func at(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, bogota.Location())
}

// date fecha de calendario tal como la entrega el driver para columnas DATE.
func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func in(product string, qty int64, ts time.Time) entity.Movement {
	return entity.Movement{ProductID: product, Kind: entity.MovementKindInflow, Quantity: qty, Timestamp: ts}
}

func out(product string, qty int64, ts time.Time) entity.Movement {
	return entity.Movement{ProductID: product, Kind: entity.MovementKindOutflow, Quantity: qty, Timestamp: ts}
}

func fmtEN() analytics.FormatOptions {
	return analytics.FormatOptions{Zone: bogota, Locale: analytics.LocaleEN}
}
