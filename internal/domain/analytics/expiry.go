package analytics

import (
	"sort"
	"time"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

const (
	DefaultCriticalDays = 3
	DefaultNearTermDays = 7
)

// RiskLevel nivel de riesgo de un lote.
type RiskLevel string

const (
	RiskCritical RiskLevel = "critical"
	RiskNearTerm RiskLevel = "near_term"
)

// ExpiryOptions umbrales de clasificación. Valores <= 0 usan los defaults.
type ExpiryOptions struct {
	FormatOptions
	CriticalDays int
	NearTermDays int
}

func (o ExpiryOptions) thresholds() (critical, nearTerm int) {
	critical, nearTerm = o.CriticalDays, o.NearTermDays
	if critical <= 0 {
		critical = DefaultCriticalDays
	}
	if nearTerm <= 0 {
		nearTerm = DefaultNearTermDays
	}
	return critical, nearTerm
}

// ExpiryItem lote en ventana de vencimiento.
type ExpiryItem struct {
	LotID           string
	ProductID       string
	ProductName     string
	Quantity        int64
	ExpirationDate  time.Time
	DaysUntilExpiry int
	Level           RiskLevel
}

// ExpiryReport lotes próximos a vencer. Los críticos también cuentan como próximos.
// Los vencidos sólo se cuentan.
type ExpiryReport struct {
	CriticalCount int
	NearTermCount int
	ExpiredCount  int
	Items         []ExpiryItem
}

// DaysUntil días de calendario entre hoy (instante, evaluado en la zona) y la fecha
// de vencimiento (fecha de calendario). Negativo si ya venció.
func DaysUntil(expiration, now time.Time, z Zone) int {
	return civilDays(z.Today(now), expiration)
}

// AssessExpiry clasifica los lotes con cantidad positiva según los días que faltan
// para su vencimiento. Items queda ordenado ascendentemente por días.
func AssessExpiry(lots []entity.Lot, products []entity.Product, now time.Time, opts ExpiryOptions) ExpiryReport {
	critical, nearTerm := opts.thresholds()
	names := make(map[string]string, len(products))
	for _, p := range products {
		if _, seen := names[p.ID]; !seen {
			names[p.ID] = p.Name
		}
	}

	report := ExpiryReport{Items: []ExpiryItem{}}
	for _, lot := range lots {
		if lot.Quantity <= 0 {
			continue
		}
		days := DaysUntil(lot.ExpirationDate, now, opts.Zone)
		switch {
		case days < 0:
			report.ExpiredCount++
			continue
		case days > nearTerm:
			continue
		}
		item := ExpiryItem{
			LotID:           lot.ID,
			ProductID:       lot.ProductID,
			ProductName:     names[lot.ProductID],
			Quantity:        lot.Quantity,
			ExpirationDate:  lot.ExpirationDate,
			DaysUntilExpiry: days,
			Level:           RiskNearTerm,
		}
		if item.ProductName == "" {
			item.ProductName = opts.locale().UnknownProduct
		}
		report.NearTermCount++
		if days <= critical {
			item.Level = RiskCritical
			report.CriticalCount++
		}
		report.Items = append(report.Items, item)
	}

	sort.SliceStable(report.Items, func(i, j int) bool {
		return report.Items[i].DaysUntilExpiry < report.Items[j].DaysUntilExpiry
	})
	return report
}

// Critical filtra los items críticos, conservando el orden.
func (r ExpiryReport) Critical() []ExpiryItem {
	out := make([]ExpiryItem, 0, r.CriticalCount)
	for _, it := range r.Items {
		if it.Level == RiskCritical {
			out = append(out, it)
		}
	}
	return out
}
