package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

// DefaultRankingSize tamaño por defecto de cada lista del ranking.
const DefaultRankingSize = 5

// RankingOptions parámetros de RankActivity.
type RankingOptions struct {
	FormatOptions
	N          int
	NameBudget int
}

// RankedProduct actividad acumulada de un producto.
type RankedProduct struct {
	ProductID string
	Name      string
	Activity  int64
	Inflow    int64
	Outflow   int64
	// SharePct porcentaje de la actividad total, redondeado a 2 decimales.
	SharePct decimal.Decimal
}

// Ranking productos más y menos movidos. Top en orden descendente, Bottom ascendente.
// Las listas pueden solaparse cuando hay menos de 2N productos.
type Ranking struct {
	Top           []RankedProduct
	Bottom        []RankedProduct
	TotalActivity int64
}

// RankActivity suma la cantidad (sin signo) movida por producto dentro del rango.
// El desempate respeta el orden de primera aparición en movements.
func RankActivity(movements []entity.Movement, products []entity.Product, r Range, opts RankingOptions) Ranking {
	n := opts.N
	if n <= 0 {
		n = DefaultRankingSize
	}
	budget := opts.NameBudget
	if budget <= 0 {
		budget = DefaultNameBudget
	}
	names := make(map[string]string, len(products))
	for _, p := range products {
		if _, seen := names[p.ID]; !seen {
			names[p.ID] = p.Name
		}
	}

	var (
		ranked []RankedProduct
		pos    = map[string]int{}
		total  int64
	)
	for _, m := range movements {
		if !r.Contains(opts.Zone, m.Timestamp) {
			continue
		}
		i, ok := pos[m.ProductID]
		if !ok {
			name, known := names[m.ProductID]
			if known {
				name = TruncateName(name, budget)
			} else {
				name = opts.locale().UnknownProduct
			}
			ranked = append(ranked, RankedProduct{ProductID: m.ProductID, Name: name})
			i = len(ranked) - 1
			pos[m.ProductID] = i
		}
		ranked[i].Activity += m.Quantity
		switch m.Kind {
		case entity.MovementKindInflow:
			ranked[i].Inflow += m.Quantity
		case entity.MovementKindOutflow:
			ranked[i].Outflow += m.Quantity
		}
		total += m.Quantity
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Activity > ranked[j].Activity })

	if total > 0 {
		hundred := decimal.NewFromInt(100)
		dTotal := decimal.NewFromInt(total)
		for i := range ranked {
			ranked[i].SharePct = decimal.NewFromInt(ranked[i].Activity).Mul(hundred).Div(dTotal).Round(2)
		}
	}

	k := min(n, len(ranked))
	top := make([]RankedProduct, k)
	copy(top, ranked[:k])
	bottom := make([]RankedProduct, 0, k)
	for i := len(ranked) - 1; i >= len(ranked)-k; i-- {
		bottom = append(bottom, ranked[i])
	}
	return Ranking{Top: top, Bottom: bottom, TotalActivity: total}
}
