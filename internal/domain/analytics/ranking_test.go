package analytics_test

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/analytics"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

func ids(items []analytics.RankedProduct) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ProductID
	}
	return out
}

var rankRange = analytics.NewRange(date(2025, 1, 1), date(2025, 1, 31))

func TestRankActivity_TopYBottomConEmpates(t *testing.T) {
	products := []entity.Product{{ID: "A", Name: "Alpha"}, {ID: "B", Name: "Beta"}, {ID: "C", Name: "Gamma"}}
	movs := []entity.Movement{
		in("A", 30, at(2025, 1, 2, 8, 0)),
		in("B", 50, at(2025, 1, 2, 9, 0)),
		out("A", 20, at(2025, 1, 3, 8, 0)),
		out("C", 10, at(2025, 1, 4, 8, 0)),
	}

	got := analytics.RankActivity(movs, products, rankRange, analytics.RankingOptions{FormatOptions: fmtEN()})

	assert.Equal(t, []string{"A", "B", "C"}, ids(got.Top), "el empate respeta el orden de primera aparición")
	assert.Equal(t, []string{"C", "B", "A"}, ids(got.Bottom))
	assert.Equal(t, int64(110), got.TotalActivity)
	assert.Equal(t, int64(30), got.Top[0].Inflow)
	assert.Equal(t, int64(20), got.Top[0].Outflow)
	assert.True(t, decimal.RequireFromString("45.45").Equal(got.Top[0].SharePct), "share A = %s", got.Top[0].SharePct)
	assert.True(t, decimal.RequireFromString("9.09").Equal(got.Bottom[0].SharePct), "share C = %s", got.Bottom[0].SharePct)
}

func TestRankActivity_MasDeNProductos(t *testing.T) {
	var movs []entity.Movement
	for i := 1; i <= 7; i++ {
		movs = append(movs, in(fmt.Sprintf("p%d", i), int64(i), at(2025, 1, 5, 8, 0)))
	}

	got := analytics.RankActivity(movs, nil, rankRange, analytics.RankingOptions{FormatOptions: fmtEN()})

	assert.Equal(t, []string{"p7", "p6", "p5", "p4", "p3"}, ids(got.Top))
	assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, ids(got.Bottom))
}

func TestRankActivity_ProductoDesconocido(t *testing.T) {
	movs := []entity.Movement{in("ghost", 4, at(2025, 1, 5, 8, 0))}

	got := analytics.RankActivity(movs, nil, rankRange, analytics.RankingOptions{FormatOptions: fmtEN()})
	require.Len(t, got.Top, 1)
	assert.Equal(t, "Unknown product", got.Top[0].Name)

	es := analytics.RankingOptions{FormatOptions: analytics.FormatOptions{Zone: bogota, Locale: analytics.LocaleES}}
	got = analytics.RankActivity(movs, nil, rankRange, es)
	assert.Equal(t, "Producto desconocido", got.Top[0].Name)
}

func TestRankActivity_FiltraRangoYTruncaNombre(t *testing.T) {
	products := []entity.Product{{ID: "a", Name: "Insulina glargina 100UI"}}
	movs := []entity.Movement{
		in("a", 4, at(2025, 1, 5, 8, 0)),
		in("a", 100, at(2025, 2, 1, 0, 0)),
	}

	got := analytics.RankActivity(movs, products, rankRange, analytics.RankingOptions{FormatOptions: fmtEN(), N: 3})

	require.Len(t, got.Top, 1)
	assert.Equal(t, int64(4), got.Top[0].Activity)
	assert.Equal(t, "Insulina glargi...", got.Top[0].Name)
	assert.True(t, decimal.NewFromInt(100).Equal(got.Top[0].SharePct))
}

func TestRankActivity_SinMovimientos(t *testing.T) {
	got := analytics.RankActivity(nil, nil, rankRange, analytics.RankingOptions{})
	assert.Empty(t, got.Top)
	assert.Empty(t, got.Bottom)
	assert.Zero(t, got.TotalActivity)
}

func TestRankActivity_PlaceholderNoSeTrunca(t *testing.T) {
	products := []entity.Product{{ID: "a", Name: "Vacuna triple viral"}}
	movs := []entity.Movement{
		in("a", 9, at(2025, 1, 5, 8, 0)),
		in("ghost", 4, at(2025, 1, 6, 8, 0)),
	}
	opts := analytics.RankingOptions{
		FormatOptions: analytics.FormatOptions{Zone: bogota, Locale: analytics.LocaleES},
		NameBudget:    6,
	}

	got := analytics.RankActivity(movs, products, rankRange, opts)

	require.Len(t, got.Top, 2)
	assert.Equal(t, "Vacuna...", got.Top[0].Name)
	assert.Equal(t, "Producto desconocido", got.Top[1].Name)
}

func TestRankActivity_IdempotenteSobreOrdenYaRankeado(t *testing.T) {
	products := []entity.Product{{ID: "A", Name: "Alpha"}, {ID: "B", Name: "Beta"}, {ID: "C", Name: "Gamma"}, {ID: "D", Name: "Delta"}}
	movs := []entity.Movement{
		in("C", 5, at(2025, 1, 2, 8, 0)),
		in("A", 30, at(2025, 1, 2, 9, 0)),
		out("B", 30, at(2025, 1, 3, 8, 0)),
		out("D", 12, at(2025, 1, 4, 8, 0)),
		in("C", 7, at(2025, 1, 5, 8, 0)),
	}
	opts := analytics.RankingOptions{FormatOptions: fmtEN()}
	first := analytics.RankActivity(movs, products, rankRange, opts)

	// reordena la entrada según el ranking obtenido: cada producto aparece en orden de Top
	var sorted []entity.Movement
	for _, id := range ids(first.Top) {
		for _, m := range movs {
			if m.ProductID == id {
				sorted = append(sorted, m)
			}
		}
	}
	second := analytics.RankActivity(sorted, products, rankRange, opts)

	assert.Equal(t, ids(first.Top), ids(second.Top))
	assert.Equal(t, ids(first.Bottom), ids(second.Bottom))
	assert.Equal(t, first.TotalActivity, second.TotalActivity)
	for i := range first.Top {
		assert.Equal(t, first.Top[i].Activity, second.Top[i].Activity)
		assert.True(t, first.Top[i].SharePct.Equal(second.Top[i].SharePct))
	}
}
