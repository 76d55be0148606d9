package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/analytics"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

func TestTrajectory_Acumulado(t *testing.T) {
	movs := []entity.Movement{
		in("p1", 10, at(2025, 1, 3, 9, 0)),
		in("p1", 5, at(2025, 1, 1, 9, 0)),
		in("p2", 99, at(2025, 1, 2, 9, 0)),
		out("p1", 3, at(2025, 1, 2, 9, 0)),
	}
	r := analytics.NewRange(date(2025, 1, 1), date(2025, 1, 31))

	got := analytics.Trajectory(movs, "p1", r, fmtEN())

	require.Len(t, got, 3)
	assert.Equal(t, []int64{5, 2, 12}, []int64{got[0].Stock, got[1].Stock, got[2].Stock})
	assert.Equal(t, []string{"01 Jan", "02 Jan", "03 Jan"}, []string{got[0].Label, got[1].Label, got[2].Label})

	// el último punto es la variación neta del producto en el rango
	var net int64
	for _, m := range movs {
		if m.ProductID == "p1" {
			net += m.SignedQuantity()
		}
	}
	assert.Equal(t, net, got[len(got)-1].Stock)
}

func TestTrajectory_EmpateConservaOrden(t *testing.T) {
	ts := at(2025, 1, 1, 9, 0)
	movs := []entity.Movement{in("p1", 4, ts), out("p1", 1, ts)}

	got := analytics.Trajectory(movs, "p1", analytics.NewRange(date(2025, 1, 1), date(2025, 1, 1)), fmtEN())

	require.Len(t, got, 2)
	assert.Equal(t, int64(4), got[0].Stock)
	assert.Equal(t, int64(3), got[1].Stock)
}

func TestTrajectory_SinMovimientos(t *testing.T) {
	got := analytics.Trajectory(nil, "p1", analytics.NewRange(date(2025, 1, 1), date(2025, 1, 2)), fmtEN())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStockHistory_RellenaConCeros(t *testing.T) {
	products := []entity.Product{
		{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"},
		{ID: "d", Name: "D"}, {ID: "e", Name: "E"}, {ID: "f", Name: "F"},
	}
	movs := []entity.Movement{
		out("a", 1, at(2025, 1, 2, 10, 0)),
		in("a", 5, at(2025, 1, 1, 10, 0)),
		out("b", 2, at(2025, 1, 1, 11, 0)),
		in("f", 50, at(2025, 1, 1, 12, 0)), // fuera de los 5 seguidos
	}
	r := analytics.NewRange(date(2025, 1, 1), date(2025, 1, 2))

	got := analytics.StockHistory(movs, products, r, analytics.HistoryOptions{FormatOptions: fmtEN()})

	require.Len(t, got, 2)
	assert.Equal(t, "01 Jan", got[0].Label)
	require.Len(t, got[0].Values, analytics.DefaultHistoryProducts)
	assert.Equal(t, int64(5), got[0].Values[0].Net)
	assert.Equal(t, int64(-2), got[0].Values[1].Net)
	assert.Equal(t, int64(0), got[0].Values[4].Net)
	assert.Equal(t, "02 Jan", got[1].Label)
	assert.Equal(t, int64(-1), got[1].Values[0].Net)
	assert.Equal(t, int64(0), got[1].Values[1].Net)
}
