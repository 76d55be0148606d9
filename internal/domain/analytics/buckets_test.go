package analytics_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/analytics"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

func bucketOpts(skip bool) analytics.BucketOptions {
	return analytics.BucketOptions{FormatOptions: fmtEN(), SkipEmpty: skip}
}

func TestBucketMovements_PorDia(t *testing.T) {
	movs := []entity.Movement{
		in("p1", 10, at(2025, 1, 1, 10, 0)),
		out("p1", 3, at(2025, 1, 1, 15, 0)),
		in("p2", 5, at(2025, 1, 2, 9, 0)),
	}
	r := analytics.NewRange(date(2025, 1, 1), date(2025, 1, 2))

	got := analytics.BucketMovements(movs, r, analytics.GranularityDay, bucketOpts(false))

	require.Len(t, got, 2)
	assert.Equal(t, "01 Jan", got[0].Label)
	assert.Equal(t, int64(10), got[0].Inflow)
	assert.Equal(t, int64(3), got[0].Outflow)
	assert.Equal(t, "02 Jan", got[1].Label)
	assert.Equal(t, int64(5), got[1].Inflow)
	assert.Equal(t, int64(0), got[1].Outflow)
}

func TestBucketMovements_EtiquetasEnEspanol(t *testing.T) {
	r := analytics.NewRange(date(2025, 1, 5), date(2025, 1, 5))
	opts := analytics.BucketOptions{FormatOptions: analytics.FormatOptions{Zone: bogota, Locale: analytics.LocaleES}}

	got := analytics.BucketMovements(nil, r, analytics.GranularityDay, opts)
	require.Len(t, got, 1)
	assert.Equal(t, "05 ene", got[0].Label)

	got = analytics.BucketMovements(nil, r, analytics.GranularityMonth, opts)
	require.Len(t, got, 1)
	assert.Equal(t, "ene 2025", got[0].Label)
}

func TestBucketMovements_LimiteSemiabierto(t *testing.T) {
	// exactamente a medianoche del 2 de enero: pertenece sólo al segundo bucket
	movs := []entity.Movement{in("p1", 7, at(2025, 1, 2, 0, 0))}
	r := analytics.NewRange(date(2025, 1, 1), date(2025, 1, 2))

	got := analytics.BucketMovements(movs, r, analytics.GranularityDay, bucketOpts(false))

	require.Len(t, got, 2)
	assert.Equal(t, int64(0), got[0].Inflow)
	assert.Equal(t, int64(7), got[1].Inflow)
}

func TestBucketMovements_IgnoraFueraDeRango(t *testing.T) {
	movs := []entity.Movement{
		in("p1", 1, at(2024, 12, 31, 23, 59)),
		in("p1", 2, at(2025, 1, 3, 0, 0)), // fin exclusivo del rango
		in("p1", 4, at(2025, 1, 2, 23, 59)),
	}
	r := analytics.NewRange(date(2025, 1, 1), date(2025, 1, 2))

	got := analytics.BucketMovements(movs, r, analytics.GranularityDay, bucketOpts(false))

	require.Len(t, got, 2)
	assert.Equal(t, int64(0), got[0].Inflow)
	assert.Equal(t, int64(4), got[1].Inflow)
}

func TestBucketMovements_ZonaHoraria(t *testing.T) {
	// 03:00 UTC del 2 de enero = 22:00 del 1 de enero en UTC-05:00
	movs := []entity.Movement{in("p1", 9, time.Date(2025, 1, 2, 3, 0, 0, 0, time.UTC))}
	r := analytics.NewRange(date(2025, 1, 1), date(2025, 1, 2))

	got := analytics.BucketMovements(movs, r, analytics.GranularityDay, bucketOpts(false))

	require.Len(t, got, 2)
	assert.Equal(t, int64(9), got[0].Inflow)
}

func TestBucketMovements_SemanasISO(t *testing.T) {
	// 1 de enero de 2025 es miércoles: la primera semana arranca el lunes 30 de diciembre
	movs := []entity.Movement{
		in("p1", 100, at(2024, 12, 31, 12, 0)), // antes del rango, mismo bucket
		in("p1", 1, at(2025, 1, 1, 12, 0)),
		out("p1", 2, at(2025, 1, 6, 0, 0)),
		in("p1", 3, at(2025, 1, 14, 18, 0)),
	}
	r := analytics.NewRange(date(2025, 1, 1), date(2025, 1, 14))

	got := analytics.BucketMovements(movs, r, analytics.GranularityWeek, bucketOpts(false))

	require.Len(t, got, 3)
	assert.Equal(t, []string{"Week 1", "Week 2", "Week 3"}, []string{got[0].Label, got[1].Label, got[2].Label})
	assert.Equal(t, time.Monday, got[0].Start.Weekday())
	assert.Equal(t, int64(1), got[0].Inflow)
	assert.Equal(t, int64(2), got[1].Outflow)
	assert.Equal(t, int64(3), got[2].Inflow)
}

func TestBucketMovements_MesesConBisiesto(t *testing.T) {
	movs := []entity.Movement{
		in("p1", 5, at(2024, 2, 29, 12, 0)),
		in("p1", 6, at(2024, 3, 1, 0, 0)),
	}
	r := analytics.NewRange(date(2024, 1, 15), date(2024, 3, 10))

	got := analytics.BucketMovements(movs, r, analytics.GranularityMonth, bucketOpts(false))

	require.Len(t, got, 3)
	assert.Equal(t, "Feb 2024", got[1].Label)
	assert.Equal(t, at(2024, 3, 1, 0, 0), got[1].End)
	assert.Equal(t, int64(5), got[1].Inflow)
	assert.Equal(t, int64(6), got[2].Inflow)
}

func TestBucketMovements_PorAnio(t *testing.T) {
	r := analytics.NewRange(date(2023, 6, 1), date(2024, 2, 1))
	got := analytics.BucketMovements(nil, r, analytics.GranularityYear, bucketOpts(false))

	require.Len(t, got, 2)
	assert.Equal(t, "2023", got[0].Label)
	assert.Equal(t, "2024", got[1].Label)
}

func TestBucketMovements_SkipEmpty(t *testing.T) {
	movs := []entity.Movement{in("p1", 1, at(2025, 1, 3, 8, 0))}
	r := analytics.NewRange(date(2025, 1, 1), date(2025, 1, 5))

	got := analytics.BucketMovements(movs, r, analytics.GranularityDay, bucketOpts(true))
	require.Len(t, got, 1)
	assert.Equal(t, "03 Jan", got[0].Label)

	assert.Empty(t, analytics.BucketMovements(nil, r, analytics.GranularityDay, bucketOpts(true)))
	assert.Len(t, analytics.BucketMovements(nil, r, analytics.GranularityDay, bucketOpts(false)), 5)
}

func TestBucketMovements_RangoInvertidoOGranularidadInvalida(t *testing.T) {
	movs := []entity.Movement{in("p1", 1, at(2025, 1, 3, 8, 0))}
	assert.Empty(t, analytics.BucketMovements(movs, analytics.NewRange(date(2025, 1, 5), date(2025, 1, 1)),
		analytics.GranularityDay, bucketOpts(false)))
	assert.Empty(t, analytics.BucketMovements(movs, analytics.NewRange(date(2025, 1, 1), date(2025, 1, 5)),
		analytics.Granularity("hour"), bucketOpts(false)))
}

// La suma de los buckets conserva el total de entradas y salidas del rango, para cada granularidad.
func TestBucketMovements_ConservaTotales(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	r := analytics.NewRange(date(2024, 11, 20), date(2025, 3, 5))
	start, end, ok := r.Bounds(bogota)
	require.True(t, ok)

	var movs []entity.Movement
	var wantIn, wantOut int64
	for i := 0; i < 500; i++ {
		ts := at(2024, 11, 1, 0, 0).Add(time.Duration(rnd.Int63n(int64(150 * 24 * time.Hour))))
		qty := rnd.Int63n(50) + 1
		m := in("p1", qty, ts)
		if rnd.Intn(2) == 0 {
			m = out("p1", qty, ts)
		}
		movs = append(movs, m)
		if ts.Before(start) || !ts.Before(end) {
			continue
		}
		if m.Kind == entity.MovementKindInflow {
			wantIn += qty
		} else {
			wantOut += qty
		}
	}

	for _, g := range []analytics.Granularity{
		analytics.GranularityDay, analytics.GranularityWeek, analytics.GranularityMonth, analytics.GranularityYear,
	} {
		t.Run(string(g), func(t *testing.T) {
			var gotIn, gotOut int64
			buckets := analytics.BucketMovements(movs, r, g, bucketOpts(false))
			for i, b := range buckets {
				gotIn += b.Inflow
				gotOut += b.Outflow
				if i > 0 {
					assert.Equal(t, buckets[i-1].End, b.Start, "los buckets deben ser contiguos")
				}
			}
			assert.Equal(t, wantIn, gotIn)
			assert.Equal(t, wantOut, gotOut)
		})
	}
}
