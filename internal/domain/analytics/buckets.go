package analytics

import (
	"sort"
	"time"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/domain/entity"
)

// Bucket totales de entradas y salidas de un período [Start, End).
type Bucket struct {
	Label   string
	Start   time.Time
	End     time.Time
	Inflow  int64
	Outflow int64
}

// Net variación neta del bucket.
func (b Bucket) Net() int64 { return b.Inflow - b.Outflow }

// BucketOptions parámetros de BucketMovements.
type BucketOptions struct {
	FormatOptions
	// SkipEmpty descarta los buckets sin entradas ni salidas.
	SkipEmpty bool
}

// BucketMovements agrupa los movimientos del rango en buckets consecutivos de la
// granularidad pedida. Los límites son semiabiertos: un movimiento justo en el inicio
// de un bucket pertenece sólo a ese bucket. Los movimientos fuera del rango se ignoran.
func BucketMovements(movements []entity.Movement, r Range, g Granularity, opts BucketOptions) []Bucket {
	buckets := []Bucket{}
	if !g.Valid() {
		return buckets
	}
	start, end, ok := r.Bounds(opts.Zone)
	if !ok {
		return buckets
	}
	l := opts.locale()

	for cur := g.floor(start); cur.Before(end); {
		nxt := g.next(cur)
		buckets = append(buckets, Bucket{Label: g.label(cur, l), Start: cur, End: nxt})
		cur = nxt
	}

	for _, m := range movements {
		if m.Timestamp.Before(start) || !m.Timestamp.Before(end) {
			continue
		}
		// primer bucket cuyo fin es posterior al instante
		i := sort.Search(len(buckets), func(i int) bool { return buckets[i].End.After(m.Timestamp) })
		if i == len(buckets) {
			continue
		}
		switch m.Kind {
		case entity.MovementKindInflow:
			buckets[i].Inflow += m.Quantity
		case entity.MovementKindOutflow:
			buckets[i].Outflow += m.Quantity
		}
	}

	if !opts.SkipEmpty {
		return buckets
	}
	out := buckets[:0]
	for _, b := range buckets {
		if b.Inflow != 0 || b.Outflow != 0 {
			out = append(out, b)
		}
	}
	return out
}
