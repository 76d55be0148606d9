// Package analytics agrega movimientos y lotes de una organización en modelos de vista
// para el dashboard: series por período, snapshot de stock, trayectorias acumuladas,
// ranking de actividad y riesgo de vencimiento.
//
// Todas las funciones son puras: reciben slices inmutables y devuelven estructuras nuevas.
// Las fechas de calendario (rangos, fecha de vencimiento) se leen por sus componentes
// año/mes/día tal como vienen; la Zone decide qué instantes abarca cada día.
package analytics

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultOffsetSeconds desfase por defecto (UTC-05:00).
const DefaultOffsetSeconds = -5 * 60 * 60

// Zone política horaria única del agregador: un desfase fijo respecto de UTC.
// El valor cero equivale a UTC.
type Zone struct {
	offset int // segundos al este de UTC
	loc    *time.Location
}

// FixedZone construye la zona a partir de un desfase en segundos.
func FixedZone(offsetSeconds int) Zone {
	return Zone{offset: offsetSeconds, loc: time.FixedZone(offsetName(offsetSeconds), offsetSeconds)}
}

// DefaultZone zona usada cuando la configuración no indica otra.
func DefaultZone() Zone { return FixedZone(DefaultOffsetSeconds) }

// ParseZone interpreta "±HH:MM", "±HHMM", "±HH", "Z" o "UTC".
func ParseZone(s string) (Zone, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "Z") || strings.EqualFold(s, "UTC") {
		return FixedZone(0), nil
	}
	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return Zone{}, fmt.Errorf("analytics: desfase inválido %q (use ±HH:MM)", s)
	}
	body := strings.ReplaceAll(s[1:], ":", "")
	if len(body) != 2 && len(body) != 4 {
		return Zone{}, fmt.Errorf("analytics: desfase inválido %q (use ±HH:MM)", s)
	}
	hours, err := strconv.Atoi(body[:2])
	if err != nil {
		return Zone{}, fmt.Errorf("analytics: horas inválidas en %q: %w", s, err)
	}
	minutes := 0
	if len(body) == 4 {
		if minutes, err = strconv.Atoi(body[2:]); err != nil {
			return Zone{}, fmt.Errorf("analytics: minutos inválidos en %q: %w", s, err)
		}
	}
	if hours > 14 || minutes > 59 {
		return Zone{}, fmt.Errorf("analytics: desfase fuera de rango %q", s)
	}
	return FixedZone(sign * (hours*3600 + minutes*60)), nil
}

// Location devuelve la *time.Location equivalente.
func (z Zone) Location() *time.Location {
	if z.loc == nil {
		return time.UTC
	}
	return z.loc
}

// Offset desfase en segundos al este de UTC.
func (z Zone) Offset() int { return z.offset }

func (z Zone) String() string { return offsetName(z.offset) }

// Midnight devuelve las 00:00 de la fecha de calendario (y, m, d) en la zona.
func (z Zone) Midnight(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, z.Location())
}

// DayOf devuelve las 00:00 del día de calendario (en la zona) que contiene el instante t.
func (z Zone) DayOf(t time.Time) time.Time {
	y, m, d := t.In(z.Location()).Date()
	return z.Midnight(y, m, d)
}

// CalendarDay devuelve las 00:00 en la zona de la fecha de calendario de t, leyendo
// año/mes/día tal como vienen (sin convertir el instante).
func (z Zone) CalendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return z.Midnight(y, m, d)
}

// Today fecha de calendario actual en la zona (00:00).
func (z Zone) Today(now time.Time) time.Time { return z.DayOf(now) }

func offsetName(offset int) string {
	sign := '+'
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, offset/3600, (offset%3600)/60)
}

// civilDays número de días de calendario entre las fechas de a y b (b - a), sin efectos de DST.
func civilDays(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ua := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	ub := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(ub.Sub(ua).Hours() / 24)
}
