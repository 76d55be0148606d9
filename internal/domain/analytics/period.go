package analytics

import (
	"fmt"
	"strings"
	"time"
)

// Range rango de fechas de calendario [From, To], inclusivo en ambos extremos.
type Range struct {
	From time.Time
	To   time.Time
}

// NewRange construye un rango a partir de dos fechas de calendario.
func NewRange(from, to time.Time) Range { return Range{From: from, To: to} }

// Bounds normaliza el rango al intervalo semiabierto [From 00:00, (To+1) 00:00) en la zona.
// ok es false si From es posterior a To.
func (r Range) Bounds(z Zone) (start, end time.Time, ok bool) {
	start = z.CalendarDay(r.From)
	end = z.CalendarDay(r.To).AddDate(0, 0, 1)
	if !start.Before(end) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// Contains informa si el instante t cae dentro del rango (evaluado en la zona).
func (r Range) Contains(z Zone, t time.Time) bool {
	start, end, ok := r.Bounds(z)
	if !ok {
		return false
	}
	return !t.Before(start) && t.Before(end)
}

// Granularity ancho del bucket temporal.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// ParseGranularity valida el valor recibido por query string. Vacío = month.
func ParseGranularity(s string) (Granularity, error) {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(s))); g {
	case "":
		return GranularityMonth, nil
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityYear:
		return g, nil
	default:
		return "", fmt.Errorf("analytics: granularidad inválida %q (day|week|month|year)", s)
	}
}

// Valid informa si g es una de las cuatro granularidades soportadas.
func (g Granularity) Valid() bool {
	switch g {
	case GranularityDay, GranularityWeek, GranularityMonth, GranularityYear:
		return true
	}
	return false
}

// floor devuelve el inicio del bucket que contiene t (t ya expresado en la zona).
// Las semanas empiezan en lunes.
func (g Granularity) floor(t time.Time) time.Time {
	y, m, d := t.Date()
	loc := t.Location()
	switch g {
	case GranularityWeek:
		back := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-back, 0, 0, 0, 0, loc)
	case GranularityMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case GranularityYear:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	}
}

// next devuelve el inicio del bucket siguiente a start (start debe ser un inicio de bucket).
func (g Granularity) next(start time.Time) time.Time {
	switch g {
	case GranularityWeek:
		return start.AddDate(0, 0, 7)
	case GranularityMonth:
		return start.AddDate(0, 1, 0)
	case GranularityYear:
		return start.AddDate(1, 0, 0)
	default:
		return start.AddDate(0, 0, 1)
	}
}

// label etiqueta legible del bucket que empieza en start.
func (g Granularity) label(start time.Time, l *Locale) string {
	switch g {
	case GranularityWeek:
		_, w := start.ISOWeek()
		return fmt.Sprintf("%s %d", l.WeekPrefix, w)
	case GranularityMonth:
		return fmt.Sprintf("%s %d", l.Months[start.Month()-1], start.Year())
	case GranularityYear:
		return fmt.Sprintf("%d", start.Year())
	default:
		return dayLabel(start, l)
	}
}

// dayLabel formato "dd MMM".
func dayLabel(t time.Time, l *Locale) string {
	return fmt.Sprintf("%02d %s", t.Day(), l.Months[t.Month()-1])
}
