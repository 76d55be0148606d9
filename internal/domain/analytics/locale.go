package analytics

import "strings"

// Locale textos usados en etiquetas y placeholders.
type Locale struct {
	Tag            string
	Months         [12]string // abreviaturas, enero primero
	WeekPrefix     string
	UnknownProduct string
}

var (
	// LocaleES etiquetas en español ("05 ene", "Sem 3", "ene 2025").
	LocaleES = &Locale{
		Tag:            "es",
		Months:         [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		WeekPrefix:     "Sem",
		UnknownProduct: "Producto desconocido",
	}
	// LocaleEN etiquetas en inglés ("05 Jan", "Week 3", "Jan 2025").
	LocaleEN = &Locale{
		Tag:            "en",
		Months:         [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		WeekPrefix:     "Week",
		UnknownProduct: "Unknown product",
	}
)

// LocaleFor devuelve el locale para un tag BCP 47 ("es", "es-CO", "en-US"...). Por defecto inglés.
func LocaleFor(tag string) *Locale {
	base := strings.ToLower(tag)
	if i := strings.IndexAny(base, "-_"); i >= 0 {
		base = base[:i]
	}
	if base == "es" {
		return LocaleES
	}
	return LocaleEN
}

func localeOrDefault(l *Locale) *Locale {
	if l == nil {
		return LocaleEN
	}
	return l
}

// FormatOptions parámetros de presentación comunes a todas las agregaciones.
type FormatOptions struct {
	Zone   Zone
	Locale *Locale
}

func (o FormatOptions) locale() *Locale { return localeOrDefault(o.Locale) }
