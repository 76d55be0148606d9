// Package pdf genera el reporte de lotes próximos a vencer.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Organización        │  Reporte + Fecha de corte    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Críticos / Próximos / Vencidos                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Lote | Cant | Vence | Días | Nivel        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/dto"
	"github.com/fonceappsupa-gif/cold-stock-blue/internal/application/ports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorCritical = &props.Color{Red: 190, Green: 30, Blue: 45}
	colorNearTerm = &props.Color{Red: 200, Green: 120, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ExpiryReportRenderer usando Maroto v2.
type MarotoReportGenerator struct{}

var _ ports.ExpiryReportRenderer = (*MarotoReportGenerator)(nil)

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// RenderExpiryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) RenderExpiryReport(organizationName string, generatedAt time.Time, report *dto.ExpiryRiskDTO) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lotes próximos a vencer", true).
		WithAuthor(nonEmpty(organizationName, "Cold Stock"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(organizationName, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(report.Items) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin lotes en la ventana de vencimiento.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for _, r := range tableDetailRows(report.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(organizationName string, generatedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(organizationName, "-"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Cold Stock - inventario refrigerado", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("LOTES PRÓXIMOS A VENCER", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Corte: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: contadores del reporte.
func summaryRow(report *dto.ExpiryRiskDTO) core.Row {
	box := func(label string, value int, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(strconv.Itoa(value), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Color: c, Top: 5,
			}),
		)
	}
	return row.New(16).Add(
		box("Críticos", report.CriticalCount, colorCritical),
		box("Próximos a vencer", report.NearTermCount, colorNearTerm),
		box("Vencidos", report.ExpiredCount, colorGray),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Lote", 2, align.Left),
		h("Cant.", 1, align.Right),
		h("Vence", 2, align.Center),
		h("Días", 1, align.Center),
		h("Nivel", 2, align.Center),
	)
}

func tableDetailRows(items []dto.ExpiryItemDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		levelColor, levelLabel := colorNearTerm, "Próximo"
		if it.Level == "critical" {
			levelColor, levelLabel = colorCritical, "Crítico"
		}
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(nonEmpty(it.ProductName, "-"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(shortID(it.LotID), props.Text{Size: 7, Top: 1.5, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(formatThousands(it.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(formatDate(it.ExpirationDate), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(strconv.Itoa(it.DaysUntilExpiry), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(levelLabel, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: levelColor,
			})),
		))
	}
	return result
}

func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Días calculados por fecha de calendario en la zona horaria configurada. "+
				"Los lotes vencidos se cuentan pero no se listan.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatThousands inserta puntos de miles: 25000 → "25.000".
func formatThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if n < 0 {
		neg, s = true, s[1:]
	}
	l := len(s)
	if l <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	buf := make([]byte, 0, l+l/3+1)
	if neg {
		buf = append(buf, '-')
	}
	for i, c := range []byte(s) {
		if i > 0 && (l-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

// formatDate YYYY-MM-DD → DD/MM/YYYY; deja el valor tal cual si no parsea.
func formatDate(s string) string {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return d.Format("02/01/2006")
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
