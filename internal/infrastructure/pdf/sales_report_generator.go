// Package pdf genera el reporte de ventas en efectivo del dashboard.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del sistema      │  Período + fecha emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALCANCE: Sucursal / Rol                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Concepto | Monto                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda del criterio de cálculo                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/container-sales-api/internal/application/dashboard"
	"github.com/jhoicas/container-sales-api/pkg/currency"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 235, Green: 241, Blue: 247}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ dashboard.ReportGenerator = (*SalesReportGenerator)(nil)

// SalesReportGenerator implementa dashboard.ReportGenerator usando Maroto v2.
type SalesReportGenerator struct {
	appName string
}

// NewSalesReportGenerator construye el generador. appName aparece en el encabezado.
func NewSalesReportGenerator(appName string) *SalesReportGenerator {
	return &SalesReportGenerator{appName: nonEmpty(appName, "Container Sales")}
}

// GenerateSalesReport genera el PDF y devuelve sus bytes.
func (g *SalesReportGenerator) GenerateSalesReport(_ context.Context, s *dashboard.Summary) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("pdf: resumen vacío")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Cash Sales Report", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(scopeRow(s))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(
		amountRow("Beginning balance (outstanding before period)", s.BeginningBalance, false),
		amountRow("Cash gross sales", s.GrossSales, true),
	)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(s.BeginningBalance.Add(s.GrossSales)))

	m.AddRows(line.NewRow(4))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(appName string, s *dashboard.Summary) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(appName, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("CASH SALES REPORT", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(s.Period.Label(), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 1,
			}),
			text.New("Generated: "+s.GeneratedAt.Format("January 2, 2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func scopeRow(s *dashboard.Summary) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SCOPE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Location: %s   |   Role: %s",
				locationLabel(s),
				nonEmpty(s.Scope.Role, "-"),
			), props.Text{Size: 9, Top: 6}),
		),
	)
}

func tableHeaderRow() core.Row {
	return row.New(8).Add(
		col.New(8).Add(text.New("Concept", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2, Left: 1,
		})),
		col.New(4).Add(text.New("Amount", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func amountRow(label string, amount decimal.Decimal, striped bool) core.Row {
	r := row.New(8).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 9, Top: 2, Left: 1})),
		col.New(4).Add(text.New(currency.FormatPHP(amount), props.Text{
			Size: 9, Align: align.Right, Top: 2, Right: 1,
		})),
	)
	if striped {
		r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	return r
}

func totalRow(total decimal.Decimal) core.Row {
	return row.New(10).Add(
		col.New(8).Add(text.New("TOTAL RECEIVABLE + SALES", props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 2, Left: 1,
		})),
		col.New(4).Add(text.New(currency.FormatPHP(total), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func footerRow() core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"Gross sales include Cash orders only, by order date. "+
				"Beginning balance sums BalanceAmount of all orders dated before the period.",
			props.Text{Size: 7, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func locationLabel(s *dashboard.Summary) string {
	if loc, ok := s.Scope.LocationClause(); ok {
		return loc
	}
	return "All locations"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
