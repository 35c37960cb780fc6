// Package pdf implementa la exportación del reporte general de materiales
// (entradas vs. uso en la ventana consultada) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  Ventana + Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Material | Unidad | Entradas | Uso | Balance        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Σ Entradas / Σ Uso / Σ Balance                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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
	"github.com/shopspring/decimal"

	"github.com/Gitram007/pre-deployment--v2/internal/application/dto"
	appreports "github.com/Gitram007/pre-deployment--v2/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Etiquetas legibles por frecuencia.
var windowLabels = map[string]string{
	appreports.FrequencyDaily:   "Últimas 24 horas",
	appreports.FrequencyWeekly:  "Últimos 7 días",
	appreports.FrequencyMonthly: "Últimos 30 días",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// OverallReportPDF genera el PDF del reporte general y devuelve sus bytes.
func (g *MarotoReportGenerator) OverallReportPDF(
	_ context.Context,
	companyName, frequency string,
	rows []dto.OverallReportRowDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte general de materiales", true).
		WithAuthor(companyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName, frequency, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableDetailRow(r))
	}
	if len(rows) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos en la ventana consultada", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: empresa (izq), ventana y fecha de generación (der).
func headerRow(companyName, frequency string, generatedAt time.Time) core.Row {
	label, ok := windowLabels[frequency]
	if !ok {
		label = frequency
	}
	return row.New(16).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte general de materiales", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 2,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, a align.Type) core.Col {
		return col.New(2).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		col.New(4).Add(text.New("Material", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		})),
		col.New(2).Add(text.New("Unidad", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		})),
		header("Entradas", align.Right),
		header("Uso", align.Right),
		header("Balance", align.Right),
	)
}

func tableDetailRow(r dto.OverallReportRowDTO) core.Row {
	cell := func(v decimal.Decimal) core.Col {
		return col.New(2).Add(text.New(v.String(), props.Text{
			Size: 8, Align: align.Right, Top: 1,
		}))
	}
	return row.New(6).Add(
		col.New(4).Add(text.New(r.MaterialName, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(r.Unit, props.Text{Size: 8, Top: 1, Color: colorGray})),
		cell(r.Inward),
		cell(r.Usage),
		cell(r.Balance),
	)
}

func totalsRow(rows []dto.OverallReportRowDTO) core.Row {
	totalInward, totalUsage := decimal.Zero, decimal.Zero
	for _, r := range rows {
		totalInward = totalInward.Add(r.Inward)
		totalUsage = totalUsage.Add(r.Usage)
	}
	totalBalance := totalInward.Sub(totalUsage)

	cell := func(v decimal.Decimal) core.Col {
		return col.New(2).Add(text.New(v.String(), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1,
		}))
	}
	return row.New(8).Add(
		col.New(6).Add(text.New("TOTALES", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
		})),
		cell(totalInward),
		cell(totalUsage),
		cell(totalBalance),
	)
}
