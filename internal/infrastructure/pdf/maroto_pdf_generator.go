// Package pdf genera la constancia de bienes patrimoniales asignados a un agente.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título de la constancia   │  Fecha de emisión      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  AGENTE: Apellido, Nombre / Legajo / Departamento           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: N° Patrimonio | Artículo | Asignado | Estado        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL de bienes                                            │
//	│  FIRMAS: Agente │ Responsable de patrimonio                 │
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

	"github.com/jhoicas/gestion-patrimonial/internal/application/report"
	"github.com/jhoicas/gestion-patrimonial/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.CertificateGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa report.CertificateGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	organization string
}

// NewMarotoPDFGenerator construye el generador. organization aparece como autor y en el encabezado.
func NewMarotoPDFGenerator(organization string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{organization: organization}
}

// GenerateAssignmentPDF genera la constancia y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateAssignmentPDF(
	_ context.Context,
	agent *entity.Agent,
	items []*entity.PatrimonyView,
	issuedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Constancia de asignación de bienes", true).
		WithAuthor(g.organization, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.organization, issuedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(agentRow(agent))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(items) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("El agente no tiene bienes asignados.", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}
	for _, r := range tableDetailRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(len(items)))
	m.AddRows(row.New(20))
	m.AddRows(signatureRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(organization string, issuedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(8).Add(
			text.New("CONSTANCIA DE ASIGNACIÓN DE BIENES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(organization, "Gestión Patrimonial"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Fecha de emisión", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(issuedAt.Format("02/01/2006"), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
		),
	)
}

func agentRow(agent *entity.Agent) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("AGENTE RESPONSABLE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(agent.FullName(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Legajo: %s   |   Departamento: %s",
				nonEmpty(agent.EmployeeID, "—"),
				nonEmpty(agent.Department, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("N° Patrimonio", 3, align.Left),
		h("Artículo", 5, align.Left),
		h("Asignado", 2, align.Center),
		h("Estado", 2, align.Center),
	)
}

func tableDetailRows(items []*entity.PatrimonyView) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(it.Number, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(5).Add(text.New(nonEmpty(it.ArticleName, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(formatDate(it.AssignedOn), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(nonEmpty(it.Status, "—"), props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

func totalRow(n int) core.Row {
	return row.New(8).Add(
		col.New(8),
		col.New(4).Add(text.New(fmt.Sprintf("Total de bienes: %d", n), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

func signatureRows() []core.Row {
	sign := func(label string) core.Col {
		return col.New(5).Add(
			line.New(props.Line{Color: colorGray, Thickness: 0.3}),
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 2, Color: colorGray}),
		)
	}
	return []core.Row{
		row.New(10).Add(sign("Firma del agente"), col.New(2), sign("Responsable de patrimonio")),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatDate pasa YYYY-MM-DD a DD/MM/YYYY; otros valores se muestran tal cual.
func formatDate(s string) string {
	if s == "" {
		return "—"
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return d.Format("02/01/2006")
}
