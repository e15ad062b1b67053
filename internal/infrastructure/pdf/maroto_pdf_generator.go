// Package pdf genera los reportes descargables del EMS con Maroto v2.
//
// Layout común de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte   │  Periodo / fecha de emisión │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUJETO: empleado o alcance del reporte                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA                                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: conteos por estado / totales                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
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

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/ports"
	"github.com/jhoicas/ems-web/internal/application/validation"
)

var _ ports.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor("EMS", true).
		Build()
	return maroto.New(cfg)
}

// MonthlyLeaveReport reporte de permisos del mes en curso de un empleado.
func (g *MarotoReportGenerator) MonthlyLeaveReport(
	_ context.Context,
	employeeName string,
	info *dto.CurrentMonthInfoResponse,
) ([]byte, error) {
	if info == nil {
		return nil, fmt.Errorf("pdf: información del mes vacía")
	}
	name := nonEmpty(info.EmployeeName, employeeName)

	m := newDocument("Reporte mensual de permisos")
	m.AddRows(headerRow("REPORTE MENSUAL DE PERMISOS", nonEmpty(info.CurrentMonth, "-"), g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(subjectRow("EMPLEADO", nonEmpty(name, "-")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow([]column{
		{"Desde", 2, align.Center},
		{"Hasta", 2, align.Center},
		{"Días", 1, align.Center},
		{"Motivo", 5, align.Left},
		{"Estado", 2, align.Center},
	}))
	if len(info.LeaveRequests) == 0 {
		m.AddRows(emptyRow("Sin solicitudes de permiso este mes."))
	}
	counts := map[string]int{}
	totalDays := 0
	for _, l := range info.LeaveRequests {
		days := leaveDays(l.StartDate, l.EndDate)
		totalDays += days
		counts[l.Status]++
		m.AddRows(row.New(7).Add(
			cell(dateOnly(l.StartDate), 2, align.Center),
			cell(dateOnly(l.EndDate), 2, align.Center),
			cell(strconv.Itoa(days), 1, align.Center),
			cell(l.Reason, 5, align.Left),
			cell(nonEmpty(l.Status, dto.LeaveStatusPending), 2, align.Center),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow([][2]string{
		{"Aprobadas:", strconv.Itoa(counts[dto.LeaveStatusApproved])},
		{"Pendientes:", strconv.Itoa(counts[dto.LeaveStatusPending])},
		{"Rechazadas:", strconv.Itoa(counts[dto.LeaveStatusRejected])},
		{"Días solicitados:", strconv.Itoa(totalDays)},
	}))

	return generate(m)
}

// EmployeeRoster listado de empleados con saldo de permisos.
func (g *MarotoReportGenerator) EmployeeRoster(_ context.Context, employees []dto.EmployeeResponse) ([]byte, error) {
	m := newDocument("Listado de empleados")
	m.AddRows(headerRow("LISTADO DE EMPLEADOS", fmt.Sprintf("%d empleados", len(employees)), g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow([]column{
		{"ID", 1, align.Center},
		{"Nombre", 3, align.Left},
		{"Email", 3, align.Left},
		{"Departamento", 2, align.Left},
		{"Rol", 1, align.Center},
		{"Saldo", 1, align.Right},
		{"Activo", 1, align.Center},
	}))
	if len(employees) == 0 {
		m.AddRows(emptyRow("No hay empleados registrados."))
	}
	active := 0
	balance := decimal.Zero
	for _, e := range employees {
		if e.IsActive {
			active++
		}
		balance = balance.Add(e.LeaveBalance)
		m.AddRows(row.New(7).Add(
			cell(strconv.Itoa(e.EmployeeID), 1, align.Center),
			cell(e.FullName, 3, align.Left),
			cell(e.Email, 3, align.Left),
			cell(nonEmpty(e.DepartmentName(), "-"), 2, align.Left),
			cell(e.Role, 1, align.Center),
			cell(e.LeaveBalance.StringFixed(1), 1, align.Right),
			cell(yesNo(e.IsActive), 1, align.Center),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(summaryRow([][2]string{
		{"Activos:", strconv.Itoa(active)},
		{"Inactivos:", strconv.Itoa(len(employees) - active)},
		{"Saldo total (días):", balance.StringFixed(1)},
	}))

	return generate(m)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(title, period string, issued time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("EMS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(title, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(period, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New("Emitido: "+issued.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func subjectRow(label, value string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
		),
	)
}

type column struct {
	label string
	size  int
	align align.Type
}

// tableHeaderRow cabecera de tabla con texto blanco sobre fondo primario.
func tableHeaderRow(cols []column) core.Row {
	cs := make([]core.Col, 0, len(cols))
	for _, c := range cols {
		cs = append(cs, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cs...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func emptyRow(msg string) core.Row {
	return row.New(10).Add(col.New(12).Add(text.New(msg, props.Text{
		Size: 9, Align: align.Center, Color: colorGray, Top: 3,
	})))
}

// summaryRow bloque de totales alineado a la derecha.
func summaryRow(pairs [][2]string) core.Row {
	labels := make([]core.Component, 0, len(pairs))
	values := make([]core.Component, 0, len(pairs))
	for i, p := range pairs {
		top := float64(i) * 5
		labels = append(labels, text.New(p[0], props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: top,
		}))
		values = append(values, text.New(p[1], props.Text{
			Size: 9, Align: align.Right, Right: 1, Top: top,
		}))
	}
	return row.New(float64(len(pairs))*5+4).Add(
		col.New(6),
		col.New(4).Add(labels...),
		col.New(2).Add(values...),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

// dateOnly recorta "2024-03-01T00:00:00" a "2024-03-01".
func dateOnly(s string) string {
	if len(s) >= len(validation.DateLayout) {
		return s[:len(validation.DateLayout)]
	}
	return s
}

// leaveDays días calendario inclusivos entre dos fechas; 0 si alguna no se puede leer.
func leaveDays(start, end string) int {
	s, err1 := time.Parse(validation.DateLayout, dateOnly(start))
	e, err2 := time.Parse(validation.DateLayout, dateOnly(end))
	if err1 != nil || err2 != nil || e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
