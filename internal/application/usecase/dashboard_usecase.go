package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/ports"
)

var hundred = decimal.NewFromInt(100)

// DashboardUseCase KPIs y series de los gráficos del panel de administración.
type DashboardUseCase struct {
	gw ports.DashboardGateway
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(gw ports.DashboardGateway) *DashboardUseCase {
	return &DashboardUseCase{gw: gw}
}

// Summary obtiene el resumen y calcula las series de los widgets.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardView, error) {
	data, err := uc.gw.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return BuildDashboardView(*data), nil
}

// BuildDashboardView dona de estados de permisos (porcentaje sobre el total de
// solicitudes, 1 decimal) y barras de empleados por departamento.
func BuildDashboardView(data dto.DashboardResponse) *dto.DashboardView {
	total := data.TotalLeaveRequests
	if total == 0 {
		total = data.ApprovedLeaves + data.PendingLeaves + data.RejectedLeaves
	}

	view := &dto.DashboardView{DashboardResponse: data}
	for _, s := range []struct {
		label string
		value int
	}{
		{dto.LeaveStatusApproved, data.ApprovedLeaves},
		{dto.LeaveStatusPending, data.PendingLeaves},
		{dto.LeaveStatusRejected, data.RejectedLeaves},
	} {
		view.LeaveSlices = append(view.LeaveSlices, dto.ChartSlice{
			Label:   s.label,
			Value:   s.value,
			Percent: percent(s.value, total),
		})
	}

	view.DeptLabels = make([]string, 0, len(data.DepartmentStats))
	view.DeptCounts = make([]int, 0, len(data.DepartmentStats))
	for _, d := range data.DepartmentStats {
		view.DeptLabels = append(view.DeptLabels, d.Name)
		view.DeptCounts = append(view.DeptCounts, d.EmployeeCount)
	}

	if inactive := data.TotalEmployees - data.ActiveEmployees; inactive > 0 {
		view.InactiveEmps = inactive
	}
	return view
}

func percent(part, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(total))).Round(1)
}
