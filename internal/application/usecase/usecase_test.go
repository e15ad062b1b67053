package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/usecase"
	"github.com/jhoicas/ems-web/internal/domain"
)

var ctx = context.Background()

// ──────────────────────────────────────────────────────────────────────────────
// Validación antes de la llamada al backend
// ──────────────────────────────────────────────────────────────────────────────

func TestLeave_ApplyFinAnteriorNoEnviaPeticion(t *testing.T) {
	gw := &fakeLeaves{}
	uc := usecase.NewLeaveUseCase(gw)

	err := uc.Apply(ctx, "15", dto.LeaveApplyForm{StartDate: "2024-03-10", EndDate: "2024-03-01", Reason: "Viaje"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, gw.calls, "no debe emitirse ninguna petición")
}

func TestLeave_ApplyValidoEnviaEmpleado(t *testing.T) {
	gw := &fakeLeaves{}
	uc := usecase.NewLeaveUseCase(gw)

	require.NoError(t, uc.Apply(ctx, "15", dto.LeaveApplyForm{StartDate: "2024-03-01", EndDate: "2024-03-02", Reason: " Viaje "}))
	assert.Equal(t, 1, gw.calls)
	assert.Equal(t, "15", gw.lastApply.EmployeeID)
	assert.Equal(t, "Viaje", gw.lastApply.Reason)
}

func TestLeave_DecideNormalizaEstado(t *testing.T) {
	gw := &fakeLeaves{}
	uc := usecase.NewLeaveUseCase(gw)

	got, err := uc.Decide(ctx, 4, " Approved")
	require.NoError(t, err)
	assert.Equal(t, "approved", got)
	assert.Equal(t, dto.LeaveDecisionRequest{ID: 4, Status: "approved"}, gw.lastDecision)

	_, err = uc.Decide(ctx, 4, "maybe")
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 1, gw.calls)
}

func TestLeave_MineSinUsuario(t *testing.T) {
	gw := &fakeLeaves{}
	_, err := usecase.NewLeaveUseCase(gw).Mine(ctx, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, 0, gw.calls)
}

func TestEmployee_CreateInvalidoNoLlamaAlBackend(t *testing.T) {
	gw := &fakeEmployees{}
	uc := usecase.NewEmployeeUseCase(gw, &fakeReports{})

	err := uc.Create(ctx, dto.EmployeeForm{FullName: "Ana"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, gw.calls)
}

func TestEmployee_UpdateEnviaPayloadTipado(t *testing.T) {
	gw := &fakeEmployees{}
	uc := usecase.NewEmployeeUseCase(gw, &fakeReports{})

	err := uc.Update(ctx, 8, dto.EmployeeForm{
		FullName: "Ana", Email: "ana@ems.test", PhoneNumber: "3001234567",
		Role: "Manager", DepartmentID: "2", IsActive: "true", LeaveBalance: "10.5",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, gw.lastID)
	assert.Equal(t, 2, gw.lastCreate.DepartmentID)
	assert.Equal(t, "10.5", gw.lastCreate.LeaveBalance.String())
}

func TestEmployee_FiltroVacioUsaListado(t *testing.T) {
	gw := &fakeEmployees{}
	uc := usecase.NewEmployeeUseCase(gw, &fakeReports{})

	_, err := uc.Filter(ctx, dto.EmployeeFilter{})
	require.NoError(t, err)
	assert.Equal(t, 0, gw.filtered)

	_, err = uc.Filter(ctx, dto.EmployeeFilter{Role: "Admin"})
	require.NoError(t, err)
	assert.Equal(t, 1, gw.filtered)
}

func TestEmployee_Reportes(t *testing.T) {
	gw := &fakeEmployees{info: &dto.CurrentMonthInfoResponse{CurrentMonth: "Marzo"}}
	rep := &fakeReports{}
	uc := usecase.NewEmployeeUseCase(gw, rep)

	out, err := uc.MonthlyReportPDF(ctx, "Ana")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-monthly", string(out))

	_, err = uc.RosterPDF(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rep.monthly)
	assert.Equal(t, 1, rep.roster)
}

func TestEmployee_ReporteNoSeGeneraSiFallaElBackend(t *testing.T) {
	gw := &fakeEmployees{err: domain.ErrTransport}
	rep := &fakeReports{}
	_, err := usecase.NewEmployeeUseCase(gw, rep).MonthlyReportPDF(ctx, "Ana")
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Equal(t, 0, rep.monthly)
}

func TestDepartment_JefeSoloObligatorioAlEditar(t *testing.T) {
	gw := &fakeDepartments{}
	uc := usecase.NewDepartmentUseCase(gw, &fakeEmployees{})

	require.NoError(t, uc.Create(ctx, dto.DepartmentForm{DepartmentName: "TI"}))
	assert.Nil(t, gw.lastReq.ManagerID)

	err := uc.Update(ctx, 3, dto.DepartmentForm{DepartmentName: "TI"})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 1, gw.calls)

	require.NoError(t, uc.Update(ctx, 3, dto.DepartmentForm{DepartmentName: "TI", ManagerID: "5"}))
	require.NotNil(t, gw.lastReq.ManagerID)
	assert.Equal(t, 5, *gw.lastReq.ManagerID)
}

func TestAccount_LoginSinTokenEsError(t *testing.T) {
	gw := &fakeAccount{login: &dto.LoginResponse{}}
	_, err := usecase.NewAccountUseCase(gw).Login(ctx, dto.LoginForm{Email: "a@b.co", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrBackend)
}

func TestAccount_LoginInvalidoNoLlama(t *testing.T) {
	gw := &fakeAccount{}
	_, err := usecase.NewAccountUseCase(gw).Login(ctx, dto.LoginForm{Email: "  "})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, 0, gw.calls)
}

func TestAccount_ErrorDelBackendSePropaga(t *testing.T) {
	backendErr := errors.New("boom")
	gw := &fakeAccount{err: backendErr}
	err := usecase.NewAccountUseCase(gw).ChangePassword(ctx, dto.ChangePasswordForm{
		OldPassword: "a", NewPassword: "b", ConfirmPassword: "b",
	})
	assert.ErrorIs(t, err, backendErr)
	assert.Equal(t, 1, gw.calls)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actividad: formato de duración
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatSessionDuration(t *testing.T) {
	cases := []struct {
		duration, logout, want string
	}{
		{"", "", usecase.StillLoggedIn},
		{"", "2024-03-01T10:00:00", "N/A"},
		{"01:02:03", "", "01:02:03"},
		{"01:02:03.1234567", "", "01:02:03"},
		{"PT1H2M3S", "", "01:02:03"},
		{"PT45M", "", "00:45:00"},
		{"PT7.5S", "", "00:00:07"},
		{"2 días", "", "2 días"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, usecase.FormatSessionDuration(tc.duration, tc.logout), "duración %q", tc.duration)
	}
}

func TestActivity_LoginHistoryFormatea(t *testing.T) {
	logout := "2024-03-01T10:00:00"
	dur := "PT2H"
	gw := &fakeActivity{logs: []dto.LoginActivityLog{
		{Email: "a@b.co", LoginTime: "2024-03-01T08:00:00", LogoutTime: &logout, SessionDuration: &dur},
		{Email: "a@b.co", LoginTime: "2024-03-02T08:00:00"},
	}}

	rows, err := usecase.NewActivityUseCase(gw).LoginHistory(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "01/03/2024 08:00:00", rows[0].LoginTime)
	assert.Equal(t, "02:00:00", rows[0].Duration)
	assert.Equal(t, "N/A", rows[1].LogoutTime)
	assert.Equal(t, usecase.StillLoggedIn, rows[1].Duration)
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboard_PorcentajesYSeries(t *testing.T) {
	gw := &fakeDashboard{data: &dto.DashboardResponse{
		TotalEmployees: 10, ActiveEmployees: 8,
		ApprovedLeaves: 1, PendingLeaves: 1, RejectedLeaves: 1, TotalLeaveRequests: 3,
		DepartmentStats: []dto.DepartmentStatDTO{{Name: "TI", EmployeeCount: 5}, {Name: "RRHH", EmployeeCount: 3}},
	}}

	view, err := usecase.NewDashboardUseCase(gw).Summary(ctx)
	require.NoError(t, err)
	require.Len(t, view.LeaveSlices, 3)
	assert.Equal(t, "33.3", view.LeaveSlices[0].Percent.String())
	assert.Equal(t, dto.LeaveStatusApproved, view.LeaveSlices[0].Label)
	assert.Equal(t, []string{"TI", "RRHH"}, view.DeptLabels)
	assert.Equal(t, []int{5, 3}, view.DeptCounts)
	assert.Equal(t, 2, view.InactiveEmps)
}

func TestDashboard_SinSolicitudesPorcentajeCero(t *testing.T) {
	view := usecase.BuildDashboardView(dto.DashboardResponse{})
	for _, s := range view.LeaveSlices {
		assert.True(t, s.Percent.IsZero())
	}
}

func TestDashboard_ErrorSePropaga(t *testing.T) {
	_, err := usecase.NewDashboardUseCase(&fakeDashboard{err: domain.ErrTransport}).Summary(ctx)
	assert.ErrorIs(t, err, domain.ErrTransport)
}
