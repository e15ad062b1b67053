package usecase_test

import (
	"context"

	"github.com/jhoicas/ems-web/internal/application/dto"
)

// Fakes de los puertos: cuentan llamadas y devuelven lo configurado.

type fakeAccount struct {
	calls   int
	login   *dto.LoginResponse
	err     error
	lastReq interface{}
}

func (f *fakeAccount) Login(_ context.Context, in dto.LoginForm) (*dto.LoginResponse, error) {
	f.calls++
	f.lastReq = in
	return f.login, f.err
}
func (f *fakeAccount) Register(_ context.Context, in dto.RegisterForm) error {
	f.calls++
	f.lastReq = in
	return f.err
}
func (f *fakeAccount) ForgotPassword(_ context.Context, in dto.ForgotPasswordForm) error {
	f.calls++
	f.lastReq = in
	return f.err
}
func (f *fakeAccount) VerifyOTP(_ context.Context, in dto.VerifyOTPForm) error {
	f.calls++
	f.lastReq = in
	return f.err
}
func (f *fakeAccount) ResetPassword(_ context.Context, in dto.ResetPasswordForm) error {
	f.calls++
	f.lastReq = in
	return f.err
}
func (f *fakeAccount) ChangePassword(_ context.Context, in dto.ChangePasswordForm) error {
	f.calls++
	f.lastReq = in
	return f.err
}
func (f *fakeAccount) Logout(context.Context) error {
	f.calls++
	return f.err
}

type fakeEmployees struct {
	calls      int
	filtered   int
	list       []dto.EmployeeResponse
	info       *dto.CurrentMonthInfoResponse
	err        error
	lastCreate dto.EmployeeRequest
	lastID     int
}

func (f *fakeEmployees) List(context.Context) ([]dto.EmployeeResponse, error) {
	f.calls++
	return f.list, f.err
}
func (f *fakeEmployees) Get(_ context.Context, id int) (*dto.EmployeeResponse, error) {
	f.calls++
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return &dto.EmployeeResponse{EmployeeID: id}, nil
}
func (f *fakeEmployees) Create(_ context.Context, in dto.EmployeeRequest) error {
	f.calls++
	f.lastCreate = in
	return f.err
}
func (f *fakeEmployees) Update(_ context.Context, id int, in dto.EmployeeRequest) error {
	f.calls++
	f.lastID = id
	f.lastCreate = in
	return f.err
}
func (f *fakeEmployees) Delete(_ context.Context, id int) error {
	f.calls++
	f.lastID = id
	return f.err
}
func (f *fakeEmployees) Profile(context.Context) (*dto.EmployeeProfileResponse, error) {
	f.calls++
	return &dto.EmployeeProfileResponse{}, f.err
}
func (f *fakeEmployees) Managers(context.Context) ([]dto.EmployeeResponse, error) {
	f.calls++
	return f.list, f.err
}
func (f *fakeEmployees) Filter(context.Context, dto.EmployeeFilter) ([]dto.EmployeeResponse, error) {
	f.calls++
	f.filtered++
	return f.list, f.err
}
func (f *fakeEmployees) CurrentMonthInfo(context.Context) (*dto.CurrentMonthInfoResponse, error) {
	f.calls++
	return f.info, f.err
}
func (f *fakeEmployees) Roles(context.Context) ([]dto.RoleOption, error) {
	f.calls++
	return nil, f.err
}

type fakeDepartments struct {
	calls   int
	err     error
	lastReq dto.DepartmentRequest
}

func (f *fakeDepartments) List(context.Context) ([]dto.DepartmentResponse, error) {
	f.calls++
	return nil, f.err
}
func (f *fakeDepartments) Get(_ context.Context, id int) (*dto.DepartmentResponse, error) {
	f.calls++
	return &dto.DepartmentResponse{DepartmentID: id}, f.err
}
func (f *fakeDepartments) Create(_ context.Context, in dto.DepartmentRequest) error {
	f.calls++
	f.lastReq = in
	return f.err
}
func (f *fakeDepartments) Update(_ context.Context, _ int, in dto.DepartmentRequest) error {
	f.calls++
	f.lastReq = in
	return f.err
}
func (f *fakeDepartments) Delete(context.Context, int) error {
	f.calls++
	return f.err
}

type fakeLeaves struct {
	calls        int
	err          error
	lastApply    dto.LeaveApplyRequest
	lastDecision dto.LeaveDecisionRequest
}

func (f *fakeLeaves) Apply(_ context.Context, in dto.LeaveApplyRequest) error {
	f.calls++
	f.lastApply = in
	return f.err
}
func (f *fakeLeaves) Get(_ context.Context, id int) (*dto.LeaveRequestResponse, error) {
	f.calls++
	return &dto.LeaveRequestResponse{LeaveRequestID: id}, f.err
}
func (f *fakeLeaves) Decide(_ context.Context, _ int, in dto.LeaveDecisionRequest) error {
	f.calls++
	f.lastDecision = in
	return f.err
}
func (f *fakeLeaves) Mine(context.Context, string) (*dto.MyLeavesResponse, error) {
	f.calls++
	return &dto.MyLeavesResponse{}, f.err
}
func (f *fakeLeaves) PendingAll(context.Context) ([]dto.LeaveRequestResponse, error) {
	f.calls++
	return nil, f.err
}
func (f *fakeLeaves) PendingTeam(context.Context) ([]dto.LeaveRequestResponse, error) {
	f.calls++
	return nil, f.err
}

type fakeActivity struct {
	logs []dto.LoginActivityLog
	err  error
}

func (f *fakeActivity) Employees(context.Context) ([]dto.ActivityEmployeeResponse, error) {
	return nil, f.err
}
func (f *fakeActivity) LoginHistory(context.Context, string) ([]dto.LoginActivityLog, error) {
	return f.logs, f.err
}
func (f *fakeActivity) Recent(context.Context, string) ([]dto.UserActivityLog, error) {
	return nil, f.err
}

type fakeDashboard struct {
	data *dto.DashboardResponse
	err  error
}

func (f *fakeDashboard) Summary(context.Context) (*dto.DashboardResponse, error) {
	return f.data, f.err
}

type fakeReports struct {
	monthly int
	roster  int
}

func (f *fakeReports) MonthlyLeaveReport(context.Context, string, *dto.CurrentMonthInfoResponse) ([]byte, error) {
	f.monthly++
	return []byte("%PDF-monthly"), nil
}
func (f *fakeReports) EmployeeRoster(context.Context, []dto.EmployeeResponse) ([]byte, error) {
	f.roster++
	return []byte("%PDF-roster"), nil
}
