package ports

import (
	"context"

	"github.com/jhoicas/ems-web/internal/application/dto"
)

// Puertos de salida hacia la API REST del EMS. El token bearer viaja en el
// contexto (ver backend.WithToken); cada llamada es un único intento sin reintentos.

// AccountGateway endpoints /account/*.
type AccountGateway interface {
	Login(ctx context.Context, in dto.LoginForm) (*dto.LoginResponse, error)
	Register(ctx context.Context, in dto.RegisterForm) error
	ForgotPassword(ctx context.Context, in dto.ForgotPasswordForm) error
	VerifyOTP(ctx context.Context, in dto.VerifyOTPForm) error
	ResetPassword(ctx context.Context, in dto.ResetPasswordForm) error
	ChangePassword(ctx context.Context, in dto.ChangePasswordForm) error
	Logout(ctx context.Context) error
}

// EmployeeGateway endpoints /employees/* y /roles.
type EmployeeGateway interface {
	List(ctx context.Context) ([]dto.EmployeeResponse, error)
	Get(ctx context.Context, id int) (*dto.EmployeeResponse, error)
	Create(ctx context.Context, in dto.EmployeeRequest) error
	Update(ctx context.Context, id int, in dto.EmployeeRequest) error
	Delete(ctx context.Context, id int) error
	Profile(ctx context.Context) (*dto.EmployeeProfileResponse, error)
	Managers(ctx context.Context) ([]dto.EmployeeResponse, error)
	Filter(ctx context.Context, f dto.EmployeeFilter) ([]dto.EmployeeResponse, error)
	CurrentMonthInfo(ctx context.Context) (*dto.CurrentMonthInfoResponse, error)
	Roles(ctx context.Context) ([]dto.RoleOption, error)
}

// DepartmentGateway endpoints /department/*.
type DepartmentGateway interface {
	List(ctx context.Context) ([]dto.DepartmentResponse, error)
	Get(ctx context.Context, id int) (*dto.DepartmentResponse, error)
	Create(ctx context.Context, in dto.DepartmentRequest) error
	Update(ctx context.Context, id int, in dto.DepartmentRequest) error
	Delete(ctx context.Context, id int) error
}

// LeaveGateway endpoints /leave/*.
type LeaveGateway interface {
	Apply(ctx context.Context, in dto.LeaveApplyRequest) error
	Get(ctx context.Context, id int) (*dto.LeaveRequestResponse, error)
	Decide(ctx context.Context, id int, in dto.LeaveDecisionRequest) error
	Mine(ctx context.Context, userID string) (*dto.MyLeavesResponse, error)
	PendingAll(ctx context.Context) ([]dto.LeaveRequestResponse, error)
	PendingTeam(ctx context.Context) ([]dto.LeaveRequestResponse, error)
}

// ManagerGateway endpoints /manager/*.
type ManagerGateway interface {
	Profile(ctx context.Context) (*dto.EmployeeProfileResponse, error)
	Subordinates(ctx context.Context) ([]dto.EmployeeResponse, error)
}

// ActivityGateway endpoints /activity/*.
type ActivityGateway interface {
	Employees(ctx context.Context) ([]dto.ActivityEmployeeResponse, error)
	LoginHistory(ctx context.Context, userID string) ([]dto.LoginActivityLog, error)
	Recent(ctx context.Context, userID string) ([]dto.UserActivityLog, error)
}

// DashboardGateway endpoint /dashboard/Index.
type DashboardGateway interface {
	Summary(ctx context.Context) (*dto.DashboardResponse, error)
}
