package ports

import (
	"context"

	"github.com/jhoicas/ems-web/internal/application/dto"
)

// ReportGenerator genera los reportes descargables en PDF.
type ReportGenerator interface {
	MonthlyLeaveReport(ctx context.Context, employeeName string, info *dto.CurrentMonthInfoResponse) ([]byte, error)
	EmployeeRoster(ctx context.Context, employees []dto.EmployeeResponse) ([]byte, error)
}
