package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/ports"
	"github.com/jhoicas/ems-web/internal/application/validation"
)

// EmployeeUseCase CRUD de empleados, perfil propio y reportes.
type EmployeeUseCase struct {
	gw      ports.EmployeeGateway
	reports ports.ReportGenerator
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(gw ports.EmployeeGateway, reports ports.ReportGenerator) *EmployeeUseCase {
	return &EmployeeUseCase{gw: gw, reports: reports}
}

func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	return uc.gw.List(ctx)
}

func (uc *EmployeeUseCase) Get(ctx context.Context, id int) (*dto.EmployeeResponse, error) {
	return uc.gw.Get(ctx, id)
}

// Create valida el formulario y crea el empleado. Si la validación falla no hay llamada.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeForm) error {
	req, err := validation.Employee(in)
	if err != nil {
		return err
	}
	return uc.gw.Create(ctx, req)
}

// Update valida el formulario y actualiza el empleado id.
func (uc *EmployeeUseCase) Update(ctx context.Context, id int, in dto.EmployeeForm) error {
	req, err := validation.Employee(in)
	if err != nil {
		return err
	}
	return uc.gw.Update(ctx, id, req)
}

func (uc *EmployeeUseCase) Delete(ctx context.Context, id int) error {
	return uc.gw.Delete(ctx, id)
}

func (uc *EmployeeUseCase) Profile(ctx context.Context) (*dto.EmployeeProfileResponse, error) {
	return uc.gw.Profile(ctx)
}

func (uc *EmployeeUseCase) Managers(ctx context.Context) ([]dto.EmployeeResponse, error) {
	return uc.gw.Managers(ctx)
}

// Filter sin criterios devuelve el listado completo.
func (uc *EmployeeUseCase) Filter(ctx context.Context, f dto.EmployeeFilter) ([]dto.EmployeeResponse, error) {
	if f.IsEmpty() {
		return uc.gw.List(ctx)
	}
	return uc.gw.Filter(ctx, f)
}

func (uc *EmployeeUseCase) CurrentMonthInfo(ctx context.Context) (*dto.CurrentMonthInfoResponse, error) {
	return uc.gw.CurrentMonthInfo(ctx)
}

func (uc *EmployeeUseCase) Roles(ctx context.Context) ([]dto.RoleOption, error) {
	return uc.gw.Roles(ctx)
}

// MonthlyReportPDF reporte del mes en curso del usuario logueado.
func (uc *EmployeeUseCase) MonthlyReportPDF(ctx context.Context, employeeName string) ([]byte, error) {
	info, err := uc.gw.CurrentMonthInfo(ctx)
	if err != nil {
		return nil, err
	}
	out, err := uc.reports.MonthlyLeaveReport(ctx, employeeName, info)
	if err != nil {
		return nil, fmt.Errorf("reporte mensual: %w", err)
	}
	return out, nil
}

// RosterPDF listado completo de empleados en PDF.
func (uc *EmployeeUseCase) RosterPDF(ctx context.Context) ([]byte, error) {
	list, err := uc.gw.List(ctx)
	if err != nil {
		return nil, err
	}
	out, err := uc.reports.EmployeeRoster(ctx, list)
	if err != nil {
		return nil, fmt.Errorf("listado de empleados: %w", err)
	}
	return out, nil
}
