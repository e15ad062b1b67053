package usecase

import (
	"context"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/ports"
	"github.com/jhoicas/ems-web/internal/application/validation"
)

// DepartmentUseCase CRUD de departamentos.
type DepartmentUseCase struct {
	gw        ports.DepartmentGateway
	employees ports.EmployeeGateway
}

// NewDepartmentUseCase construye el caso de uso. employees se usa para el selector de jefe.
func NewDepartmentUseCase(gw ports.DepartmentGateway, employees ports.EmployeeGateway) *DepartmentUseCase {
	return &DepartmentUseCase{gw: gw, employees: employees}
}

func (uc *DepartmentUseCase) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	return uc.gw.List(ctx)
}

func (uc *DepartmentUseCase) Get(ctx context.Context, id int) (*dto.DepartmentResponse, error) {
	return uc.gw.Get(ctx, id)
}

// Managers candidatos a jefe de departamento.
func (uc *DepartmentUseCase) Managers(ctx context.Context) ([]dto.EmployeeResponse, error) {
	return uc.employees.Managers(ctx)
}

// Create el jefe es opcional al crear.
func (uc *DepartmentUseCase) Create(ctx context.Context, in dto.DepartmentForm) error {
	req, err := validation.Department(in, false)
	if err != nil {
		return err
	}
	return uc.gw.Create(ctx, req)
}

// Update el jefe es obligatorio al editar.
func (uc *DepartmentUseCase) Update(ctx context.Context, id int, in dto.DepartmentForm) error {
	req, err := validation.Department(in, true)
	if err != nil {
		return err
	}
	return uc.gw.Update(ctx, id, req)
}

func (uc *DepartmentUseCase) Delete(ctx context.Context, id int) error {
	return uc.gw.Delete(ctx, id)
}
