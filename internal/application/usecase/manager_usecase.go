package usecase

import (
	"context"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/ports"
)

// ManagerUseCase perfil del jefe y su equipo.
type ManagerUseCase struct {
	gw ports.ManagerGateway
}

// NewManagerUseCase construye el caso de uso.
func NewManagerUseCase(gw ports.ManagerGateway) *ManagerUseCase {
	return &ManagerUseCase{gw: gw}
}

func (uc *ManagerUseCase) Profile(ctx context.Context) (*dto.EmployeeProfileResponse, error) {
	return uc.gw.Profile(ctx)
}

func (uc *ManagerUseCase) Subordinates(ctx context.Context) ([]dto.EmployeeResponse, error) {
	return uc.gw.Subordinates(ctx)
}
