package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/ports"
	"github.com/jhoicas/ems-web/internal/application/validation"
	"github.com/jhoicas/ems-web/internal/domain"
)

// LeaveUseCase solicitudes de permiso y su aprobación.
type LeaveUseCase struct {
	gw ports.LeaveGateway
}

// NewLeaveUseCase construye el caso de uso.
func NewLeaveUseCase(gw ports.LeaveGateway) *LeaveUseCase {
	return &LeaveUseCase{gw: gw}
}

// Apply valida fechas y motivo antes de enviar; fin anterior a inicio no genera petición.
func (uc *LeaveUseCase) Apply(ctx context.Context, employeeID string, in dto.LeaveApplyForm) error {
	req, err := validation.LeaveApply(in, employeeID)
	if err != nil {
		return err
	}
	return uc.gw.Apply(ctx, req)
}

func (uc *LeaveUseCase) Get(ctx context.Context, id int) (*dto.LeaveRequestResponse, error) {
	return uc.gw.Get(ctx, id)
}

// Decide aprueba o rechaza la solicitud id. Devuelve el estado normalizado enviado.
func (uc *LeaveUseCase) Decide(ctx context.Context, id int, status string) (string, error) {
	req, err := validation.LeaveDecision(id, status)
	if err != nil {
		return "", err
	}
	if err := uc.gw.Decide(ctx, id, req); err != nil {
		return "", err
	}
	return req.Status, nil
}

// Mine permisos del usuario; sin identificador en la sesión no se puede consultar.
func (uc *LeaveUseCase) Mine(ctx context.Context, userID string) (*dto.MyLeavesResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: la sesión no identifica al empleado", domain.ErrUnauthorized)
	}
	return uc.gw.Mine(ctx, userID)
}

// PendingAll solicitudes pendientes de toda la organización (Admin).
func (uc *LeaveUseCase) PendingAll(ctx context.Context) ([]dto.LeaveRequestResponse, error) {
	return uc.gw.PendingAll(ctx)
}

// PendingTeam solicitudes pendientes del equipo del jefe (Manager).
func (uc *LeaveUseCase) PendingTeam(ctx context.Context) ([]dto.LeaveRequestResponse, error) {
	return uc.gw.PendingTeam(ctx)
}
