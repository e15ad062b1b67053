package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/ports"
)

var _ ports.ManagerGateway = (*ManagerGateway)(nil)

// ManagerGateway endpoints /manager/*.
type ManagerGateway struct{ c *Client }

// NewManagerGateway construye el adaptador.
func NewManagerGateway(c *Client) *ManagerGateway { return &ManagerGateway{c: c} }

func (g *ManagerGateway) Profile(ctx context.Context) (*dto.EmployeeProfileResponse, error) {
	var out dto.EmployeeProfileResponse
	if err := g.c.do(ctx, http.MethodGet, "/manager/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *ManagerGateway) Subordinates(ctx context.Context) ([]dto.EmployeeResponse, error) {
	var out []dto.EmployeeResponse
	err := g.c.do(ctx, http.MethodGet, "/manager/subordinates", nil, nil, &out)
	return out, err
}
