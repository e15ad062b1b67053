package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/ports"
)

var _ ports.DashboardGateway = (*DashboardGateway)(nil)

// DashboardGateway endpoint /dashboard/Index.
type DashboardGateway struct{ c *Client }

// NewDashboardGateway construye el adaptador.
func NewDashboardGateway(c *Client) *DashboardGateway { return &DashboardGateway{c: c} }

func (g *DashboardGateway) Summary(ctx context.Context) (*dto.DashboardResponse, error) {
	var out dto.DashboardResponse
	if err := g.c.do(ctx, http.MethodGet, "/dashboard/Index", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
