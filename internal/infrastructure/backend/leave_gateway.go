package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/ports"
)

var _ ports.LeaveGateway = (*LeaveGateway)(nil)

// LeaveGateway endpoints /leave/*.
type LeaveGateway struct{ c *Client }

// NewLeaveGateway construye el adaptador.
func NewLeaveGateway(c *Client) *LeaveGateway { return &LeaveGateway{c: c} }

func (g *LeaveGateway) Apply(ctx context.Context, in dto.LeaveApplyRequest) error {
	return g.c.do(ctx, http.MethodPost, "/leave/apply", nil, in, nil)
}

func (g *LeaveGateway) Get(ctx context.Context, id int) (*dto.LeaveRequestResponse, error) {
	var out dto.LeaveRequestResponse
	if err := g.c.do(ctx, http.MethodGet, "/leave/"+strconv.Itoa(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *LeaveGateway) Decide(ctx context.Context, id int, in dto.LeaveDecisionRequest) error {
	return g.c.do(ctx, http.MethodPost, "/leave/approved/"+strconv.Itoa(id), nil, in, nil)
}

func (g *LeaveGateway) Mine(ctx context.Context, userID string) (*dto.MyLeavesResponse, error) {
	var out dto.MyLeavesResponse
	if err := g.c.do(ctx, http.MethodGet, "/leave/my/"+url.PathEscape(userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *LeaveGateway) PendingAll(ctx context.Context) ([]dto.LeaveRequestResponse, error) {
	var out []dto.LeaveRequestResponse
	err := g.c.do(ctx, http.MethodGet, "/leave/approvelist", nil, nil, &out)
	return out, err
}

func (g *LeaveGateway) PendingTeam(ctx context.Context) ([]dto.LeaveRequestResponse, error) {
	var out []dto.LeaveRequestResponse
	err := g.c.do(ctx, http.MethodGet, "/leave/employeeleavelist", nil, nil, &out)
	return out, err
}
