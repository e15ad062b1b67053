package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/ports"
)

var _ ports.ActivityGateway = (*ActivityGateway)(nil)

// ActivityGateway endpoints /activity/*.
type ActivityGateway struct{ c *Client }

// NewActivityGateway construye el adaptador.
func NewActivityGateway(c *Client) *ActivityGateway { return &ActivityGateway{c: c} }

func (g *ActivityGateway) Employees(ctx context.Context) ([]dto.ActivityEmployeeResponse, error) {
	var out []dto.ActivityEmployeeResponse
	err := g.c.do(ctx, http.MethodGet, "/activity/employees", nil, nil, &out)
	return out, err
}

func (g *ActivityGateway) LoginHistory(ctx context.Context, userID string) ([]dto.LoginActivityLog, error) {
	var out dto.LoginHistoryResponse
	if err := g.c.do(ctx, http.MethodGet, "/activity/login-history/"+url.PathEscape(userID), nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Logs, nil
}

func (g *ActivityGateway) Recent(ctx context.Context, userID string) ([]dto.UserActivityLog, error) {
	path := "/activity/recentactivity"
	if userID != "" {
		path += "/" + url.PathEscape(userID)
	}
	var out []dto.UserActivityLog
	err := g.c.do(ctx, http.MethodGet, path, nil, nil, &out)
	return out, err
}
