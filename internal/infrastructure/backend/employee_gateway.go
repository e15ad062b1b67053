package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/ports"
)

var _ ports.EmployeeGateway = (*EmployeeGateway)(nil)

// EmployeeGateway endpoints /employees/* y /roles.
type EmployeeGateway struct{ c *Client }

// NewEmployeeGateway construye el adaptador.
func NewEmployeeGateway(c *Client) *EmployeeGateway { return &EmployeeGateway{c: c} }

func (g *EmployeeGateway) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	var out []dto.EmployeeResponse
	err := g.c.do(ctx, http.MethodGet, "/employees", nil, nil, &out)
	return out, err
}

func (g *EmployeeGateway) Get(ctx context.Context, id int) (*dto.EmployeeResponse, error) {
	var out dto.EmployeeResponse
	if err := g.c.do(ctx, http.MethodGet, "/employees/edit/"+strconv.Itoa(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *EmployeeGateway) Create(ctx context.Context, in dto.EmployeeRequest) error {
	return g.c.do(ctx, http.MethodPost, "/employees/create", nil, in, nil)
}

func (g *EmployeeGateway) Update(ctx context.Context, id int, in dto.EmployeeRequest) error {
	in.EmployeeID = id
	return g.c.do(ctx, http.MethodPut, "/employees/edit/"+strconv.Itoa(id), nil, in, nil)
}

func (g *EmployeeGateway) Delete(ctx context.Context, id int) error {
	return g.c.do(ctx, http.MethodDelete, "/employees/delete/"+strconv.Itoa(id), nil, nil, nil)
}

func (g *EmployeeGateway) Profile(ctx context.Context) (*dto.EmployeeProfileResponse, error) {
	var out dto.EmployeeProfileResponse
	if err := g.c.do(ctx, http.MethodGet, "/employees/profile", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *EmployeeGateway) Managers(ctx context.Context) ([]dto.EmployeeResponse, error) {
	var out []dto.EmployeeResponse
	err := g.c.do(ctx, http.MethodGet, "/employees/managers", nil, nil, &out)
	return out, err
}

func (g *EmployeeGateway) Filter(ctx context.Context, f dto.EmployeeFilter) ([]dto.EmployeeResponse, error) {
	q := url.Values{}
	set := func(k, v string) {
		if v != "" {
			q.Set(k, v)
		}
	}
	set("departmentId", f.DepartmentID)
	set("role", f.Role)
	set("isActive", f.IsActive)
	set("search", f.Search)

	var out []dto.EmployeeResponse
	err := g.c.do(ctx, http.MethodGet, "/employees/filter", q, nil, &out)
	return out, err
}

func (g *EmployeeGateway) CurrentMonthInfo(ctx context.Context) (*dto.CurrentMonthInfoResponse, error) {
	var out dto.CurrentMonthInfoResponse
	if err := g.c.do(ctx, http.MethodGet, "/employees/current-month-info", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *EmployeeGateway) Roles(ctx context.Context) ([]dto.RoleOption, error) {
	var out []dto.RoleOption
	err := g.c.do(ctx, http.MethodGet, "/roles", nil, nil, &out)
	return out, err
}
