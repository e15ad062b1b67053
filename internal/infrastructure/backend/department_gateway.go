package backend

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/ports"
)

var _ ports.DepartmentGateway = (*DepartmentGateway)(nil)

// DepartmentGateway endpoints /department/*.
type DepartmentGateway struct{ c *Client }

// NewDepartmentGateway construye el adaptador.
func NewDepartmentGateway(c *Client) *DepartmentGateway { return &DepartmentGateway{c: c} }

func (g *DepartmentGateway) List(ctx context.Context) ([]dto.DepartmentResponse, error) {
	var out []dto.DepartmentResponse
	err := g.c.do(ctx, http.MethodGet, "/department", nil, nil, &out)
	return out, err
}

func (g *DepartmentGateway) Get(ctx context.Context, id int) (*dto.DepartmentResponse, error) {
	var out dto.DepartmentResponse
	if err := g.c.do(ctx, http.MethodGet, "/department/edit/"+strconv.Itoa(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *DepartmentGateway) Create(ctx context.Context, in dto.DepartmentRequest) error {
	return g.c.do(ctx, http.MethodPost, "/department/create", nil, in, nil)
}

func (g *DepartmentGateway) Update(ctx context.Context, id int, in dto.DepartmentRequest) error {
	in.DepartmentID = id
	return g.c.do(ctx, http.MethodPut, "/department/edit/"+strconv.Itoa(id), nil, in, nil)
}

func (g *DepartmentGateway) Delete(ctx context.Context, id int) error {
	return g.c.do(ctx, http.MethodDelete, "/department/delete/"+strconv.Itoa(id), nil, nil, nil)
}
