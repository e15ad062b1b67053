package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/usecase"
	"github.com/jhoicas/ems-web/internal/infrastructure/cookie"
)

const departmentListPath = "/department"

// DepartmentHandler páginas de departamentos.
type DepartmentHandler struct {
	*Pages
	uc *usecase.DepartmentUseCase
}

// NewDepartmentHandler construye el handler.
func NewDepartmentHandler(p *Pages, uc *usecase.DepartmentUseCase) *DepartmentHandler {
	return &DepartmentHandler{Pages: p, uc: uc}
}

type departmentForm struct {
	ID       int
	Action   string
	Managers []dto.EmployeeResponse
	Edit     bool
}

// List GET /department.
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	list, err := h.uc.List(ctx)
	return h.readPage(c, "department/list", "Departamentos", list, err, "No se pudieron cargar los departamentos")
}

func newDepartmentForm(id int) departmentForm {
	fd := departmentForm{ID: id, Action: "/department/create", Edit: id > 0}
	if id > 0 {
		fd.Action = fmt.Sprintf("/department/edit/%d", id)
	}
	return fd
}

// formData carga el selector de jefes; un fallo lo deja vacío.
func (h *DepartmentHandler) formData(c *fiber.Ctx, id int) departmentForm {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	fd := newDepartmentForm(id)
	managers, err := h.uc.Managers(ctx)
	if err != nil {
		h.log.Warn().Err(err).Msg("jefes para el formulario")
	}
	fd.Managers = managers
	return fd
}

// postedFormData jefes recuperados del propio envío; no llama al backend.
func (h *DepartmentHandler) postedFormData(c *fiber.Ctx, id int) departmentForm {
	fd := newDepartmentForm(id)
	fd.Managers = postedManagers(c)
	return fd
}

// CreatePage GET /department/create.
func (h *DepartmentHandler) CreatePage(c *fiber.Ctx) error {
	vd := &ViewData{Form: dto.DepartmentForm{}, Data: h.formData(c, 0)}
	return h.render(c, fiber.StatusOK, "department/form", "Nuevo departamento", vd)
}

// Create POST /department/create.
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var form dto.DepartmentForm
	_ = c.BodyParser(&form)
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	if err := h.uc.Create(ctx, form); err != nil {
		vd := &ViewData{Form: form, Data: h.postedFormData(c, 0)}
		return h.formFailed(c, "department/form", "Nuevo departamento", vd, err, "No se pudo crear el departamento")
	}
	return h.redirect(c, departmentListPath, cookie.FlashSuccess, "Departamento creado")
}

// EditPage GET /department/edit/:id.
func (h *DepartmentHandler) EditPage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	d, err := h.uc.Get(ctx, id)
	if err != nil {
		return h.readFailed(c, err, departmentListPath, "No se pudo cargar el departamento")
	}
	vd := &ViewData{Form: d.Form(), Data: h.formData(c, id)}
	return h.render(c, fiber.StatusOK, "department/form", "Editar departamento", vd)
}

// Edit POST /department/edit/:id; el backend recibe un PUT.
func (h *DepartmentHandler) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	var form dto.DepartmentForm
	_ = c.BodyParser(&form)
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	if err := h.uc.Update(ctx, id, form); err != nil {
		vd := &ViewData{Form: form, Data: h.postedFormData(c, id)}
		return h.formFailed(c, "department/form", "Editar departamento", vd, err, "No se pudo actualizar el departamento")
	}
	return h.redirect(c, departmentListPath, cookie.FlashSuccess, "Departamento actualizado")
}

// DeletePage GET /department/delete/:id: confirmación.
func (h *DepartmentHandler) DeletePage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	d, err := h.uc.Get(ctx, id)
	if err != nil {
		return h.readFailed(c, err, departmentListPath, "No se pudo cargar el departamento")
	}
	return h.render(c, fiber.StatusOK, "department/delete", "Eliminar departamento", &ViewData{Data: d})
}

// Delete POST /department/delete/:id.
func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	if err := h.uc.Delete(ctx, id); err != nil {
		vd := &ViewData{Data: &dto.DepartmentResponse{DepartmentID: id}}
		return h.formFailed(c, "department/delete", "Eliminar departamento", vd, err, "No se pudo eliminar el departamento")
	}
	return h.redirect(c, departmentListPath, cookie.FlashSuccess, "Departamento eliminado")
}
