package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/usecase"
	"github.com/jhoicas/ems-web/internal/infrastructure/cookie"
)

const employeeListPath = "/employee/employeelist"

// EmployeeHandler páginas de empleados.
type EmployeeHandler struct {
	*Pages
	uc    *usecase.EmployeeUseCase
	depts *usecase.DepartmentUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(p *Pages, uc *usecase.EmployeeUseCase, depts *usecase.DepartmentUseCase) *EmployeeHandler {
	return &EmployeeHandler{Pages: p, uc: uc, depts: depts}
}

// employeeForm datos del formulario de alta/edición.
type employeeForm struct {
	ID          int
	Action      string
	Departments []dto.DepartmentResponse
	Roles       []dto.RoleOption
}

// List GET /employee/employeelist (Admin).
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	list, err := h.uc.List(ctx)
	return h.readPage(c, "employee/list", "Empleados", list, err, "No se pudieron cargar los empleados")
}

// formData carga los selectores; un fallo deja el selector vacío sin bloquear la página.
func (h *EmployeeHandler) formData(c *fiber.Ctx, id int, action string) employeeForm {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	fd := employeeForm{ID: id, Action: action}
	var err error
	if fd.Departments, err = h.depts.List(ctx); err != nil {
		h.log.Warn().Err(err).Msg("departamentos para el formulario")
	}
	if fd.Roles, err = h.uc.Roles(ctx); err != nil {
		h.log.Debug().Err(err).Msg("roles para el formulario")
	}
	return fd
}

// postedFormData selectores recuperados del propio envío; no llama al backend.
func (h *EmployeeHandler) postedFormData(c *fiber.Ctx, id int, action string) employeeForm {
	return employeeForm{ID: id, Action: action, Departments: postedDepartments(c), Roles: postedRoles(c)}
}

// CreatePage GET /employee/create.
func (h *EmployeeHandler) CreatePage(c *fiber.Ctx) error {
	vd := &ViewData{Form: dto.EmployeeForm{IsActive: "true"}, Data: h.formData(c, 0, "/employee/create")}
	return h.render(c, fiber.StatusOK, "employee/form", "Nuevo empleado", vd)
}

// Create POST /employee/create.
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	form := parseEmployeeForm(c)
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	if err := h.uc.Create(ctx, form); err != nil {
		vd := &ViewData{Form: form, Data: h.postedFormData(c, 0, "/employee/create")}
		return h.formFailed(c, "employee/form", "Nuevo empleado", vd, err, "No se pudo crear el empleado")
	}
	return h.redirect(c, employeeListPath, cookie.FlashSuccess, "Empleado creado")
}

// EditPage GET /employee/edit/:id.
func (h *EmployeeHandler) EditPage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	emp, err := h.uc.Get(ctx, id)
	if err != nil {
		return h.readFailed(c, err, employeeListPath, "No se pudo cargar el empleado")
	}
	vd := &ViewData{Form: emp.Form(), Data: h.formData(c, id, fmt.Sprintf("/employee/edit/%d", id))}
	return h.render(c, fiber.StatusOK, "employee/form", "Editar empleado", vd)
}

// Edit POST /employee/edit/:id; el backend recibe un PUT.
func (h *EmployeeHandler) Edit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	form := parseEmployeeForm(c)
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	if err := h.uc.Update(ctx, id, form); err != nil {
		vd := &ViewData{Form: form, Data: h.postedFormData(c, id, fmt.Sprintf("/employee/edit/%d", id))}
		return h.formFailed(c, "employee/form", "Editar empleado", vd, err, "No se pudo actualizar el empleado")
	}
	return h.redirect(c, employeeListPath, cookie.FlashSuccess, "Empleado actualizado")
}

// DeletePage GET /employee/delete/:id: confirmación.
func (h *EmployeeHandler) DeletePage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	emp, err := h.uc.Get(ctx, id)
	if err != nil {
		return h.readFailed(c, err, employeeListPath, "No se pudo cargar el empleado")
	}
	return h.render(c, fiber.StatusOK, "employee/delete", "Eliminar empleado", &ViewData{Data: emp})
}

// Delete POST /employee/delete/:id.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	if err := h.uc.Delete(ctx, id); err != nil {
		vd := &ViewData{Data: &dto.EmployeeResponse{EmployeeID: id}}
		return h.formFailed(c, "employee/delete", "Eliminar empleado", vd, err, "No se pudo eliminar el empleado")
	}
	return h.redirect(c, employeeListPath, cookie.FlashSuccess, "Empleado eliminado")
}

// employeeFilter resultado de la página de filtro.
type employeeFilter struct {
	Departments []dto.DepartmentResponse
	Results     []dto.EmployeeResponse
	Searched    bool
}

// Filter aplica los criterios de la query; sin criterios lista todos.
func (h *EmployeeHandler) Filter(c *fiber.Ctx) error {
	var f dto.EmployeeFilter
	_ = c.QueryParser(&f)

	ctx, cancel := h.backendCtx(c)
	defer cancel()

	data := employeeFilter{Searched: !f.IsEmpty()}
	depts, err := h.depts.List(ctx)
	if err != nil {
		h.log.Warn().Err(err).Msg("departamentos para el filtro")
	}
	data.Departments = depts

	results, err := h.uc.Filter(ctx, f)
	data.Results = results
	vd := &ViewData{Form: f, Data: data}
	if err != nil {
		if h.isExpired(err) {
			return h.expired(c)
		}
		vd.Data = employeeFilter{Departments: depts, Searched: data.Searched}
		vd.Error = messageOr(err, "No se pudo aplicar el filtro")
	}
	return h.render(c, fiber.StatusOK, "employee/filter", "Filtrar empleados", vd)
}

// Managers GET /employee/managerslist.
func (h *EmployeeHandler) Managers(c *fiber.Ctx) error {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	list, err := h.uc.Managers(ctx)
	return h.readPage(c, "employee/managers", "Jefes", list, err, "No se pudieron cargar los jefes")
}

// Profile GET /employee/profile: perfil propio (Manager, Employee).
func (h *EmployeeHandler) Profile(c *fiber.Ctx) error {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	p, err := h.uc.Profile(ctx)
	return h.readPage(c, "employee/profile", "Mi perfil", p, err, "No se pudo cargar el perfil")
}

// MonthlyReport GET /employee/monthlyreport.
func (h *EmployeeHandler) MonthlyReport(c *fiber.Ctx) error {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	info, err := h.uc.CurrentMonthInfo(ctx)
	return h.readPage(c, "employee/monthlyreport", "Reporte mensual", info, err, "No se pudo cargar el reporte del mes")
}

// MonthlyReportPDF GET /employee/monthlyreport.pdf.
func (h *EmployeeHandler) MonthlyReportPDF(c *fiber.Ctx) error {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	out, err := h.uc.MonthlyReportPDF(ctx, GetSession(c).Name)
	if err != nil {
		return h.readFailed(c, err, "/employee/monthlyreport", "No se pudo generar el PDF")
	}
	return sendPDF(c, fmt.Sprintf("reporte-mensual-%s.pdf", time.Now().Format("2006-01")), out)
}

// RosterPDF GET /employee/employeelist.pdf.
func (h *EmployeeHandler) RosterPDF(c *fiber.Ctx) error {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	out, err := h.uc.RosterPDF(ctx)
	if err != nil {
		return h.readFailed(c, err, employeeListPath, "No se pudo generar el PDF")
	}
	return sendPDF(c, "empleados.pdf", out)
}

func parseEmployeeForm(c *fiber.Ctx) dto.EmployeeForm {
	var form dto.EmployeeForm
	_ = c.BodyParser(&form)
	// Checkbox sin marcar no llega en el body.
	if form.IsActive == "" {
		form.IsActive = "false"
	}
	return form
}

func sendPDF(c *fiber.Ctx, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Status(fiber.StatusOK).Send(body)
}
