package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/usecase"
	"github.com/jhoicas/ems-web/internal/domain/entity"
	"github.com/jhoicas/ems-web/internal/infrastructure/cookie"
)

// LeaveHandler solicitudes de permiso y aprobaciones.
type LeaveHandler struct {
	*Pages
	uc *usecase.LeaveUseCase
}

// NewLeaveHandler construye el handler.
func NewLeaveHandler(p *Pages, uc *usecase.LeaveUseCase) *LeaveHandler {
	return &LeaveHandler{Pages: p, uc: uc}
}

// pendingList datos de la bandeja de aprobaciones.
type pendingList struct {
	Leaves []dto.LeaveRequestResponse
	Team   bool
}

// ApplyPage GET /leave/apply.
func (h *LeaveHandler) ApplyPage(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "leave/apply", "Solicitar permiso", &ViewData{Form: dto.LeaveApplyForm{}})
}

// Apply valida y envía la solicitud; con fin anterior a inicio no se envía nada.
func (h *LeaveHandler) Apply(c *fiber.Ctx) error {
	var form dto.LeaveApplyForm
	_ = c.BodyParser(&form)
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	if err := h.uc.Apply(ctx, GetSession(c).Subject, form); err != nil {
		return h.formFailed(c, "leave/apply", "Solicitar permiso", &ViewData{Form: form}, err, "No se pudo registrar la solicitud")
	}
	return h.redirect(c, "/leave/myleaves", cookie.FlashSuccess, "Solicitud de permiso enviada")
}

// MyLeaves GET /leave/myleaves: permisos y saldo del usuario.
func (h *LeaveHandler) MyLeaves(c *fiber.Ctx) error {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	out, err := h.uc.Mine(ctx, GetSession(c).Subject)
	return h.readPage(c, "leave/myleaves", "Mis permisos", out, err, "No se pudieron cargar tus permisos")
}

// ApproveList pendientes de toda la organización (Admin).
func (h *LeaveHandler) ApproveList(c *fiber.Ctx) error {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	list, err := h.uc.PendingAll(ctx)
	return h.readPage(c, "leave/pending", "Solicitudes pendientes", pendingList{Leaves: list}, err, "No se pudieron cargar las solicitudes")
}

// TeamList pendientes del equipo (Manager).
func (h *LeaveHandler) TeamList(c *fiber.Ctx) error {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	list, err := h.uc.PendingTeam(ctx)
	return h.readPage(c, "leave/pending", "Solicitudes de mi equipo", pendingList{Leaves: list, Team: true}, err, "No se pudieron cargar las solicitudes")
}

// ApprovalPage GET /leave/approval/:id.
func (h *LeaveHandler) ApprovalPage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	l, err := h.uc.Get(ctx, id)
	if err != nil {
		return h.readFailed(c, err, pendingPath(GetSession(c)), "No se pudo cargar la solicitud")
	}
	return h.render(c, fiber.StatusOK, "leave/approval", "Revisar solicitud", &ViewData{Data: l})
}

// Approval aprueba o rechaza según el botón pulsado (status=approved|rejected).
func (h *LeaveHandler) Approval(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	status := c.FormValue("status")
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	decided, err := h.uc.Decide(ctx, id, status)
	if err != nil {
		l, getErr := h.uc.Get(ctx, id)
		if getErr != nil {
			l = &dto.LeaveRequestResponse{LeaveRequestID: id}
		}
		return h.formFailed(c, "leave/approval", "Revisar solicitud", &ViewData{Data: l}, err, "No se pudo registrar la decisión")
	}
	msg := "Solicitud aprobada"
	if decided == "rejected" {
		msg = "Solicitud rechazada"
	}
	return h.redirect(c, pendingPath(GetSession(c)), cookie.FlashSuccess, msg)
}

// pendingPath bandeja de aprobaciones según el rol.
func pendingPath(s entity.Session) string {
	if s.Role == entity.RoleManager {
		return "/leave/employeeleavelist"
	}
	return "/leave/approvelist"
}

// approvalPath enlace a la revisión de una solicitud.
func approvalPath(id int) string {
	return fmt.Sprintf("/leave/approval/%d", id)
}
