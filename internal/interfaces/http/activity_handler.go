package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/usecase"
)

// ActivityHandler auditoría de accesos.
type ActivityHandler struct {
	*Pages
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler.
func NewActivityHandler(p *Pages, uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{Pages: p, uc: uc}
}

type loginHistory struct {
	UserID string
	Rows   []dto.LoginHistoryRow
}

type recentActivity struct {
	UserID string
	Logs   []dto.UserActivityLog
}

// Index GET /activity: empleados con enlaces a su historial (Admin).
func (h *ActivityHandler) Index(c *fiber.Ctx) error {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	list, err := h.uc.Employees(ctx)
	return h.readPage(c, "activity/index", "Actividad", list, err, "No se pudieron cargar los empleados")
}

// LoginHistory GET /activity/loginhistory/:userId con duraciones ya formateadas.
func (h *ActivityHandler) LoginHistory(c *fiber.Ctx) error {
	userID := c.Params("userId")
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	rows, err := h.uc.LoginHistory(ctx, userID)
	return h.readPage(c, "activity/loginhistory", "Historial de sesiones", loginHistory{UserID: userID, Rows: rows}, err, "No se pudo cargar el historial de sesiones")
}

// Recent accesos recientes; ?userId= filtra por usuario.
func (h *ActivityHandler) Recent(c *fiber.Ctx) error {
	userID := c.Query("userId")
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	logs, err := h.uc.Recent(ctx, userID)
	return h.readPage(c, "activity/recent", "Actividad reciente", recentActivity{UserID: userID, Logs: logs}, err, "No se pudo cargar la actividad reciente")
}
