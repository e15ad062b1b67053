package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ems-web/internal/application/usecase"
)

// DashboardHandler panel de administración.
type DashboardHandler struct {
	*Pages
	uc *usecase.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(p *Pages, uc *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{Pages: p, uc: uc}
}

// Index GET /dashboard: indicadores y gráficos (Admin).
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	view, err := h.uc.Summary(ctx)
	return h.readPage(c, "dashboard/index", "Dashboard", view, err, "No se pudo cargar el dashboard")
}
