package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ems-web/internal/application/usecase"
)

// ManagerHandler perfil del jefe y su equipo.
type ManagerHandler struct {
	*Pages
	uc *usecase.ManagerUseCase
}

// NewManagerHandler construye el handler.
func NewManagerHandler(p *Pages, uc *usecase.ManagerUseCase) *ManagerHandler {
	return &ManagerHandler{Pages: p, uc: uc}
}

// Profile GET /manager/profile.
func (h *ManagerHandler) Profile(c *fiber.Ctx) error {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	p, err := h.uc.Profile(ctx)
	return h.readPage(c, "manager/profile", "Mi perfil", p, err, "No se pudo cargar el perfil")
}

// Subordinates GET /manager/subordinates.
func (h *ManagerHandler) Subordinates(c *fiber.Ctx) error {
	ctx, cancel := h.backendCtx(c)
	defer cancel()
	list, err := h.uc.Subordinates(ctx)
	return h.readPage(c, "manager/subordinates", "Mi equipo", list, err, "No se pudo cargar tu equipo")
}
