package cookie

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// Tipos de toast.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
)

// Flash mensaje de una sola lectura que se muestra en la siguiente página.
type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// SetFlash deja un toast para la próxima respuesta renderizada.
func (s *Store) SetFlash(c *fiber.Ctx, kind, message string) {
	v, err := s.sc.Encode(FlashCookie, Flash{Kind: kind, Message: message})
	if err != nil {
		return
	}
	s.set(c, FlashCookie, v, 5*time.Minute)
}

// PopFlash lee y borra el toast pendiente, si lo hay.
func (s *Store) PopFlash(c *fiber.Ctx) (Flash, bool) {
	raw := c.Cookies(FlashCookie)
	if raw == "" {
		return Flash{}, false
	}
	s.expire(c, FlashCookie)
	var f Flash
	if err := s.sc.Decode(FlashCookie, raw, &f); err != nil || f.Message == "" {
		return Flash{}, false
	}
	return f, true
}
