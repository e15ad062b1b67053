package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ems-web/internal/application/session"
	"github.com/jhoicas/ems-web/internal/domain/entity"
)

// Rutas de redirección del guard.
const (
	LoginPath        = "/account/login"
	UnauthorizedPath = "/unauthorized"
)

// Decision resultado de evaluar el acceso a una página.
type Decision int

const (
	Allowed Decision = iota
	RedirectLogin
	RedirectUnauthorized
)

// Location destino de la redirección; "" si está permitido.
func (d Decision) Location() string {
	switch d {
	case RedirectLogin:
		return LoginPath
	case RedirectUnauthorized:
		return UnauthorizedPath
	default:
		return ""
	}
}

// Evaluate decide el acceso. Sin sesión → login; rol ausente o fuera de la lista →
// /unauthorized; en otro caso se permite. Nunca produce ambas redirecciones.
func Evaluate(s entity.Session, allowed []entity.Role) Decision {
	if !s.LoggedIn {
		return RedirectLogin
	}
	if !s.Role.In(allowed) {
		return RedirectUnauthorized
	}
	return Allowed
}

// RequireRole middleware que aplica Evaluate en cada petición. Debe usarse después de
// LoadSession.
func RequireRole(allowed ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if d := Evaluate(GetSession(c), allowed); d != Allowed {
			return c.Redirect(d.Location(), fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// LoadSession hidrata la sesión de la petición y la deja en c.Locals.
func LoadSession(p *session.Provider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p.Current(c)
		return c.Next()
	}
}

// GetSession devuelve la sesión de la petición (después de LoadSession).
func GetSession(c *fiber.Ctx) entity.Session {
	s, _ := c.Locals(session.LocalSession).(entity.Session)
	return s
}

// GetRole devuelve el rol de la sesión de la petición.
func GetRole(c *fiber.Ctx) entity.Role {
	return GetSession(c).Role
}
