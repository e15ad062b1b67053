package http

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ems-web/internal/application/session"
	"github.com/jhoicas/ems-web/internal/application/validation"
	"github.com/jhoicas/ems-web/internal/domain"
	"github.com/jhoicas/ems-web/internal/infrastructure/backend"
	"github.com/jhoicas/ems-web/internal/infrastructure/cookie"
	"github.com/jhoicas/ems-web/pkg/logger"
)

// localRequestID clave de c.Locals del middleware requestid.
const localRequestID = "requestid"

// Pages dependencias compartidas por los handlers de página.
type Pages struct {
	views    *Renderer
	sessions *session.Provider
	cookies  *cookie.Store
	log      *logger.Logger
	timeout  time.Duration
}

// NewPages construye el helper de páginas.
func NewPages(views *Renderer, sessions *session.Provider, cookies *cookie.Store, log *logger.Logger, timeout time.Duration) *Pages {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Pages{views: views, sessions: sessions, cookies: cookies, log: log.Component("pages"), timeout: timeout}
}

// backendCtx contexto de las llamadas al backend de esta petición: timeout propio,
// token de la sesión e id de petición. El llamador debe invocar cancel.
func (p *Pages) backendCtx(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(c.UserContext(), p.timeout)
	ctx = backend.WithToken(ctx, GetSession(c).Token)
	ctx = backend.WithRequestID(ctx, requestID(c))
	return ctx, cancel
}

// render escribe la página con el estado común (sesión, navbar, toast pendiente).
func (p *Pages) render(c *fiber.Ctx, status int, page, title string, vd *ViewData) error {
	if vd == nil {
		vd = &ViewData{}
	}
	vd.Title = title
	vd.Session = GetSession(c)
	vd.Nav = NavFor(vd.Session, c.Path())
	vd.RequestID = requestID(c)
	if vd.Flash == nil {
		if f, ok := p.cookies.PopFlash(c); ok {
			vd.Flash = &f
		}
	}

	var buf bytes.Buffer
	if err := p.views.Render(&buf, page, vd); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// redirect con toast para la página destino.
func (p *Pages) redirect(c *fiber.Ctx, to, kind, msg string) error {
	if msg != "" {
		p.cookies.SetFlash(c, kind, msg)
	}
	return c.Redirect(to, fiber.StatusSeeOther)
}

const expiredMessage = "Tu sesión expiró. Inicia sesión de nuevo."

// expired cierra la sesión local tras un 401 del backend en una página de lectura y
// manda al login.
func (p *Pages) expired(c *fiber.Ctx) error {
	p.sessions.Logout(c)
	return p.redirect(c, LoginPath, cookie.FlashError, expiredMessage)
}

// readPage renderiza una página de lectura. Si la carga falló se muestra el estado
// vacío con un banner; un 401 termina la sesión.
func (p *Pages) readPage(c *fiber.Ctx, page, title string, data interface{}, err error, fallback string) error {
	vd := &ViewData{Data: data}
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return p.expired(c)
		}
		p.log.Warn().Err(err).Str("page", page).Str("request_id", requestID(c)).Msg("carga de página fallida")
		vd.Error = backend.Message(err, fallback)
	}
	return p.render(c, fiber.StatusOK, page, title, vd)
}

// formFailed re-renderiza el formulario tras un fallo de validación (422) o del
// backend (422 si lo rechazó, 502 si no respondió). Nunca navega fuera: un 401 con
// sesión abierta la cierra y deja el formulario con un enlace al login (401). Sin
// sesión (login, registro) el 401 es un rechazo más.
func (p *Pages) formFailed(c *fiber.Ctx, page, title string, vd *ViewData, err error, fallback string) error {
	if p.isExpired(err) && GetSession(c).LoggedIn {
		p.sessions.Logout(c)
		p.log.Info().Str("page", page).Str("request_id", requestID(c)).Msg("sesión expirada al enviar formulario")
		vd.Error = expiredMessage
		vd.Expired = true
		vd.Flash = &cookie.Flash{Kind: cookie.FlashError, Message: expiredMessage}
		return p.render(c, fiber.StatusUnauthorized, page, title, vd)
	}
	status := fiber.StatusBadGateway
	if ve, ok := validation.AsErrors(err); ok {
		vd.Errors = ve
		vd.Error = ve.First()
		status = fiber.StatusUnprocessableEntity
	} else {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Status >= http.StatusBadRequest && apiErr.Status < http.StatusInternalServerError {
			status = fiber.StatusUnprocessableEntity
		}
		p.log.Warn().Err(err).Str("page", page).Str("request_id", requestID(c)).Msg("operación rechazada")
		vd.Error = backend.Message(err, fallback)
	}
	vd.Flash = &cookie.Flash{Kind: cookie.FlashError, Message: vd.Error}
	return p.render(c, status, page, title, vd)
}

func requestID(c *fiber.Ctx) string {
	s, _ := c.Locals(localRequestID).(string)
	return s
}

func (p *Pages) isExpired(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}

// readFailed fallo al cargar un recurso puntual: 401 cierra la sesión, en otro caso se
// vuelve a back con el mensaje como toast.
func (p *Pages) readFailed(c *fiber.Ctx, err error, back, fallback string) error {
	if p.isExpired(err) {
		return p.expired(c)
	}
	p.log.Warn().Err(err).Str("path", c.Path()).Str("request_id", requestID(c)).Msg("recurso no disponible")
	return p.redirect(c, back, cookie.FlashError, messageOr(err, fallback))
}

func messageOr(err error, fallback string) string {
	return backend.Message(err, fallback)
}
