// Package session deriva la sesión del usuario (logueado, rol) a partir del token
// persistido y expone un único proveedor inyectable con Login, Current y Logout.
package session

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jhoicas/ems-web/internal/domain"
	"github.com/jhoicas/ems-web/internal/domain/entity"
	pkgjwt "github.com/jhoicas/ems-web/pkg/jwt"
	"github.com/jhoicas/ems-web/pkg/logger"
)

// LocalSession clave de c.Locals donde se guarda la sesión ya derivada.
const LocalSession = "ems_session"

// Persisted estado que sobrevive entre peticiones: token y resumen del usuario.
type Persisted struct {
	Token string
	User  entity.UserSummary
}

// Store persiste el estado de sesión del navegador.
type Store interface {
	Load(c *fiber.Ctx) (Persisted, bool)
	Save(c *fiber.Ctx, p Persisted) error
	Clear(c *fiber.Ctx)
}

// Derive calcula la sesión a partir del token. Token vacío o ilegible = no logueado.
// Solo el primer rol del token cuenta; una etiqueta desconocida deja la sesión
// logueada sin rol.
func Derive(token string, keys pkgjwt.ClaimKeys) (entity.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entity.Anonymous(), nil
	}
	id, err := pkgjwt.Decode(token, keys)
	if err != nil {
		return entity.Anonymous(), fmt.Errorf("%w: %v", domain.ErrMalformedToken, err)
	}
	role := entity.RoleNone
	if len(id.Roles) > 0 {
		role = entity.ParseRole(id.Roles[0])
	}
	return entity.Session{
		LoggedIn: true,
		Role:     role,
		Subject:  id.Subject,
		Name:     id.Name,
		Email:    id.Email,
		Token:    token,
	}, nil
}

// Provider contexto de sesión de la aplicación. Se construye una vez y se inyecta.
type Provider struct {
	store Store
	keys  pkgjwt.ClaimKeys
	cache *lru.Cache[string, entity.Session]
	log   *logger.Logger
}

// NewProvider construye el proveedor con una caché LRU de sesiones derivadas por token.
func NewProvider(store Store, keys pkgjwt.ClaimKeys, cacheSize int, log *logger.Logger) (*Provider, error) {
	if cacheSize <= 0 {
		cacheSize = 1024
	}
	cache, err := lru.New[string, entity.Session](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("session: crear caché: %w", err)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Provider{store: store, keys: keys, cache: cache, log: log.Component("session")}, nil
}

// Derive igual que la función Derive, memoizada por token. Nunca devuelve error:
// un token ilegible se registra y se trata como sesión anónima.
func (p *Provider) Derive(token string) entity.Session {
	if s, ok := p.cache.Get(token); ok {
		return s
	}
	s, err := Derive(token, p.keys)
	if err != nil {
		// El token no se escribe en el log.
		p.log.Debug().Err(err).Msg("token de sesión descartado")
		return s
	}
	if s.LoggedIn {
		p.cache.Add(token, s)
	}
	return s
}

// Current devuelve la sesión de la petición. Se hidrata desde el Store una sola vez
// por petición y queda en c.Locals.
func (p *Provider) Current(c *fiber.Ctx) entity.Session {
	if s, ok := c.Locals(LocalSession).(entity.Session); ok {
		return s
	}
	s := entity.Anonymous()
	if per, ok := p.store.Load(c); ok {
		s = withSummary(p.Derive(per.Token), per.User)
	}
	c.Locals(LocalSession, s)
	return s
}

// Login persiste el token y el resumen devueltos por el backend y devuelve la sesión.
// Un token que no se puede decodificar no se guarda.
func (p *Provider) Login(c *fiber.Ctx, token string, user entity.UserSummary) (entity.Session, error) {
	s, err := Derive(token, p.keys)
	if err != nil {
		return entity.Anonymous(), err
	}
	if !s.LoggedIn {
		return entity.Anonymous(), domain.ErrMalformedToken
	}
	if err := p.store.Save(c, Persisted{Token: s.Token, User: user}); err != nil {
		return entity.Anonymous(), fmt.Errorf("session: guardar: %w", err)
	}
	p.cache.Add(s.Token, s)
	s = withSummary(s, user)
	c.Locals(LocalSession, s)
	p.log.Info().Str("subject", s.Subject).Str("role", s.Role.String()).Msg("sesión iniciada")
	return s, nil
}

// Logout borra el estado persistido y la sesión memoizada. Es idempotente.
func (p *Provider) Logout(c *fiber.Ctx) {
	if per, ok := p.store.Load(c); ok {
		p.cache.Remove(strings.TrimSpace(per.Token))
	}
	p.store.Clear(c)
	c.Locals(LocalSession, entity.Anonymous())
}

// withSummary completa los datos de presentación que el token no trae.
func withSummary(s entity.Session, u entity.UserSummary) entity.Session {
	if !s.LoggedIn {
		return s
	}
	if s.Name == "" {
		s.Name = u.Name
	}
	if s.Email == "" {
		s.Email = u.Email
	}
	if s.Subject == "" {
		s.Subject = u.EmployeeID
	}
	return s
}
