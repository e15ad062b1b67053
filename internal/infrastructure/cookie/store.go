// Package cookie persiste el estado del navegador (token, resumen de usuario y
// mensajes flash) en cookies firmadas con gorilla/securecookie.
package cookie

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/securecookie"

	"github.com/jhoicas/ems-web/internal/application/session"
	"github.com/jhoicas/ems-web/internal/domain/entity"
)

// Nombres de cookie.
const (
	TokenCookie = "ems_token"
	UserCookie  = "ems_user"
	FlashCookie = "ems_flash"
)

const maxAge = 7 * 24 * time.Hour

var _ session.Store = (*Store)(nil)

// Options claves y atributos de las cookies.
type Options struct {
	HashKey  string
	BlockKey string // vacío = solo firma, sin cifrado
	Secure   bool
}

// Store implementación de session.Store sobre cookies firmadas.
type Store struct {
	sc     *securecookie.SecureCookie
	secure bool
}

// NewStore construye el store. HashKey es obligatoria.
func NewStore(opts Options) *Store {
	var block []byte
	if opts.BlockKey != "" {
		block = []byte(opts.BlockKey)
	}
	sc := securecookie.New([]byte(opts.HashKey), block)
	sc.SetSerializer(securecookie.JSONEncoder{})
	sc.MaxAge(int(maxAge.Seconds()))
	return &Store{sc: sc, secure: opts.Secure}
}

// Load lee el token y el resumen. Una cookie alterada o vencida cuenta como ausente.
func (s *Store) Load(c *fiber.Ctx) (session.Persisted, bool) {
	raw := c.Cookies(TokenCookie)
	if raw == "" {
		return session.Persisted{}, false
	}
	var p session.Persisted
	if err := s.sc.Decode(TokenCookie, raw, &p.Token); err != nil || p.Token == "" {
		return session.Persisted{}, false
	}
	if rawUser := c.Cookies(UserCookie); rawUser != "" {
		var u entity.UserSummary
		if err := s.sc.Decode(UserCookie, rawUser, &u); err == nil {
			p.User = u
		}
	}
	return p, true
}

// Save escribe el token y el resumen.
func (s *Store) Save(c *fiber.Ctx, p session.Persisted) error {
	tok, err := s.sc.Encode(TokenCookie, p.Token)
	if err != nil {
		return err
	}
	user, err := s.sc.Encode(UserCookie, p.User)
	if err != nil {
		return err
	}
	s.set(c, TokenCookie, tok, maxAge)
	s.set(c, UserCookie, user, maxAge)
	return nil
}

// Clear expira el token y el resumen.
func (s *Store) Clear(c *fiber.Ctx) {
	s.expire(c, TokenCookie)
	s.expire(c, UserCookie)
}

func (s *Store) set(c *fiber.Ctx, name, value string, ttl time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (s *Store) expire(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   s.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
