package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ems-web/internal/application/session"
	"github.com/jhoicas/ems-web/internal/domain/entity"
	"github.com/jhoicas/ems-web/internal/infrastructure/cookie"
)

const testHashKey = "0123456789abcdef0123456789abcdef"

// buildApp expone el store por HTTP para poder encadenar cookies entre peticiones.
func buildApp(store *cookie.Store) *fiber.App {
	app := fiber.New()
	app.Get("/save", func(c *fiber.Ctx) error {
		err := store.Save(c, session.Persisted{
			Token: "tok-abc",
			User:  entity.UserSummary{Name: "Ana", Roles: []string{"Admin"}, EmployeeID: "15"},
		})
		if err != nil {
			return err
		}
		store.SetFlash(c, cookie.FlashSuccess, "Bienvenida")
		return c.SendStatus(fiber.StatusNoContent)
	})
	app.Get("/load", func(c *fiber.Ctx) error {
		p, ok := store.Load(c)
		f, hasFlash := store.PopFlash(c)
		return c.JSON(fiber.Map{"ok": ok, "token": p.Token, "name": p.User.Name, "flash": f.Message, "hasFlash": hasFlash})
	})
	app.Get("/clear", func(c *fiber.Ctx) error {
		store.Clear(c)
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func get(t *testing.T, app *fiber.App, path string, cookies []*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestStore_SaveYLoad(t *testing.T) {
	app := buildApp(cookie.NewStore(cookie.Options{HashKey: testHashKey}))

	resp := get(t, app, "/save", nil)
	resp.Body.Close()
	cookies := resp.Cookies()
	require.Len(t, cookies, 3)
	for _, ck := range cookies {
		assert.True(t, ck.HttpOnly, "cookie %s debe ser HttpOnly", ck.Name)
		assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
		assert.NotContains(t, ck.Value, "tok-abc", "el valor va firmado y codificado")
	}

	resp = get(t, app, "/load", cookies)
	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, decodeJSON(resp, &body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "tok-abc", body["token"])
	assert.Equal(t, "Ana", body["name"])
	assert.Equal(t, "Bienvenida", body["flash"])
}

func TestStore_CookieAlteradaSeIgnora(t *testing.T) {
	app := buildApp(cookie.NewStore(cookie.Options{HashKey: testHashKey}))

	forged := []*http.Cookie{{Name: cookie.TokenCookie, Value: "tok-falso"}}
	resp := get(t, app, "/load", forged)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, decodeJSON(resp, &body))
	assert.Equal(t, false, body["ok"])
	assert.Equal(t, "", body["token"])
}

func TestStore_OtraClaveNoValida(t *testing.T) {
	resp := get(t, buildApp(cookie.NewStore(cookie.Options{HashKey: testHashKey})), "/save", nil)
	resp.Body.Close()

	other := buildApp(cookie.NewStore(cookie.Options{HashKey: "fedcba9876543210fedcba9876543210"}))
	resp = get(t, other, "/load", resp.Cookies())
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, decodeJSON(resp, &body))
	assert.Equal(t, false, body["ok"])
}

func TestStore_ClearExpiraCookies(t *testing.T) {
	store := cookie.NewStore(cookie.Options{HashKey: testHashKey, Secure: true})
	app := buildApp(store)

	resp := get(t, app, "/clear", nil)
	resp.Body.Close()

	names := map[string]bool{}
	for _, ck := range resp.Cookies() {
		names[ck.Name] = true
		assert.Empty(t, ck.Value)
		assert.True(t, ck.Secure)
		assert.True(t, ck.Expires.Before(time.Now()), "cookie %s debe expirar", ck.Name)
	}
	assert.True(t, names[cookie.TokenCookie])
	assert.True(t, names[cookie.UserCookie])
}

func TestStore_ConCifrado(t *testing.T) {
	app := buildApp(cookie.NewStore(cookie.Options{HashKey: testHashKey, BlockKey: "0123456789abcdef"}))

	resp := get(t, app, "/save", nil)
	resp.Body.Close()
	resp = get(t, app, "/load", resp.Cookies())
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, decodeJSON(resp, &body))
	assert.Equal(t, "tok-abc", body["token"])
}
