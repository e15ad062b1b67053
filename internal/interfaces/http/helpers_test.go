package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gorilla/securecookie"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ems-web/internal/application/session"
	"github.com/jhoicas/ems-web/internal/application/usecase"
	"github.com/jhoicas/ems-web/internal/infrastructure/backend"
	"github.com/jhoicas/ems-web/internal/infrastructure/cookie"
	"github.com/jhoicas/ems-web/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/ems-web/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/ems-web/pkg/jwt"
	"github.com/jhoicas/ems-web/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testHashKey   = "test-hash-key-0123456789abcdef0123"
	testExpMin    = 60
)

// fakeBackend API REST simulada: respuestas por "MÉTODO /ruta" y conteo de llamadas.
// Las rutas sin respuesta registrada devuelven 404.
type fakeBackend struct {
	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	hits     map[string]int
	lastBody map[string]string
	srv      *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()
	fb := &fakeBackend{
		routes:   map[string]http.HandlerFunc{},
		hits:     map[string]int{},
		lastBody: map[string]string{},
	}
	fb.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		body, _ := io.ReadAll(r.Body)
		fb.mu.Lock()
		fb.hits[key]++
		fb.lastBody[key] = string(body)
		h, ok := fb.routes[key]
		fb.mu.Unlock()
		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
	t.Cleanup(fb.srv.Close)
	return fb
}

// on registra una respuesta JSON fija.
func (fb *fakeBackend) on(method, path string, status int, body string) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.routes[method+" "+path] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func (fb *fakeBackend) count(method, path string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.hits[method+" "+path]
}

// total llamadas recibidas, de cualquier método y ruta.
func (fb *fakeBackend) total() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	n := 0
	for _, v := range fb.hits {
		n += v
	}
	return n
}

func (fb *fakeBackend) body(method, path string) string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.lastBody[method+" "+path]
}

// buildTestApp arma el servidor completo contra el backend simulado.
func buildTestApp(t *testing.T, fb *fakeBackend) *fiber.App {
	t.Helper()
	log := logger.Nop()
	client := backend.NewClient(fb.srv.URL, 5*time.Second, log)
	employees := backend.NewEmployeeGateway(client)

	store := cookie.NewStore(cookie.Options{HashKey: testHashKey})
	provider, err := session.NewProvider(store, pkgjwt.DefaultClaimKeys(), 16, log)
	require.NoError(t, err)

	app, err := apphttp.NewServer(apphttp.RouterDeps{
		AppName:        "ems-web-test",
		Sessions:       provider,
		Cookies:        store,
		Logger:         log,
		BackendTimeout: 5 * time.Second,
		AccountUC:      usecase.NewAccountUseCase(backend.NewAccountGateway(client)),
		EmployeeUC:     usecase.NewEmployeeUseCase(employees, pdf.NewMarotoReportGenerator()),
		DepartmentUC:   usecase.NewDepartmentUseCase(backend.NewDepartmentGateway(client), employees),
		LeaveUC:        usecase.NewLeaveUseCase(backend.NewLeaveGateway(client)),
		ManagerUC:      usecase.NewManagerUseCase(backend.NewManagerGateway(client)),
		ActivityUC:     usecase.NewActivityUseCase(backend.NewActivityGateway(client)),
		DashboardUC:    usecase.NewDashboardUseCase(backend.NewDashboardGateway(client)),
	})
	require.NoError(t, err, "el servidor debe construirse con todas las plantillas")
	return app
}

// tokenFor genera un JWT emitido "por el backend" con el rol indicado.
func tokenFor(t *testing.T, subject, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, subject, "Usuario "+subject, subject+"@ems.test", []string{role}, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// sessionCookie cookie de token firmada con la misma clave que el store.
func sessionCookie(t *testing.T, token string) *http.Cookie {
	t.Helper()
	sc := securecookie.New([]byte(testHashKey), nil)
	sc.SetSerializer(securecookie.JSONEncoder{})
	v, err := sc.Encode(cookie.TokenCookie, token)
	require.NoError(t, err)
	return &http.Cookie{Name: cookie.TokenCookie, Value: v}
}

// flashOf decodifica el toast que dejó la respuesta.
func flashOf(t *testing.T, resp *http.Response) cookie.Flash {
	t.Helper()
	ck := findCookie(resp, cookie.FlashCookie)
	require.NotNil(t, ck, "la respuesta debe dejar un toast")
	sc := securecookie.New([]byte(testHashKey), nil)
	sc.SetSerializer(securecookie.JSONEncoder{})
	var f cookie.Flash
	require.NoError(t, sc.Decode(cookie.FlashCookie, ck.Value, &f))
	return f
}

func get(t *testing.T, app *fiber.App, path string, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values, cookies ...*http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}
