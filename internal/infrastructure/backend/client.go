// Package backend es el adaptador HTTP hacia la API REST del EMS. Implementa los
// puertos de internal/application/ports usando net/http.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/domain"
	"github.com/jhoicas/ems-web/pkg/logger"
)

// maxBodyBytes límite de lectura de respuestas del backend.
const maxBodyBytes = 4 << 20

type ctxKey int

const (
	tokenKey ctxKey = iota
	requestIDKey
)

// WithToken adjunta el token bearer del usuario al contexto de la llamada.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFrom devuelve el token adjunto o "".
func TokenFrom(ctx context.Context) string {
	s, _ := ctx.Value(tokenKey).(string)
	return s
}

// WithRequestID propaga el id de la petición entrante como X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, id)
}

func requestIDFrom(ctx context.Context) string {
	if s, _ := ctx.Value(requestIDKey).(string); s != "" {
		return s
	}
	return uuid.NewString()
}

// Client cliente HTTP del backend. Es seguro para uso concurrente.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. timeout es el límite de red por llamada; los
// handlers imponen además su propio context.WithTimeout.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("backend"),
	}
}

// do ejecuta una llamada (un único intento). in se serializa como JSON si no es nil;
// out se deserializa si no es nil y la respuesta es 2xx con cuerpo.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("backend: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := TokenFrom(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	reqID := requestIDFrom(ctx)
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Str("request_id", reqID).Msg("backend no disponible")
		if ctx.Err() != nil {
			return fmt.Errorf("%w: timeout o cancelación: %v", domain.ErrTransport, ctx.Err())
		}
		return fmt.Errorf("%w: %v", domain.ErrTransport, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: leer respuesta: %v", domain.ErrTransport, err)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Str("request_id", reqID).
		Msg("llamada al backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: respuesta no es JSON válido: %v", domain.ErrBackend, err)
	}
	return nil
}

// APIError respuesta no-2xx del backend.
type APIError struct {
	Status  int
	Message string // mensaje del servidor; "" si no envió ninguno
}

func newAPIError(status int, raw []byte) *APIError {
	trimmed := bytes.TrimSpace(raw)
	var body dto.ErrorResponse
	var text string
	msg := ""
	switch {
	case json.Unmarshal(trimmed, &body) == nil:
		msg = body.Text()
	case json.Unmarshal(trimmed, &text) == nil:
		msg = strings.TrimSpace(text)
	case len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '['):
		// JSON con otra forma: nunca se muestra crudo.
		msg = looseMessage(trimmed)
	case len(trimmed) > 0 && len(trimmed) < 300 && trimmed[0] != '<':
		// Algunos endpoints devuelven BadRequest("texto") como texto plano.
		msg = string(trimmed)
	}
	return &APIError{Status: status, Message: msg}
}

// looseMessage rescata "message" o "title" de un objeto JSON que no encaja en
// dto.ErrorResponse (p. ej. code numérico).
func looseMessage(raw []byte) string {
	var obj map[string]interface{}
	if json.Unmarshal(raw, &obj) != nil {
		return ""
	}
	for _, key := range []string{"message", "title"} {
		if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend HTTP %d", e.Status)
}

// Is clasifica el error en la taxonomía de dominio.
func (e *APIError) Is(target error) bool {
	switch target {
	case domain.ErrBackend:
		return true
	case domain.ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case domain.ErrForbidden:
		return e.Status == http.StatusForbidden
	case domain.ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

// Message devuelve el texto a mostrar en el toast/banner: el mensaje del servidor si
// lo hay, o fallback.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, domain.ErrTransport) {
		return domain.ErrTransport.Error()
	}
	return fallback
}
