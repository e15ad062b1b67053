// Package validation contiene las validaciones de formularios que se ejecutan
// antes de cualquier llamada al backend. Si una validación falla no se emite
// ninguna petición.
package validation

import (
	"errors"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/ems-web/internal/domain"
)

// DateLayout formato de fecha de los inputs type=date.
const DateLayout = "2006-01-02"

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

// Errors errores por campo (campo del formulario → mensaje).
type Errors map[string]string

// Error implementa error con los mensajes ordenados por campo.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	msgs := make([]string, 0, len(fields))
	for _, f := range fields {
		msgs = append(msgs, e[f])
	}
	return strings.Join(msgs, "; ")
}

// Is permite errors.Is(err, domain.ErrValidation).
func (e Errors) Is(target error) bool {
	return target == domain.ErrValidation
}

// First primer mensaje en orden de campo; se usa para el toast.
func (e Errors) First() string {
	msg := e.Error()
	if i := strings.Index(msg, "; "); i >= 0 {
		return msg[:i]
	}
	return msg
}

// AsErrors extrae los errores por campo si err los contiene.
func AsErrors(err error) (Errors, bool) {
	var ve Errors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// checker acumula errores; solo se guarda el primero por campo.
type checker struct {
	errs Errors
}

func newChecker() *checker { return &checker{errs: Errors{}} }

func (c *checker) add(field, msg string) {
	if _, ok := c.errs[field]; !ok {
		c.errs[field] = msg
	}
}

func (c *checker) required(field, value, msg string) bool {
	if strings.TrimSpace(value) == "" {
		c.add(field, msg)
		return false
	}
	return true
}

func (c *checker) email(field, value string) {
	if c.required(field, value, "El email es requerido") && !emailRe.MatchString(strings.TrimSpace(value)) {
		c.add(field, "Formato de email inválido")
	}
}

func (c *checker) phone(field, value string) {
	if v := strings.TrimSpace(value); v != "" && !phoneRe.MatchString(v) {
		c.add(field, "El teléfono debe tener exactamente 10 dígitos")
	}
}

func (c *checker) matches(field, a, b, msg string) {
	if a != b {
		c.add(field, msg)
	}
}

func (c *checker) integer(field, value, msg string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		c.add(field, msg)
		return 0, false
	}
	return n, true
}

func (c *checker) date(field, value, requiredMsg string) (time.Time, bool) {
	if !c.required(field, value, requiredMsg) {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		c.add(field, "Fecha inválida (use AAAA-MM-DD)")
		return time.Time{}, false
	}
	return t, true
}

func (c *checker) err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}
