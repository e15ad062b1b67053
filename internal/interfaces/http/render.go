package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ems-web/internal/application/usecase"
	"github.com/jhoicas/ems-web/internal/application/validation"
	"github.com/jhoicas/ems-web/internal/domain/entity"
	"github.com/jhoicas/ems-web/internal/infrastructure/cookie"
)

//go:embed views static
var assets embed.FS

// ViewData datos comunes a todas las páginas.
type ViewData struct {
	Title     string
	Session   entity.Session
	Nav       []NavLink
	Flash     *cookie.Flash
	Error     string            // banner de error de la página
	Expired   bool              // la sesión terminó durante el envío; el banner enlaza al login
	Errors    validation.Errors // errores por campo del formulario
	Form      interface{}
	Data      interface{}
	RequestID string
}

// FieldError mensaje del campo o "".
func (v *ViewData) FieldError(field string) string {
	if v == nil || v.Errors == nil {
		return ""
	}
	return v.Errors[field]
}

var templateFuncs = template.FuncMap{
	"decimal": func(d decimal.Decimal, places int32) string {
		return d.StringFixed(places)
	},
	"date": func(s string) string {
		if len(s) >= len(validation.DateLayout) {
			return s[:len(validation.DateLayout)]
		}
		return s
	},
	"datetime": usecase.FormatDateTime,
	"statusClass": func(status string) string {
		switch strings.ToLower(status) {
		case "approved":
			return "badge-ok"
		case "rejected":
			return "badge-bad"
		default:
			return "badge-warn"
		}
	},
	"yesno": func(b bool) string {
		if b {
			return "Sí"
		}
		return "No"
	},
	"roles":        func() []entity.Role { return entity.AllRoles },
	"approvalPath": approvalPath,
}

// Renderer plantillas html/template embebidas: layout + parciales + una por página.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parsea todas las plantillas al arrancar.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(assets, "views/layout.html", "views/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("views: parsear layout: %w", err)
	}

	r := &Renderer{pages: map[string]*template.Template{}}
	err = fs.WalkDir(assets, "views/pages", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || path.Ext(p) != ".html" {
			return err
		}
		t, err := base.Clone()
		if err != nil {
			return err
		}
		if _, err := t.ParseFS(assets, p); err != nil {
			return fmt.Errorf("views: parsear %s: %w", p, err)
		}
		name := strings.TrimSuffix(strings.TrimPrefix(p, "views/pages/"), ".html")
		r.pages[name] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// Render ejecuta la página name dentro del layout.
func (r *Renderer) Render(w io.Writer, name string, data *ViewData) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("views: página no encontrada: %s", name)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		return fmt.Errorf("views: render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Has indica si existe la página.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}
