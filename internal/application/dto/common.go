package dto

import (
	"sort"
	"strings"
)

// ErrorResponse cuerpo de error que devuelve el backend. Según el endpoint llega
// como {message}, {code,message} o como ProblemDetails de ASP.NET ({title, errors}).
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Title   string              `json:"title"`
	Errors  map[string][]string `json:"errors"`
}

// Text devuelve el mensaje legible más específico disponible, o "" si no hay ninguno.
func (e ErrorResponse) Text() string {
	if m := strings.TrimSpace(e.Message); m != "" {
		return m
	}
	if len(e.Errors) > 0 {
		parts := make([]string, 0, len(e.Errors))
		for _, msgs := range e.Errors {
			parts = append(parts, msgs...)
		}
		if len(parts) > 0 {
			sort.Strings(parts)
			return strings.Join(parts, " ")
		}
	}
	return strings.TrimSpace(e.Title)
}

// MessageResponse respuesta genérica {message} de operaciones de escritura.
type MessageResponse struct {
	Message string `json:"message"`
}
