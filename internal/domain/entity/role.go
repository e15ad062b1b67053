package entity

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role etiqueta de permisos del conjunto cerrado que emite el backend.
type Role string

// Roles válidos. RoleNone representa "sin rol reconocido".
const (
	RoleNone     Role = ""
	RoleAdmin    Role = "Admin"
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

// AllRoles conjunto cerrado en orden de privilegio.
var AllRoles = []Role{RoleAdmin, RoleManager, RoleEmployee}

// ParseRole normaliza una etiqueta ("admin", "ADMIN", " Admin ") al conjunto cerrado.
// Devuelve RoleNone si la etiqueta no pertenece a él.
func ParseRole(label string) Role {
	// cases.Caser no es seguro para uso concurrente: uno por llamada.
	r := Role(cases.Title(language.Und).String(strings.TrimSpace(label)))
	for _, known := range AllRoles {
		if r == known {
			return r
		}
	}
	return RoleNone
}

// In indica si el rol pertenece a la lista permitida. RoleNone nunca pertenece.
func (r Role) In(allowed []Role) bool {
	if r == RoleNone {
		return false
	}
	for _, a := range allowed {
		if a == r {
			return true
		}
	}
	return false
}

// HomePath página de inicio según rol.
func (r Role) HomePath() string {
	switch r {
	case RoleAdmin:
		return "/dashboard"
	case RoleManager:
		return "/manager/profile"
	case RoleEmployee:
		return "/employee/profile"
	default:
		return "/unauthorized"
	}
}

func (r Role) String() string { return string(r) }
