package http

import (
	"github.com/jhoicas/ems-web/internal/domain/entity"
)

var (
	adminOnly        = []entity.Role{entity.RoleAdmin}
	managerOnly      = []entity.Role{entity.RoleManager}
	adminOrManager   = []entity.Role{entity.RoleAdmin, entity.RoleManager}
	managerOrEmpl    = []entity.Role{entity.RoleManager, entity.RoleEmployee}
	anyAuthenticated = entity.AllRoles
)

// access tabla de rutas protegidas: patrón de ruta → roles permitidos. Las rutas que
// no aparecen aquí son públicas. El router y el navbar se derivan de esta tabla.
var access = map[string][]entity.Role{
	"/account/changepassword": anyAuthenticated,

	"/dashboard": adminOnly,

	"/employee/employeelist":     adminOnly,
	"/employee/employeelist.pdf": adminOnly,
	"/employee/create":           adminOnly,
	"/employee/edit/:id":         adminOnly,
	"/employee/delete/:id":       adminOnly,
	"/employee/filter":           adminOnly,
	"/employee/managerslist":     adminOnly,

	"/employee/profile":           managerOrEmpl,
	"/employee/monthlyreport":     managerOrEmpl,
	"/employee/monthlyreport.pdf": managerOrEmpl,

	"/department":            adminOnly,
	"/department/create":     adminOnly,
	"/department/edit/:id":   adminOnly,
	"/department/delete/:id": adminOnly,

	"/leave/apply":             managerOrEmpl,
	"/leave/myleaves":          managerOrEmpl,
	"/leave/approvelist":       adminOnly,
	"/leave/employeeleavelist": managerOnly,
	"/leave/approval/:id":      adminOrManager,

	"/manager/profile":      managerOnly,
	"/manager/subordinates": managerOnly,

	"/activity":                      adminOnly,
	"/activity/loginhistory/:userId": adminOnly,
	"/activity/recentactivity":       adminOnly,
}

// RolesFor roles permitidos de una ruta protegida; ok=false si la ruta es pública.
func RolesFor(path string) ([]entity.Role, bool) {
	r, ok := access[path]
	return r, ok
}

// NavLink enlace del navbar.
type NavLink struct {
	Label  string
	Path   string
	Active bool
}

// navOrder enlaces del navbar en orden de aparición; la visibilidad sale de access.
var navOrder = []NavLink{
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Mi perfil", Path: "/manager/profile"},
	{Label: "Mi perfil", Path: "/employee/profile"},
	{Label: "Empleados", Path: "/employee/employeelist"},
	{Label: "Filtrar", Path: "/employee/filter"},
	{Label: "Jefes", Path: "/employee/managerslist"},
	{Label: "Departamentos", Path: "/department"},
	{Label: "Mi equipo", Path: "/manager/subordinates"},
	{Label: "Solicitar permiso", Path: "/leave/apply"},
	{Label: "Mis permisos", Path: "/leave/myleaves"},
	{Label: "Reporte mensual", Path: "/employee/monthlyreport"},
	{Label: "Aprobaciones", Path: "/leave/approvelist"},
	{Label: "Aprobaciones", Path: "/leave/employeeleavelist"},
	{Label: "Actividad", Path: "/activity"},
	{Label: "Cambiar contraseña", Path: "/account/changepassword"},
}

// NavFor enlaces visibles para la sesión. Sin rol no hay enlaces.
func NavFor(s entity.Session, current string) []NavLink {
	if !s.HasRole() {
		return nil
	}
	links := make([]NavLink, 0, len(navOrder))
	for _, l := range navOrder {
		if roles, ok := access[l.Path]; ok && s.Role.In(roles) {
			l.Active = l.Path == current
			links = append(links, l)
		}
	}
	return links
}
