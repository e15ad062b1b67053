package entity

// Session estado derivado del token persistido; nunca se guarda como entidad propia.
type Session struct {
	LoggedIn bool
	Role     Role
	Subject  string // identificador del empleado en el backend
	Name     string
	Email    string
	Token    string
}

// Anonymous sesión de un visitante sin token válido.
func Anonymous() Session {
	return Session{}
}

// HasRole indica si hay sesión con un rol reconocido.
func (s Session) HasRole() bool {
	return s.LoggedIn && s.Role != RoleNone
}

// UserSummary resumen de usuario persistido junto al token tras el login.
type UserSummary struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	EmployeeID string   `json:"employeeId"`
}
