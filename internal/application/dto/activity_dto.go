package dto

// ActivityEmployeeResponse empleado en el listado de actividad (GET /activity/employees).
type ActivityEmployeeResponse struct {
	EmployeeID FlexID `json:"employeeId"`
	UserID     string `json:"userId"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

// HistoryID identificador a usar en /activity/login-history/{userId}.
func (a ActivityEmployeeResponse) HistoryID() string {
	if a.UserID != "" {
		return a.UserID
	}
	return a.EmployeeID.String()
}

// LoginActivityLog registro de inicio de sesión.
type LoginActivityLog struct {
	Email           string  `json:"email"`
	LoginTime       string  `json:"loginTime"`
	LogoutTime      *string `json:"logoutTime"`
	IPAddress       string  `json:"ipAddress"`
	IsSuccessful    bool    `json:"isSuccessful"`
	SessionDuration *string `json:"sessionDuration"`
}

// LoginHistoryResponse respuesta de GET /activity/login-history/{userId}.
type LoginHistoryResponse struct {
	Logs []LoginActivityLog `json:"logs"`
}

// UserActivityLog acceso registrado por el backend.
type UserActivityLog struct {
	AccessedAt     string `json:"accessedAt"`
	URLAccessed    string `json:"urlAccessed"`
	ControllerName string `json:"controllerName"`
	ActionName     string `json:"actionName"`
	IPAddress      string `json:"ipAddress"`
	UserAgent      string `json:"userAgent"`
}

// LoginHistoryRow fila del historial ya formateada para la vista.
type LoginHistoryRow struct {
	Email        string
	LoginTime    string
	LogoutTime   string
	Duration     string
	IPAddress    string
	IsSuccessful bool
}
