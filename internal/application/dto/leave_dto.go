package dto

// Estados de una solicitud de permiso.
const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"
)

// EmployeeRef referencia mínima al solicitante.
type EmployeeRef struct {
	EmployeeID int    `json:"employeeId"`
	FullName   string `json:"fullName"`
}

// LeaveRequestResponse solicitud de permiso tal como la devuelve el backend.
type LeaveRequestResponse struct {
	LeaveRequestID int          `json:"leaveRequestId"`
	EmployeeID     int          `json:"employeeId"`
	Employee       *EmployeeRef `json:"employee,omitempty"`
	StartDate      string       `json:"startDate"`
	EndDate        string       `json:"endDate"`
	Reason         string       `json:"reason"`
	Status         string       `json:"status"`
	RequestDate    string       `json:"requestDate"`
}

// EmployeeName nombre del solicitante o "" si no viene embebido.
func (l LeaveRequestResponse) EmployeeName() string {
	if l.Employee == nil {
		return ""
	}
	return l.Employee.FullName
}

// MyLeavesResponse respuesta de GET /leave/my/{userId}.
type MyLeavesResponse struct {
	EmployeeName string                 `json:"employeeName"`
	Leaves       []LeaveRequestResponse `json:"leaves"`
}

// LeaveApplyForm formulario de solicitud de permiso.
type LeaveApplyForm struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Reason    string `form:"reason"`
}

// LeaveApplyRequest payload de POST /leave/apply.
type LeaveApplyRequest struct {
	EmployeeID string `json:"employeeId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Reason     string `json:"reason"`
}

// LeaveDecisionRequest payload de POST /leave/approved/{id}.
type LeaveDecisionRequest struct {
	ID     int    `json:"id"`
	Status string `json:"status"` // approved | rejected
}
