package dto

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// DepartmentRef referencia embebida de departamento en un empleado.
type DepartmentRef struct {
	DepartmentID   int    `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
}

// EmployeeResponse empleado tal como lo devuelve el backend.
type EmployeeResponse struct {
	EmployeeID   int             `json:"employeeId"`
	FullName     string          `json:"fullName"`
	Email        string          `json:"email"`
	PhoneNumber  string          `json:"phoneNumber"`
	Role         string          `json:"role"`
	DepartmentID int             `json:"departmentId"`
	Department   *DepartmentRef  `json:"department,omitempty"`
	IsActive     bool            `json:"isActive"`
	LeaveBalance decimal.Decimal `json:"leaveBalance"`
	ManagerID    *int            `json:"managerId,omitempty"`
}

// DepartmentName nombre del departamento o "" si no viene embebido.
func (e EmployeeResponse) DepartmentName() string {
	if e.Department == nil {
		return ""
	}
	return e.Department.DepartmentName
}

// EmployeeProfileResponse respuesta de GET /employees/profile y /manager/profile.
type EmployeeProfileResponse struct {
	Employee    EmployeeResponse `json:"employee"`
	ManagerName string           `json:"managerName"`
}

// EmployeeForm campos tal como llegan del formulario HTML (todo texto).
type EmployeeForm struct {
	FullName     string `form:"fullName"`
	Email        string `form:"email"`
	PhoneNumber  string `form:"phoneNumber"`
	Role         string `form:"role"`
	DepartmentID string `form:"departmentId"`
	IsActive     string `form:"isActive"`
	LeaveBalance string `form:"leaveBalance"`
}

// EmployeeRequest payload tipado para crear/editar en el backend.
type EmployeeRequest struct {
	EmployeeID   int             `json:"employeeId,omitempty"`
	FullName     string          `json:"fullName"`
	Email        string          `json:"email"`
	PhoneNumber  string          `json:"phoneNumber"`
	Role         string          `json:"role"`
	DepartmentID int             `json:"departmentId"`
	IsActive     bool            `json:"isActive"`
	LeaveBalance decimal.Decimal `json:"leaveBalance"`
}

// EmployeeFilter criterios de GET /employees/filter. Vacío = sin filtro.
type EmployeeFilter struct {
	DepartmentID string `query:"departmentId"`
	Role         string `query:"role"`
	IsActive     string `query:"isActive"`
	Search       string `query:"search"`
}

// IsEmpty indica si no se eligió ningún criterio.
func (f EmployeeFilter) IsEmpty() bool {
	return f.DepartmentID == "" && f.Role == "" && f.IsActive == "" && f.Search == ""
}

// RoleOption opción de rol de GET /roles.
type RoleOption struct {
	ID   FlexID `json:"id"`
	Name string `json:"name"`
}

// CurrentMonthInfoResponse respuesta de GET /employees/current-month-info.
type CurrentMonthInfoResponse struct {
	CurrentMonth  string                 `json:"currentMonth"`
	EmployeeName  string                 `json:"employeeName"`
	LeaveRequests []LeaveRequestResponse `json:"leaveRequests"`
}

// Form rellena el formulario de edición con los datos actuales.
func (e EmployeeResponse) Form() EmployeeForm {
	active := "true"
	if !e.IsActive {
		active = "false"
	}
	dept := ""
	if e.DepartmentID > 0 {
		dept = strconv.Itoa(e.DepartmentID)
	}
	return EmployeeForm{
		FullName:     e.FullName,
		Email:        e.Email,
		PhoneNumber:  e.PhoneNumber,
		Role:         e.Role,
		DepartmentID: dept,
		IsActive:     active,
		LeaveBalance: e.LeaveBalance.String(),
	}
}
