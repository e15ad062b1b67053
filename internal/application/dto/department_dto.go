package dto

import "strconv"

// ManagerRef referencia embebida al jefe del departamento.
type ManagerRef struct {
	EmployeeID int    `json:"employeeId"`
	FullName   string `json:"fullName"`
}

// DepartmentResponse departamento tal como lo devuelve el backend.
type DepartmentResponse struct {
	DepartmentID   int         `json:"departmentId"`
	DepartmentName string      `json:"departmentName"`
	ManagerID      *int        `json:"managerId,omitempty"`
	Manager        *ManagerRef `json:"manager,omitempty"`
}

// ManagerName nombre del jefe o "" si no tiene.
func (d DepartmentResponse) ManagerName() string {
	if d.Manager == nil {
		return ""
	}
	return d.Manager.FullName
}

// DepartmentForm campos del formulario HTML.
type DepartmentForm struct {
	DepartmentName string `form:"departmentName"`
	ManagerID      string `form:"managerId"`
}

// DepartmentRequest payload tipado para crear/editar.
type DepartmentRequest struct {
	DepartmentID   int    `json:"departmentId,omitempty"`
	DepartmentName string `json:"departmentName"`
	ManagerID      *int   `json:"managerId,omitempty"`
}

// Form rellena el formulario de edición con los datos actuales.
func (d DepartmentResponse) Form() DepartmentForm {
	f := DepartmentForm{DepartmentName: d.DepartmentName}
	switch {
	case d.ManagerID != nil:
		f.ManagerID = strconv.Itoa(*d.ManagerID)
	case d.Manager != nil && d.Manager.EmployeeID > 0:
		f.ManagerID = strconv.Itoa(d.Manager.EmployeeID)
	}
	return f
}
