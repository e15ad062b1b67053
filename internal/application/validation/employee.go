package validation

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ems-web/internal/application/dto"
)

// Employee valida el formulario de alta/edición y lo convierte en payload tipado.
func Employee(in dto.EmployeeForm) (dto.EmployeeRequest, error) {
	c := newChecker()
	c.phone("phoneNumber", in.PhoneNumber)
	c.required("fullName", in.FullName, "El nombre completo es requerido")
	c.email("email", in.Email)
	c.required("role", in.Role, "El rol es requerido")

	var deptID int
	if c.required("departmentId", in.DepartmentID, "El departamento es requerido") {
		deptID, _ = c.integer("departmentId", in.DepartmentID, "Departamento inválido")
	}

	var balance decimal.Decimal
	if c.required("leaveBalance", in.LeaveBalance, "El saldo de días es requerido") {
		b, err := decimal.NewFromString(strings.TrimSpace(in.LeaveBalance))
		switch {
		case err != nil:
			c.add("leaveBalance", "El saldo de días debe ser numérico")
		case b.IsNegative():
			c.add("leaveBalance", "El saldo de días no puede ser negativo")
		default:
			balance = b
		}
	}

	if err := c.err(); err != nil {
		return dto.EmployeeRequest{}, err
	}
	return dto.EmployeeRequest{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.TrimSpace(in.Email),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Role:         strings.TrimSpace(in.Role),
		DepartmentID: deptID,
		IsActive:     in.IsActive != "false",
		LeaveBalance: balance,
	}, nil
}
