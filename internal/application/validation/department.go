package validation

import (
	"strings"

	"github.com/jhoicas/ems-web/internal/application/dto"
)

// Department valida el formulario de departamento. El jefe es obligatorio solo al editar.
func Department(in dto.DepartmentForm, requireManager bool) (dto.DepartmentRequest, error) {
	c := newChecker()
	c.required("departmentName", in.DepartmentName, "El nombre del departamento es requerido")

	var managerID *int
	if strings.TrimSpace(in.ManagerID) == "" {
		if requireManager {
			c.add("managerId", "El jefe del departamento es requerido")
		}
	} else if id, ok := c.integer("managerId", in.ManagerID, "Jefe inválido"); ok {
		managerID = &id
	}

	if err := c.err(); err != nil {
		return dto.DepartmentRequest{}, err
	}
	return dto.DepartmentRequest{
		DepartmentName: strings.TrimSpace(in.DepartmentName),
		ManagerID:      managerID,
	}, nil
}
