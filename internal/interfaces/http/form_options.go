package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ems-web/internal/application/dto"
)

// Opciones de los selectores que viajan ocultas en el formulario ("id|etiqueta"; los
// roles solo con su nombre), para re-renderizarlo tras un rechazo sin volver a
// consultar el backend.
const (
	departmentOptionField = "departmentOption"
	roleOptionField       = "roleOption"
	managerOptionField    = "managerOption"
)

type option struct {
	ID    string
	Label string
}

// postedOptions lee las opciones ocultas del body; las mal formadas se ignoran.
func postedOptions(c *fiber.Ctx, field string) []option {
	var out []option
	for _, raw := range c.Request().PostArgs().PeekMulti(field) {
		id, label, ok := strings.Cut(string(raw), "|")
		if !ok || strings.TrimSpace(id) == "" {
			continue
		}
		out = append(out, option{ID: id, Label: label})
	}
	return out
}

func postedDepartments(c *fiber.Ctx) []dto.DepartmentResponse {
	var out []dto.DepartmentResponse
	for _, o := range postedOptions(c, departmentOptionField) {
		id, err := strconv.Atoi(o.ID)
		if err != nil {
			continue
		}
		out = append(out, dto.DepartmentResponse{DepartmentID: id, DepartmentName: o.Label})
	}
	return out
}

func postedRoles(c *fiber.Ctx) []dto.RoleOption {
	var out []dto.RoleOption
	for _, raw := range c.Request().PostArgs().PeekMulti(roleOptionField) {
		if name := strings.TrimSpace(string(raw)); name != "" {
			out = append(out, dto.RoleOption{Name: name})
		}
	}
	return out
}

func postedManagers(c *fiber.Ctx) []dto.EmployeeResponse {
	var out []dto.EmployeeResponse
	for _, o := range postedOptions(c, managerOptionField) {
		id, err := strconv.Atoi(o.ID)
		if err != nil {
			continue
		}
		out = append(out, dto.EmployeeResponse{EmployeeID: id, FullName: o.Label})
	}
	return out
}
