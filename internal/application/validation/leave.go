package validation

import (
	"strings"

	"github.com/jhoicas/ems-web/internal/application/dto"
)

// LeaveApply fechas válidas con fin >= inicio y motivo requerido.
func LeaveApply(in dto.LeaveApplyForm, employeeID string) (dto.LeaveApplyRequest, error) {
	c := newChecker()
	start, okStart := c.date("startDate", in.StartDate, "La fecha de inicio es requerida")
	end, okEnd := c.date("endDate", in.EndDate, "La fecha de fin es requerida")
	if okStart && okEnd && end.Before(start) {
		c.add("endDate", "La fecha de fin no puede ser anterior a la de inicio")
	}
	c.required("reason", in.Reason, "El motivo es requerido")

	if err := c.err(); err != nil {
		return dto.LeaveApplyRequest{}, err
	}
	return dto.LeaveApplyRequest{
		EmployeeID: employeeID,
		StartDate:  start.Format(DateLayout),
		EndDate:    end.Format(DateLayout),
		Reason:     strings.TrimSpace(in.Reason),
	}, nil
}

// LeaveDecision solo acepta approved | rejected (sin distinguir mayúsculas).
func LeaveDecision(id int, status string) (dto.LeaveDecisionRequest, error) {
	c := newChecker()
	s := strings.ToLower(strings.TrimSpace(status))
	if s != "approved" && s != "rejected" {
		c.add("status", "Decisión inválida")
	}
	if id <= 0 {
		c.add("id", "Solicitud inválida")
	}
	if err := c.err(); err != nil {
		return dto.LeaveDecisionRequest{}, err
	}
	return dto.LeaveDecisionRequest{ID: id, Status: s}, nil
}
