package validation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Empleados
// ──────────────────────────────────────────────────────────────────────────────

func validEmployeeForm() dto.EmployeeForm {
	return dto.EmployeeForm{
		FullName:     "Ana Pérez",
		Email:        "ana@ems.test",
		PhoneNumber:  "3001234567",
		Role:         "Employee",
		DepartmentID: "3",
		IsActive:     "true",
		LeaveBalance: "12.5",
	}
}

func TestEmployee_FormularioValido(t *testing.T) {
	req, err := Employee(validEmployeeForm())
	require.NoError(t, err)

	assert.Equal(t, "Ana Pérez", req.FullName)
	assert.Equal(t, 3, req.DepartmentID)
	assert.True(t, req.IsActive)
	assert.True(t, decimal.RequireFromString("12.5").Equal(req.LeaveBalance))
}

func TestEmployee_CualquierCampoRequeridoVacioFalla(t *testing.T) {
	blank := map[string]func(*dto.EmployeeForm){
		"fullName":     func(f *dto.EmployeeForm) { f.FullName = "  " },
		"email":        func(f *dto.EmployeeForm) { f.Email = "" },
		"role":         func(f *dto.EmployeeForm) { f.Role = "" },
		"departmentId": func(f *dto.EmployeeForm) { f.DepartmentID = "" },
		"leaveBalance": func(f *dto.EmployeeForm) { f.LeaveBalance = "" },
	}
	for field, mutate := range blank {
		t.Run(field, func(t *testing.T) {
			form := validEmployeeForm()
			mutate(&form)

			_, err := Employee(form)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			ve, ok := AsErrors(err)
			require.True(t, ok)
			assert.Contains(t, ve, field)
		})
	}
}

func TestEmployee_TelefonoYEmailConFormato(t *testing.T) {
	form := validEmployeeForm()
	form.PhoneNumber = "12345"
	form.Email = "sin-arroba"

	_, err := Employee(form)
	ve, ok := AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "El teléfono debe tener exactamente 10 dígitos", ve["phoneNumber"])
	assert.Equal(t, "Formato de email inválido", ve["email"])
}

func TestEmployee_TelefonoOpcional(t *testing.T) {
	form := validEmployeeForm()
	form.PhoneNumber = ""
	_, err := Employee(form)
	assert.NoError(t, err)
}

func TestEmployee_SaldoNegativoONoNumerico(t *testing.T) {
	form := validEmployeeForm()
	form.LeaveBalance = "-1"
	_, err := Employee(form)
	assert.Error(t, err)

	form.LeaveBalance = "diez"
	_, err = Employee(form)
	assert.Error(t, err)
}

func TestEmployee_Inactivo(t *testing.T) {
	form := validEmployeeForm()
	form.IsActive = "false"
	req, err := Employee(form)
	require.NoError(t, err)
	assert.False(t, req.IsActive)
}

// ──────────────────────────────────────────────────────────────────────────────
// Departamentos
// ──────────────────────────────────────────────────────────────────────────────

func TestDepartment_JefeOpcionalAlCrear(t *testing.T) {
	req, err := Department(dto.DepartmentForm{DepartmentName: "Ventas"}, false)
	require.NoError(t, err)
	assert.Nil(t, req.ManagerID)
}

func TestDepartment_JefeRequeridoAlEditar(t *testing.T) {
	_, err := Department(dto.DepartmentForm{DepartmentName: "Ventas"}, true)
	ve, ok := AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, ve, "managerId")
}

func TestDepartment_NombreRequeridoYJefeNumerico(t *testing.T) {
	_, err := Department(dto.DepartmentForm{DepartmentName: "", ManagerID: "x"}, false)
	ve, ok := AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, ve, "departmentName")
	assert.Contains(t, ve, "managerId")

	req, err := Department(dto.DepartmentForm{DepartmentName: "TI", ManagerID: "8"}, true)
	require.NoError(t, err)
	require.NotNil(t, req.ManagerID)
	assert.Equal(t, 8, *req.ManagerID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Permisos
// ──────────────────────────────────────────────────────────────────────────────

func TestLeaveApply_FinAnteriorAInicioSeRechaza(t *testing.T) {
	_, err := LeaveApply(dto.LeaveApplyForm{StartDate: "2025-06-10", EndDate: "2025-06-01", Reason: "viaje"}, "5")
	ve, ok := AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "La fecha de fin no puede ser anterior a la de inicio", ve["endDate"])
}

func TestLeaveApply_MismoDiaEsValido(t *testing.T) {
	req, err := LeaveApply(dto.LeaveApplyForm{StartDate: "2025-06-10", EndDate: "2025-06-10", Reason: " médico "}, "5")
	require.NoError(t, err)
	assert.Equal(t, "5", req.EmployeeID)
	assert.Equal(t, "médico", req.Reason)
}

func TestLeaveApply_CamposRequeridosYFormato(t *testing.T) {
	_, err := LeaveApply(dto.LeaveApplyForm{StartDate: "10/06/2025"}, "5")
	ve, ok := AsErrors(err)
	require.True(t, ok)
	assert.Contains(t, ve["startDate"], "Fecha inválida")
	assert.Contains(t, ve, "endDate")
	assert.Contains(t, ve, "reason")
}

func TestLeaveDecision(t *testing.T) {
	req, err := LeaveDecision(4, "Approved")
	require.NoError(t, err)
	assert.Equal(t, "approved", req.Status)

	_, err = LeaveDecision(4, "maybe")
	assert.Error(t, err)
	_, err = LeaveDecision(0, "rejected")
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cuenta
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_ContrasenasDistintas(t *testing.T) {
	err := Register(dto.RegisterForm{FullName: "A", Email: "a@b.co", Password: "x1", ConfirmPassword: "x2"})
	ve, ok := AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "Las contraseñas no coinciden", ve["confirmPassword"])
}

func TestLogin_Requeridos(t *testing.T) {
	assert.Error(t, Login(dto.LoginForm{}))
	assert.NoError(t, Login(dto.LoginForm{Email: "a@b.co", Password: "x"}))
}

func TestResetYChangePassword(t *testing.T) {
	assert.Error(t, ResetPassword(dto.ResetPasswordForm{Email: "a@b.co", OTP: "1", NewPassword: "n", ConfirmPassword: "m"}))
	assert.NoError(t, ResetPassword(dto.ResetPasswordForm{Email: "a@b.co", OTP: "1", NewPassword: "n", ConfirmPassword: "n"}))
	assert.Error(t, ChangePassword(dto.ChangePasswordForm{NewPassword: "n", ConfirmPassword: "n"}))
	assert.NoError(t, VerifyOTP(dto.VerifyOTPForm{Email: "a@b.co", OTP: "123456"}))
	assert.Error(t, ForgotPassword(dto.ForgotPasswordForm{}))
}

func TestErrors_FirstOrdenadoPorCampo(t *testing.T) {
	ve := Errors{"reason": "motivo", "endDate": "fin"}
	assert.Equal(t, "fin", ve.First())
	assert.Equal(t, "fin; motivo", ve.Error())
}
