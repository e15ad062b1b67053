package validation

import "github.com/jhoicas/ems-web/internal/application/dto"

// Login email y password requeridos.
func Login(in dto.LoginForm) error {
	c := newChecker()
	c.required("email", in.Email, "El email es requerido")
	c.required("password", in.Password, "La contraseña es requerida")
	return c.err()
}

// Register nombre, email válido, contraseña confirmada y teléfono opcional de 10 dígitos.
func Register(in dto.RegisterForm) error {
	c := newChecker()
	c.required("fullName", in.FullName, "El nombre completo es requerido")
	c.email("email", in.Email)
	c.phone("phoneNumber", in.PhoneNumber)
	if c.required("password", in.Password, "La contraseña es requerida") {
		c.matches("confirmPassword", in.Password, in.ConfirmPassword, "Las contraseñas no coinciden")
	}
	return c.err()
}

// ForgotPassword email requerido.
func ForgotPassword(in dto.ForgotPasswordForm) error {
	c := newChecker()
	c.email("email", in.Email)
	return c.err()
}

// VerifyOTP email y código requeridos.
func VerifyOTP(in dto.VerifyOTPForm) error {
	c := newChecker()
	c.required("email", in.Email, "El email es requerido")
	c.required("otp", in.OTP, "El código OTP es requerido")
	return c.err()
}

// ResetPassword email, OTP y contraseña nueva confirmada.
func ResetPassword(in dto.ResetPasswordForm) error {
	c := newChecker()
	c.required("email", in.Email, "El email es requerido")
	c.required("otp", in.OTP, "El código OTP es requerido")
	if c.required("newPassword", in.NewPassword, "La contraseña nueva es requerida") {
		c.matches("confirmPassword", in.NewPassword, in.ConfirmPassword, "Las contraseñas no coinciden")
	}
	return c.err()
}

// ChangePassword contraseña actual y nueva confirmada.
func ChangePassword(in dto.ChangePasswordForm) error {
	c := newChecker()
	c.required("oldPassword", in.OldPassword, "La contraseña actual es requerida")
	if c.required("newPassword", in.NewPassword, "La contraseña nueva es requerida") {
		c.matches("confirmPassword", in.NewPassword, in.ConfirmPassword, "Las contraseñas no coinciden")
	}
	return c.err()
}
