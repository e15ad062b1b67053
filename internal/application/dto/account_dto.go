package dto

// LoginForm formulario de inicio de sesión.
type LoginForm struct {
	Email      string `form:"email" json:"email"`
	Password   string `form:"password" json:"password"`
	RememberMe bool   `form:"rememberMe" json:"rememberMe"`
}

// LoginResponse respuesta del backend a POST /account/login.
type LoginResponse struct {
	Token      string   `json:"token"`
	Roles      []string `json:"roles"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	EmployeeID FlexID   `json:"employeeId"`
}

// RegisterForm formulario de registro.
type RegisterForm struct {
	FullName        string `form:"fullName" json:"fullName"`
	Email           string `form:"email" json:"email"`
	PhoneNumber     string `form:"phoneNumber" json:"phoneNumber"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword"`
}

// ForgotPasswordForm solicita el envío de un OTP al email.
type ForgotPasswordForm struct {
	Email string `form:"email" json:"email"`
}

// VerifyOTPForm valida el OTP recibido por email.
type VerifyOTPForm struct {
	Email string `form:"email" json:"email"`
	OTP   string `form:"otp" json:"otp"`
}

// ResetPasswordForm fija una contraseña nueva tras verificar el OTP.
type ResetPasswordForm struct {
	Email           string `form:"email" json:"email"`
	OTP             string `form:"otp" json:"otp"`
	NewPassword     string `form:"newPassword" json:"newPassword"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword"`
}

// ChangePasswordForm cambio de contraseña de un usuario autenticado.
type ChangePasswordForm struct {
	OldPassword     string `form:"oldPassword" json:"oldPassword"`
	NewPassword     string `form:"newPassword" json:"newPassword"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword"`
}
