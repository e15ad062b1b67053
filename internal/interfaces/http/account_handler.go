package http

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/usecase"
	"github.com/jhoicas/ems-web/internal/domain/entity"
	"github.com/jhoicas/ems-web/internal/infrastructure/cookie"
)

// AccountHandler login, registro, recuperación y cambio de contraseña.
type AccountHandler struct {
	*Pages
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(p *Pages, uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{Pages: p, uc: uc}
}

// Home redirige a la página de inicio según el rol.
func (h *AccountHandler) Home(c *fiber.Ctx) error {
	s := GetSession(c)
	if !s.LoggedIn {
		return c.Redirect(LoginPath, fiber.StatusSeeOther)
	}
	return c.Redirect(s.Role.HomePath(), fiber.StatusSeeOther)
}

// LoginPage GET /account/login. Con sesión abierta redirige al inicio del rol.
func (h *AccountHandler) LoginPage(c *fiber.Ctx) error {
	if s := GetSession(c); s.HasRole() {
		return c.Redirect(s.Role.HomePath(), fiber.StatusSeeOther)
	}
	return h.render(c, fiber.StatusOK, "account/login", "Iniciar sesión", &ViewData{Form: dto.LoginForm{}})
}

// Login envía credenciales, guarda token y resumen y redirige a la página del rol.
func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var form dto.LoginForm
	_ = c.BodyParser(&form)
	vd := &ViewData{Form: dto.LoginForm{Email: form.Email}}

	ctx, cancel := h.backendCtx(c)
	defer cancel()

	resp, err := h.uc.Login(ctx, form)
	if err != nil {
		return h.formFailed(c, "account/login", "Iniciar sesión", vd, err, "Credenciales inválidas")
	}

	user := entity.UserSummary{
		Name:       resp.Name,
		Email:      resp.Email,
		Roles:      resp.Roles,
		EmployeeID: resp.EmployeeID.String(),
	}
	s, err := h.sessions.Login(c, resp.Token, user)
	if err != nil {
		return h.formFailed(c, "account/login", "Iniciar sesión", vd, err, "El servidor devolvió un token inválido")
	}
	name := s.Name
	if name == "" {
		name = form.Email
	}
	return h.redirect(c, s.Role.HomePath(), cookie.FlashSuccess, "Bienvenido, "+name)
}

// Logout avisa al backend (mejor esfuerzo) y borra la sesión local siempre.
func (h *AccountHandler) Logout(c *fiber.Ctx) error {
	if GetSession(c).LoggedIn {
		ctx, cancel := h.backendCtx(c)
		defer cancel()
		if err := h.uc.Logout(ctx); err != nil {
			h.log.Debug().Err(err).Msg("logout en backend fallido")
		}
	}
	h.sessions.Logout(c)
	return h.redirect(c, LoginPath, cookie.FlashInfo, "Sesión cerrada")
}

// RegisterPage GET /account/register.
func (h *AccountHandler) RegisterPage(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "account/register", "Registro", &ViewData{Form: dto.RegisterForm{}})
}

// Register POST /account/register. Al registrarse vuelve al login con un toast.
func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var form dto.RegisterForm
	_ = c.BodyParser(&form)
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	if err := h.uc.Register(ctx, form); err != nil {
		form.Password, form.ConfirmPassword = "", ""
		return h.formFailed(c, "account/register", "Registro", &ViewData{Form: form}, err, "No se pudo completar el registro")
	}
	return h.redirect(c, LoginPath, cookie.FlashSuccess, "Registro exitoso. Ya puedes iniciar sesión.")
}

// ForgotPasswordPage GET /account/forgotpassword.
func (h *AccountHandler) ForgotPasswordPage(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "account/forgotpassword", "Recuperar contraseña", &ViewData{Form: dto.ForgotPasswordForm{}})
}

// ForgotPassword solicita el OTP y continúa a la verificación con el email en la query.
func (h *AccountHandler) ForgotPassword(c *fiber.Ctx) error {
	var form dto.ForgotPasswordForm
	_ = c.BodyParser(&form)
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	if err := h.uc.ForgotPassword(ctx, form); err != nil {
		return h.formFailed(c, "account/forgotpassword", "Recuperar contraseña", &ViewData{Form: form}, err, "No se pudo enviar el código")
	}
	q := url.Values{"email": {strings.TrimSpace(form.Email)}}
	return h.redirect(c, "/account/verifyotp?"+q.Encode(), cookie.FlashSuccess, "Te enviamos un código a tu correo")
}

// VerifyOTPPage GET /account/verifyotp?email=.
func (h *AccountHandler) VerifyOTPPage(c *fiber.Ctx) error {
	form := dto.VerifyOTPForm{Email: c.Query("email")}
	return h.render(c, fiber.StatusOK, "account/verifyotp", "Verificar código", &ViewData{Form: form})
}

// VerifyOTP POST /account/verifyotp. Un código válido lleva al cambio de contraseña.
func (h *AccountHandler) VerifyOTP(c *fiber.Ctx) error {
	var form dto.VerifyOTPForm
	_ = c.BodyParser(&form)
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	if err := h.uc.VerifyOTP(ctx, form); err != nil {
		return h.formFailed(c, "account/verifyotp", "Verificar código", &ViewData{Form: form}, err, "Código inválido o vencido")
	}
	q := url.Values{"email": {strings.TrimSpace(form.Email)}, "otp": {strings.TrimSpace(form.OTP)}}
	return h.redirect(c, "/account/resetpassword?"+q.Encode(), cookie.FlashSuccess, "Código verificado")
}

// ResetPasswordPage GET /account/resetpassword?email=&otp=.
func (h *AccountHandler) ResetPasswordPage(c *fiber.Ctx) error {
	form := dto.ResetPasswordForm{Email: c.Query("email"), OTP: c.Query("otp")}
	return h.render(c, fiber.StatusOK, "account/resetpassword", "Nueva contraseña", &ViewData{Form: form})
}

// ResetPassword POST /account/resetpassword.
func (h *AccountHandler) ResetPassword(c *fiber.Ctx) error {
	var form dto.ResetPasswordForm
	_ = c.BodyParser(&form)
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	if err := h.uc.ResetPassword(ctx, form); err != nil {
		form.NewPassword, form.ConfirmPassword = "", ""
		return h.formFailed(c, "account/resetpassword", "Nueva contraseña", &ViewData{Form: form}, err, "No se pudo restablecer la contraseña")
	}
	return h.redirect(c, LoginPath, cookie.FlashSuccess, "Contraseña actualizada. Inicia sesión.")
}

// ChangePasswordPage GET /account/changepassword (cualquier rol).
func (h *AccountHandler) ChangePasswordPage(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusOK, "account/changepassword", "Cambiar contraseña", &ViewData{Form: dto.ChangePasswordForm{}})
}

// ChangePassword POST /account/changepassword.
func (h *AccountHandler) ChangePassword(c *fiber.Ctx) error {
	var form dto.ChangePasswordForm
	_ = c.BodyParser(&form)
	ctx, cancel := h.backendCtx(c)
	defer cancel()

	if err := h.uc.ChangePassword(ctx, form); err != nil {
		return h.formFailed(c, "account/changepassword", "Cambiar contraseña", &ViewData{Form: dto.ChangePasswordForm{}}, err, "No se pudo cambiar la contraseña")
	}
	return h.redirect(c, GetSession(c).Role.HomePath(), cookie.FlashSuccess, "Contraseña actualizada")
}

// Unauthorized página de acceso denegado.
func (h *AccountHandler) Unauthorized(c *fiber.Ctx) error {
	return h.render(c, fiber.StatusForbidden, "unauthorized", "Acceso denegado", nil)
}
