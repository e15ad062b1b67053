package backend

import (
	"context"
	"net/http"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/ports"
)

var _ ports.AccountGateway = (*AccountGateway)(nil)

// AccountGateway endpoints /account/*.
type AccountGateway struct{ c *Client }

// NewAccountGateway construye el adaptador.
func NewAccountGateway(c *Client) *AccountGateway { return &AccountGateway{c: c} }

func (g *AccountGateway) Login(ctx context.Context, in dto.LoginForm) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := g.c.do(ctx, http.MethodPost, "/account/login", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g *AccountGateway) Register(ctx context.Context, in dto.RegisterForm) error {
	return g.c.do(ctx, http.MethodPost, "/account/register", nil, in, nil)
}

func (g *AccountGateway) ForgotPassword(ctx context.Context, in dto.ForgotPasswordForm) error {
	return g.c.do(ctx, http.MethodPost, "/account/forgotpassword", nil, in, nil)
}

func (g *AccountGateway) VerifyOTP(ctx context.Context, in dto.VerifyOTPForm) error {
	return g.c.do(ctx, http.MethodPost, "/account/verify-otp", nil, in, nil)
}

func (g *AccountGateway) ResetPassword(ctx context.Context, in dto.ResetPasswordForm) error {
	return g.c.do(ctx, http.MethodPost, "/account/reset-password", nil, in, nil)
}

func (g *AccountGateway) ChangePassword(ctx context.Context, in dto.ChangePasswordForm) error {
	return g.c.do(ctx, http.MethodPost, "/account/change-password", nil, in, nil)
}

func (g *AccountGateway) Logout(ctx context.Context) error {
	return g.c.do(ctx, http.MethodPost, "/account/logout", nil, nil, nil)
}
