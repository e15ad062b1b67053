package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/ems-web/internal/application/dto"
	"github.com/jhoicas/ems-web/internal/application/ports"
	"github.com/jhoicas/ems-web/internal/application/validation"
	"github.com/jhoicas/ems-web/internal/domain"
)

// AccountUseCase login, registro y recuperación de contraseña.
type AccountUseCase struct {
	gw ports.AccountGateway
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(gw ports.AccountGateway) *AccountUseCase {
	return &AccountUseCase{gw: gw}
}

// Login valida credenciales y las envía al backend. La respuesta debe traer token.
func (uc *AccountUseCase) Login(ctx context.Context, in dto.LoginForm) (*dto.LoginResponse, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Login(in); err != nil {
		return nil, err
	}
	out, err := uc.gw.Login(ctx, in)
	if err != nil {
		return nil, err
	}
	if out == nil || strings.TrimSpace(out.Token) == "" {
		return nil, fmt.Errorf("%w: respuesta de login sin token", domain.ErrBackend)
	}
	return out, nil
}

func (uc *AccountUseCase) Register(ctx context.Context, in dto.RegisterForm) error {
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.Register(in); err != nil {
		return err
	}
	return uc.gw.Register(ctx, in)
}

func (uc *AccountUseCase) ForgotPassword(ctx context.Context, in dto.ForgotPasswordForm) error {
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.ForgotPassword(in); err != nil {
		return err
	}
	return uc.gw.ForgotPassword(ctx, in)
}

func (uc *AccountUseCase) VerifyOTP(ctx context.Context, in dto.VerifyOTPForm) error {
	in.OTP = strings.TrimSpace(in.OTP)
	if err := validation.VerifyOTP(in); err != nil {
		return err
	}
	return uc.gw.VerifyOTP(ctx, in)
}

func (uc *AccountUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordForm) error {
	if err := validation.ResetPassword(in); err != nil {
		return err
	}
	return uc.gw.ResetPassword(ctx, in)
}

func (uc *AccountUseCase) ChangePassword(ctx context.Context, in dto.ChangePasswordForm) error {
	if err := validation.ChangePassword(in); err != nil {
		return err
	}
	return uc.gw.ChangePassword(ctx, in)
}

// Logout avisa al backend; el llamador borra la sesión local aunque esto falle.
func (uc *AccountUseCase) Logout(ctx context.Context) error {
	return uc.gw.Logout(ctx)
}
