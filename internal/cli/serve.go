package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"

	"github.com/jhoicas/ems-web/internal/application/session"
	"github.com/jhoicas/ems-web/internal/application/usecase"
	"github.com/jhoicas/ems-web/internal/infrastructure/backend"
	"github.com/jhoicas/ems-web/internal/infrastructure/cookie"
	infrapdf "github.com/jhoicas/ems-web/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/ems-web/internal/interfaces/http"
	"github.com/jhoicas/ems-web/pkg/config"
	pkgjwt "github.com/jhoicas/ems-web/pkg/jwt"
	"github.com/jhoicas/ems-web/pkg/logger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Arranca el servidor HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log := newLogger(cfg)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.BaseURL).
		Str("version", Version).
		Msg("iniciando aplicación")

	app, err := buildApp(cfg, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.HTTP.Addr())
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("servidor HTTP: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}

// buildApp conecta cliente del backend, gateways, casos de uso y sesión con el router.
func buildApp(cfg *config.Config, log *logger.Logger) (*fiber.App, error) {
	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout(), log)

	accountGW := backend.NewAccountGateway(client)
	employeeGW := backend.NewEmployeeGateway(client)
	departmentGW := backend.NewDepartmentGateway(client)
	leaveGW := backend.NewLeaveGateway(client)
	managerGW := backend.NewManagerGateway(client)
	activityGW := backend.NewActivityGateway(client)
	dashboardGW := backend.NewDashboardGateway(client)

	// PDF: reporte mensual de permisos y nómina de empleados
	reports := infrapdf.NewMarotoReportGenerator()

	cookies := cookie.NewStore(cookie.Options{
		HashKey:  cfg.Cookie.HashKey,
		BlockKey: cfg.Cookie.BlockKey,
		Secure:   cfg.Cookie.Secure,
	})
	sessions, err := session.NewProvider(cookies, claimKeys(cfg), cfg.Session.CacheSize, log)
	if err != nil {
		return nil, fmt.Errorf("sesiones: %w", err)
	}

	return httpRouter.NewServer(httpRouter.RouterDeps{
		AppName:        cfg.App.Name,
		Sessions:       sessions,
		Cookies:        cookies,
		Logger:         log,
		BackendTimeout: cfg.Backend.Timeout(),

		AccountUC:    usecase.NewAccountUseCase(accountGW),
		EmployeeUC:   usecase.NewEmployeeUseCase(employeeGW, reports),
		DepartmentUC: usecase.NewDepartmentUseCase(departmentGW, employeeGW),
		LeaveUC:      usecase.NewLeaveUseCase(leaveGW),
		ManagerUC:    usecase.NewManagerUseCase(managerGW),
		ActivityUC:   usecase.NewActivityUseCase(activityGW),
		DashboardUC:  usecase.NewDashboardUseCase(dashboardGW),
	})
}

func claimKeys(cfg *config.Config) pkgjwt.ClaimKeys {
	return pkgjwt.DefaultClaimKeys().WithOverrides(cfg.Claims.Role, cfg.Claims.Name, cfg.Claims.Subject, cfg.Claims.Email)
}
