// Package cli contiene los comandos de la línea de órdenes de ems-web.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/ems-web/pkg/config"
	"github.com/jhoicas/ems-web/pkg/logger"
)

// Version se fija al compilar con -ldflags "-X github.com/jhoicas/ems-web/internal/cli.Version=...".
var Version = "dev"

var flagLogLevel string

// NewRootCmd comando raíz. Sin subcomando arranca el servidor.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ems-web",
		Short:         "Front-end web del sistema de gestión de empleados",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Nivel de log (trace, debug, info, warn, error); por defecto LOG_LEVEL")

	root.AddCommand(
		newServeCmd(),
		newTokenCmd(),
		newVersionCmd(),
	)
	return root
}

// loadConfig carga y valida la configuración; --log-level tiene prioridad sobre LOG_LEVEL.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagLogLevel != "" {
		cfg.App.LogLevel = flagLogLevel
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg *config.Config) *logger.Logger {
	return logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
}
