package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/ems-web/internal/application/session"
	"github.com/jhoicas/ems-web/pkg/config"
	pkgjwt "github.com/jhoicas/ems-web/pkg/jwt"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Utilidades sobre tokens del backend",
	}
	cmd.AddCommand(newTokenDecodeCmd())
	return cmd
}

// newTokenDecodeCmd muestra la sesión que derivaría la aplicación de un token, para soporte.
func newTokenDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <jwt>",
		Short: "Muestra la sesión derivada de un token (sin verificar la firma)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return printDecoded(cmd.OutOrStdout(), args[0], claimKeys(cfg))
		},
	}
}

func printDecoded(w io.Writer, token string, keys pkgjwt.ClaimKeys) error {
	s, err := session.Derive(token, keys)
	if err != nil {
		return err
	}
	id, err := pkgjwt.Decode(token, keys)
	if err != nil {
		return err
	}

	role := s.Role.String()
	if role == "" {
		role = "(sin rol reconocido)"
	}
	fmt.Fprintf(w, "sesión:   %t\n", s.LoggedIn)
	fmt.Fprintf(w, "rol:      %s\n", role)
	fmt.Fprintf(w, "roles:    %v\n", id.Roles)
	fmt.Fprintf(w, "sujeto:   %s\n", s.Subject)
	fmt.Fprintf(w, "nombre:   %s\n", s.Name)
	fmt.Fprintf(w, "email:    %s\n", s.Email)
	if !id.ExpiresAt.IsZero() {
		fmt.Fprintf(w, "expira:   %s\n", id.ExpiresAt.Format(time.RFC3339))
	}
	return nil
}
