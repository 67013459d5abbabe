package cli

import (
	"errors"
	"fmt"
	"time"

	"kanban/internal/auth"

	"github.com/spf13/cobra"
)

func newTokenCmd(app *App) *cobra.Command {
	var subject string
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token for the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.JWTSecret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			token, err := auth.GenerateToken(subject, app.JWTSecret, ttl)
			if err != nil {
				return fmt.Errorf("signing token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "kanban-client", "Token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", app.TokenTTL, "Token lifetime")

	return cmd
}
