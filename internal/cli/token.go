package cli

import (
	"fmt"
	"time"

	"github.com/rogerio-castellano/commerce-dashboard/internal/auth"
	"github.com/rogerio-castellano/commerce-dashboard/internal/models"
	"github.com/spf13/cobra"
)

// newTokenCmd mints a bearer token with the configured secret, standing in for the
// identity provider during local development.
func newTokenCmd(a *app) *cobra.Command {
	var (
		identity models.Identity
		ttl      time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Auth.JWTSecret == "" {
				return errMissingSecret
			}
			token, err := auth.GenerateToken(identity, a.cfg.Auth.JWTSecret, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&identity.Subject, "subject", "dev-user", "token subject")
	cmd.Flags().StringVar(&identity.DisplayName, "name", "Developer", "display name claim")
	cmd.Flags().StringVar(&identity.Email, "email", "", "email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
