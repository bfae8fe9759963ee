package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpggio/busybee/internal/auth"
)

func devTokenCmd(opts *rootOptions) *cobra.Command {
	var (
		email string
		name  string
		ttl   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "dev-token [uid]",
		Short: "Mint a development token accepted by the jwt auth provider",
		Long: `Mint an HS256 token signed with auth.jwt_secret (BUSYBEE_AUTH_JWT_SECRET).

Examples:
  busybee dev-token alice --email alice@example.com
  BUSYBEE_TOKEN=$(busybee dev-token alice) busybee tasks`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.Auth.JWTSecret == "" {
				return errors.New("auth.jwt_secret is not set")
			}

			id := auth.Identity{UID: args[0]}
			if email != "" {
				id.Email = &email
			}
			if name != "" {
				id.Name = &name
			}
			token, err := auth.SignDevToken(cfg.Auth.JWTSecret, id, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().StringVar(&name, "name", "", "name claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime (0 for no expiry)")
	return cmd
}
