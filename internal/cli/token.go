// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ToddHoff/lambda-api/internal/utils"
)

// ErrNoSignKey is returned by the token command when no sign key is
// configured.
var ErrNoSignKey = errors.New("token sign key is not configured")

func newTokenCmd(opts *options) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a signed Bearer token for the /whoami route",
		Long: `Issue an HS256 JWT signed with APP_TOKEN_SIGN_KEY and issued by
APP_TOKEN_ISSUER (or the values from --config).

Examples:
  invoke token --sub user-42
  invoke token --sub user-42 --ttl 15m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.App.TokenSignKey == "" {
				return ErrNoSignKey
			}

			issuer := cfg.App.TokenIssuer
			if issuer == "" {
				issuer = "lambda-api"
			}

			token, err := utils.GenerateJWTToken(issuer, subject, ttl, cfg.App.TokenSignKey)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "sub", "", "Token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("sub")

	return cmd
}
