package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrJamesThe3rd/tally/internal/auth"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API bearer token for an owner",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.Auth.Secret == "" {
				return errors.New("JWT_SECRET is required")
			}

			owner, err := ownerFlag(cmd)
			if err != nil {
				return err
			}

			token, err := auth.New(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL).Issue(owner)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	addOwnerFlag(cmd)

	return cmd
}
