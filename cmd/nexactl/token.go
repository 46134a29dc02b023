package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"nexaterminal/internal/service"
)

func newTokenCmd() *cobra.Command {
	var (
		secret string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token <userID>",
		Short: "Issue a user token for local testing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = os.Getenv("JWT_SECRET")
			}
			if secret == "" {
				return errors.New("no signing secret: pass --secret or set JWT_SECRET")
			}
			token, err := service.NewAuthService(secret).IssueUserToken(args[0], ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&secret, "secret", "", "Signing secret (defaults to JWT_SECRET)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	return cmd
}
