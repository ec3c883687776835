// Command token issues access tokens for local setups where no identity
// provider is running. It signs with the same JWT_SECRET the server verifies.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"eshop-be/internal/auth"
	"eshop-be/internal/utils"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		secret string
		role   string
		staff  bool
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:          "token <user-id>",
		Short:        "Issue a signed access token for a user id",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				_ = godotenv.Load()
				secret = os.Getenv("JWT_SECRET")
			}
			if staff {
				role = utils.RoleAdmin
			}
			if ttl <= 0 {
				return errors.New("ttl must be positive")
			}

			token, err := auth.GenerateToken([]byte(secret), args[0], role, ttl)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", "", "signing secret (defaults to JWT_SECRET)")
	cmd.Flags().StringVar(&role, "role", "", "role claim")
	cmd.Flags().BoolVar(&staff, "staff", false, "issue a staff token")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}
