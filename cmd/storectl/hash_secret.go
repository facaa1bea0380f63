package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/services"
)

// newHashSecretCmd prints a bcrypt hash suitable for ADMIN_SECRET_HASH.
// The secret is read from the first argument or stdin.
func newHashSecretCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-secret [secret]",
		Short: "Hash the admin shared secret for ADMIN_SECRET_HASH",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := ""
			if len(args) == 1 {
				secret = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read secret: %w", err)
				}
				secret = strings.TrimSpace(line)
			}
			if len(secret) < 8 {
				return errors.New("secret must be at least 8 characters")
			}

			hash, err := services.HashSecret(secret)
			if err != nil {
				return fmt.Errorf("hash secret: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
