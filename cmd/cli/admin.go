package cli

import (
	"context"
	"fmt"

	"restaurant-booking/internal/domain/user"
	"restaurant-booking/internal/infra/db"
	"restaurant-booking/internal/infra/uow"
	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/password"
	"restaurant-booking/internal/usecase/shared"

	"github.com/spf13/cobra"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage staff accounts",
	}
	cmd.AddCommand(newAdminCreateCmd())
	cmd.AddCommand(newHashPasswordCmd())
	return cmd
}

func newAdminCreateCmd() *cobra.Command {
	var email, plain, role string

	c := &cobra.Command{
		Use:   "create",
		Short: "Provision a staff account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			account, err := newStaffAccount(email, plain, role)
			if err != nil {
				return err
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			pool, cleanup, err := db.Connect(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer cleanup()

			err = uow.NewPostgresUoW(pool).Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				return tx.Users().Create(ctx, account)
			})
			if err != nil {
				return fmt.Errorf("create staff account: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s account %q\n", account.Role(), account.Email().Value())
			return nil
		},
	}

	c.Flags().StringVar(&email, "email", "", "login email")
	c.Flags().StringVar(&plain, "password", "", "initial password, at least 8 characters")
	c.Flags().StringVar(&role, "role", user.RoleViewer.String(), "viewer, operator or admin")
	_ = c.MarkFlagRequired("email")
	_ = c.MarkFlagRequired("password")
	return c
}

func newStaffAccount(email, plain, role string) (*user.User, error) {
	creds, err := user.NewCredentials(email, plain)
	if err != nil {
		return nil, err
	}
	r, err := user.NewRole(role)
	if err != nil {
		return nil, err
	}
	hash, err := password.HashPassword(creds.Password().Value())
	if err != nil {
		return nil, err
	}
	return user.NewUser(creds.Email(), hash, r), nil
}

func newHashPasswordCmd() *cobra.Command {
	var plain string

	c := &cobra.Command{
		Use:   "hash-password",
		Short: "Print a bcrypt hash for AUTH_RECOVERY_PASSWORD_HASH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := user.NewPassword(plain); err != nil {
				return err
			}
			hash, err := password.HashPassword(plain)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	c.Flags().StringVar(&plain, "password", "", "password to hash")
	_ = c.MarkFlagRequired("password")
	return c
}
