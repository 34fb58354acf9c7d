package cli

import (
	"fmt"

	"restaurant-booking/internal/infra/migrations"
	"restaurant-booking/internal/pkg/config"

	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the database schema",
	}
	cmd.AddCommand(
		newMigrateStepCmd("up", "Apply pending migrations", migrations.Up),
		newMigrateStepCmd("down", "Roll back every migration", migrations.Down),
	)
	return cmd
}

func newMigrateStepCmd(use, short string, run func(databaseURL string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			if err := run(migrations.URL(cfg.DB)); err != nil {
				return fmt.Errorf("migrate %s: %w", use, err)
			}
			return nil
		},
	}
}
