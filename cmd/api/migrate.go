package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bilemo-api/internal/infrastructure/postgres"
)

func newMigrateCmd(e *env) *cobra.Command {
	var down, status bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Aplica las migraciones de PostgreSQL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, e.cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			defer pool.Close()
			db := postgres.OpenDB(pool)
			defer db.Close()

			switch {
			case status:
				return postgres.MigrationStatus(ctx, db)
			case down:
				if err := postgres.RollbackMigration(ctx, db); err != nil {
					return err
				}
				e.log.Info().Msg("última migración revertida")
			default:
				if err := postgres.RunMigrations(ctx, db); err != nil {
					return err
				}
				e.log.Info().Msg("migraciones aplicadas")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "Revertir la última migración")
	cmd.Flags().BoolVar(&status, "status", false, "Mostrar el estado de las migraciones")
	return cmd
}
