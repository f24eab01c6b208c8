package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bilemo-api/internal/infrastructure/fixtures"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/postgres"
)

func newSeedCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Carga los datos de demostración en PostgreSQL",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			pool, err := postgres.NewPool(ctx, e.cfg.DB)
			if err != nil {
				return fmt.Errorf("conexión a PostgreSQL: %w", err)
			}
			defer pool.Close()

			repos := postgresRepos(pool)
			existing, err := repos.Customers.List(ctx, 1, 0)
			if err != nil {
				return fmt.Errorf("consultar clientes: %w", err)
			}
			if len(existing) > 0 {
				e.log.Info().Msg("la base ya tiene clientes; no se cargan datos")
				return nil
			}

			data, err := fixtures.Load(ctx, repos, time.Now())
			if err != nil {
				return err
			}
			e.log.Info().
				Int("customers", len(data.Customers)).
				Int("users", len(data.Users)).
				Int("phones", len(data.Phones)).
				Msg("datos de demostración cargados")
			return nil
		},
	}
}
