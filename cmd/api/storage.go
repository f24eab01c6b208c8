package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/bilemo-api/internal/infrastructure/fixtures"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/memory"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/postgres"
	"github.com/jhoicas/bilemo-api/pkg/config"
	"github.com/jhoicas/bilemo-api/pkg/logger"
)

// storage repositorios del backend elegido y su cierre.
type storage struct {
	repos fixtures.Repos
	close func()
}

// openStorage abre PostgreSQL o, con APP_STORAGE=memory, un store en memoria con los datos de demostración.
func openStorage(ctx context.Context, cfg *config.Config, log *logger.Logger, now time.Time) (*storage, error) {
	if cfg.App.Storage == config.StorageMemory {
		store := memory.NewStore()
		repos := fixtures.Repos{Customers: store.Customers(), Phones: store.Phones(), Users: store.Users()}
		if _, err := fixtures.Load(ctx, repos, now); err != nil {
			return nil, fmt.Errorf("cargar datos de demostración: %w", err)
		}
		log.Info().Msg("almacenamiento en memoria con datos de demostración")
		return &storage{repos: repos, close: func() {}}, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return &storage{repos: postgresRepos(pool), close: pool.Close}, nil
}

func postgresRepos(pool *pgxpool.Pool) fixtures.Repos {
	return fixtures.Repos{
		Customers: postgres.NewCustomerRepository(pool),
		Phones:    postgres.NewPhoneRepository(pool),
		Users:     postgres.NewUserRepository(pool),
	}
}
