package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/bilemo-api/pkg/config"
	"github.com/jhoicas/bilemo-api/pkg/logger"

	_ "github.com/jhoicas/bilemo-api/docs"
)

// @title                       BileMo API
// @version                     1.0
// @description                 Catálogo de teléfonos y gestión de usuarios por cliente.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env configuración y logger compartidos por los subcomandos.
type env struct {
	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	e := &env{}
	root := &cobra.Command{
		Use:           "bilemo-api",
		Short:         "API REST del catálogo BileMo",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
			return nil
		},
	}
	root.AddCommand(newServeCmd(e), newMigrateCmd(e), newSeedCmd(e))
	return root
}
