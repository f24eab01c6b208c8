package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/jhoicas/bilemo-api/internal/application/auth"
	"github.com/jhoicas/bilemo-api/internal/application/usecase"
	"github.com/jhoicas/bilemo-api/internal/application/validation"
	"github.com/jhoicas/bilemo-api/internal/infrastructure/cache"
	httpRouter "github.com/jhoicas/bilemo-api/internal/interfaces/http"
	"github.com/jhoicas/bilemo-api/pkg/config"
	"github.com/jhoicas/bilemo-api/pkg/logger"
)

func newServeCmd(e *env) *cobra.Command {
	var withDocs bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Inicia el servidor HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), e.cfg, e.log, withDocs)
		},
	}
	cmd.Flags().BoolVar(&withDocs, "docs", true, "Servir Swagger UI en /docs (requiere ./docs/swagger.json)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, log *logger.Logger, withDocs bool) error {
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.App.Storage).
		Msg("iniciando aplicación")

	clk := clock.New()
	st, err := openStorage(ctx, cfg, log, clk.Now())
	if err != nil {
		return err
	}
	defer st.close()

	if cfg.Token.Secret == "" {
		cfg.Token.Secret = uuid.NewString()
		log.Warn().Msg("TOKEN_SECRET vacío: se usa un secreto aleatorio, las credenciales emitidas no sobreviven al reinicio")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app := buildApp(cfg, st, log, clk, reg)
	if withDocs {
		// Swagger UI en local: http://localhost:<port>/docs
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "BileMo API",
		}))
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}

// buildApp arma casos de uso, caché, métricas y rutas sobre st.
func buildApp(cfg *config.Config, st *storage, log *logger.Logger, clk clock.Clock, reg *prometheus.Registry) *fiber.App {
	tagCache := cache.NewInstrumentedCache(cache.NewTagCache(), cache.NewMetrics(reg))
	resolver := auth.NewCredentialResolver(st.repos.Users, clk, cfg.Token.ClearExpired, log.Named("auth"))
	pipeline := usecase.NewPipeline(resolver, st.repos.Customers, tagCache, clk, log.Named("pipeline"))

	phoneUC := usecase.NewPhoneUseCase(pipeline, st.repos.Phones, cfg.Pagination.PhonesPerPage)
	userUC := usecase.NewUserUseCase(pipeline, st.repos.Users, validation.NewUserValidator(st.repos.Users), cfg.Pagination.UsersPerPage)
	authUC := auth.NewAuthUseCase(st.repos.Users, auth.TokenConfig{
		Secret:     cfg.Token.Secret,
		TTLMinutes: cfg.Token.TTLMinutes,
		Issuer:     cfg.Token.Issuer,
	}, clk)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))
	app.Use(httpRouter.NewHTTPMetrics(reg).Middleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler(reg))

	httpRouter.Router(app, httpRouter.RouterDeps{
		PhoneUC: phoneUC,
		UserUC:  userUC,
		AuthUC:  authUC,
		Logger:  log.Named("http"),
	})
	return app
}
