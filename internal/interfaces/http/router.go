package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bilemo-api/internal/application/auth"
	"github.com/jhoicas/bilemo-api/internal/application/usecase"
	"github.com/jhoicas/bilemo-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PhoneUC *usecase.PhoneUseCase
	UserUC  *usecase.UserUseCase
	AuthUC  *auth.AuthUseCase
	Logger  *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Logger)
	api.Post("/auth/token", authHandler.Token)

	// El resto resuelve la credencial dentro de cada operación.
	protected := api.Group("", BearerToken())

	phones := protected.Group("/phones")
	phoneHandler := NewPhoneHandler(deps.PhoneUC)
	phones.Get("/", phoneHandler.List)
	phones.Get("/:id", phoneHandler.GetByID)

	users := protected.Group("/customers/:customer/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:user", userHandler.GetByID)
	users.Put("/:user", userHandler.Update)
	users.Delete("/:user", userHandler.Delete)
}
