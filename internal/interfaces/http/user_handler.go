package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bilemo-api/internal/application/usecase"
)

// UserHandler maneja las peticiones HTTP de usuarios de un cliente.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios del cliente
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        customer  path   string  true   "ID del cliente"
// @Param        page      query  int     false  "Número de página (desde 1)"
// @Success      200       {array}  dto.UserListItem
// @Success      204       "Página vacía"
// @Failure      400       {array}  string
// @Failure      401       {array}  string
// @Failure      403       {array}  string
// @Failure      404       {array}  string
// @Router       /api/customers/{customer}/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	return writeEnvelope(c, h.uc.List(c.UserContext(), GetToken(c), c.Params("customer"), c.Query("page")))
}

// GetByID godoc
// @Summary      Detalle de un usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        customer  path  string  true  "ID del cliente"
// @Param        user      path  string  true  "ID del usuario"
// @Success      200       {object}  dto.UserDetail
// @Failure      401       {array}   string
// @Failure      403       {array}   string
// @Failure      404       {array}   string
// @Router       /api/customers/{customer}/users/{user} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	return writeEnvelope(c, h.uc.Get(c.UserContext(), GetToken(c), c.Params("customer"), c.Params("user")))
}

// Create godoc
// @Summary      Crear usuario (ADMIN)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        customer  path  string           true  "ID del cliente"
// @Param        body      body  dto.UserPayload  true  "name, email, password, roles"
// @Success      201       {object}  dto.UserDetail
// @Failure      400       {array}   string
// @Failure      401       {array}   string
// @Failure      403       {array}   string
// @Failure      500       {array}   string
// @Router       /api/customers/{customer}/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	return writeEnvelope(c, h.uc.Create(c.UserContext(), GetToken(c), c.Params("customer"), c.Body()))
}

// Update godoc
// @Summary      Modificar usuario (ADMIN)
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        customer  path  string           true  "ID del cliente"
// @Param        user      path  string           true  "ID del usuario"
// @Param        body      body  dto.UserPayload  true  "name, email y/o roles"
// @Success      200       {object}  dto.InfoResponse
// @Failure      400       {array}   string
// @Failure      401       {array}   string
// @Failure      403       {array}   string
// @Failure      404       {array}   string
// @Router       /api/customers/{customer}/users/{user} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	return writeEnvelope(c, h.uc.Update(c.UserContext(), GetToken(c), c.Params("customer"), c.Params("user"), c.Body()))
}

// Delete godoc
// @Summary      Eliminar usuario (ADMIN)
// @Tags         users
// @Security     Bearer
// @Param        customer  path  string  true  "ID del cliente"
// @Param        user      path  string  true  "ID del usuario"
// @Success      204       "Usuario eliminado"
// @Failure      401       {array}  string
// @Failure      403       {array}  string
// @Failure      404       {array}  string
// @Router       /api/customers/{customer}/users/{user} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	return writeEnvelope(c, h.uc.Delete(c.UserContext(), GetToken(c), c.Params("customer"), c.Params("user")))
}
