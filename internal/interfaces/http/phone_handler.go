package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bilemo-api/internal/application/usecase"
)

// PhoneHandler maneja las peticiones HTTP del catálogo.
type PhoneHandler struct {
	uc *usecase.PhoneUseCase
}

// NewPhoneHandler construye el handler.
func NewPhoneHandler(uc *usecase.PhoneUseCase) *PhoneHandler {
	return &PhoneHandler{uc: uc}
}

// List godoc
// @Summary      Listar teléfonos
// @Tags         phones
// @Security     Bearer
// @Produce      json
// @Param        page  query  int  false  "Número de página (desde 1)"
// @Success      200   {array}   dto.PhoneListItem
// @Success      204   "Página vacía"
// @Failure      400   {array}   string
// @Failure      401   {array}   string
// @Router       /api/phones [get]
func (h *PhoneHandler) List(c *fiber.Ctx) error {
	return writeEnvelope(c, h.uc.List(c.UserContext(), GetToken(c), c.Query("page")))
}

// GetByID godoc
// @Summary      Detalle de un teléfono
// @Tags         phones
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del teléfono"
// @Success      200  {object}  dto.PhoneDetail
// @Failure      401  {array}   string
// @Failure      404  {array}   string
// @Router       /api/phones/{id} [get]
func (h *PhoneHandler) GetByID(c *fiber.Ctx) error {
	return writeEnvelope(c, h.uc.Get(c.UserContext(), GetToken(c), c.Params("id")))
}
