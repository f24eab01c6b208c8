package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bilemo-api/internal/application/auth"
	"github.com/jhoicas/bilemo-api/internal/application/dto"
	"github.com/jhoicas/bilemo-api/internal/application/usecase"
	"github.com/jhoicas/bilemo-api/internal/domain"
	"github.com/jhoicas/bilemo-api/pkg/logger"
)

// AuthHandler emite credenciales bearer.
type AuthHandler struct {
	uc  *auth.AuthUseCase
	log *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, log *logger.Logger) *AuthHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthHandler{uc: uc, log: log}
}

// Token godoc
// @Summary      Obtener credencial bearer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TokenRequest  true  "email, password"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {array}   string
// @Failure      401   {array}   string
// @Router       /api/auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorList{domain.ErrDataRequired.Error()})
	}
	var in dto.TokenRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorList{domain.ErrMalformedPayload.Error()})
	}
	out, err := h.uc.IssueToken(c.UserContext(), in)
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			h.log.Warn().Err(err).Msg("emisión de credencial")
		}
		return c.Status(usecase.StatusFor(err)).JSON(dto.ErrorList(usecase.Messages(err)))
	}
	return c.JSON(out)
}
