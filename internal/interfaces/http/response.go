package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bilemo-api/internal/application/dto"
)

// writeEnvelope traduce el envelope de una operación a la respuesta HTTP: lista de mensajes si
// falló, {"info": ...} para confirmaciones y la proyección en el resto de los casos.
func writeEnvelope(c *fiber.Ctx, env *dto.Envelope) error {
	if env.HTTPCode == fiber.StatusNoContent {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if !env.Status || env.Failed() {
		return c.Status(env.HTTPCode).JSON(dto.ErrorList(env.Errors))
	}
	if env.Info != "" {
		return c.Status(env.HTTPCode).JSON(dto.InfoResponse{Info: env.Info})
	}
	return c.Status(env.HTTPCode).JSON(env.Data)
}
