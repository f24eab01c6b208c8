package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocalToken clave en c.Locals de la credencial bearer de la petición.
const LocalToken = "bearer_token"

// BearerToken extrae la credencial del header Authorization ("Bearer <t>" o "<t>") y la guarda
// en c.Locals. No rechaza peticiones: la resolución y sus errores 401 son parte de cada operación.
func BearerToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalToken, ExtractBearer(c.Get(fiber.HeaderAuthorization)))
		return c.Next()
	}
}

// ExtractBearer devuelve la credencial de un valor de header Authorization; "" si no hay.
func ExtractBearer(header string) string {
	header = strings.TrimSpace(header)
	if scheme, rest, found := strings.Cut(header, " "); found && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(rest)
	}
	if strings.EqualFold(header, "Bearer") {
		return ""
	}
	return header
}

// GetToken devuelve la credencial guardada por BearerToken.
func GetToken(c *fiber.Ctx) string {
	v := c.Locals(LocalToken)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
