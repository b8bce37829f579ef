package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/panel-comercial/internal/application/dto"
	"github.com/tu-usuario/panel-comercial/pkg/jwt"
)

// Locals key para el UserID en Fiber.
const LocalUserID = "user_id"

// AuthMiddleware exige un Bearer token en Authorization. Con jwtSecret vacío
// solo valida presencia y formato (el backend hace la validación real); con
// secret definido además verifica la firma HS256 localmente.
//
// Cualquier fallo responde 401 {"error":"Unauthorized"}.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c)
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c)
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c)
		}
		if jwtSecret != "" {
			userID, err := jwt.Verify(jwtSecret, tokenString)
			if err != nil {
				return unauthorized(c)
			}
			c.Locals(LocalUserID, userID)
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth,
// solo disponible cuando hay validación local de JWT).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
