package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/pkg/jwt"
)

const (
	localUserID = "auth_user_id"
	localRole   = "auth_role"
)

// AuthMiddleware valida el Bearer token y deja user id y rol en Locals.
func AuthMiddleware(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_TOKEN",
				Message: "falta el token de autorización",
			})
		}
		userID, role, err := jwt.Parse(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "INVALID_TOKEN",
				Message: "token inválido o expirado",
			})
		}
		c.Locals(localUserID, userID)
		c.Locals(localRole, role)
		return c.Next()
	}
}

// RequireRole exige que el rol del token sea uno de los permitidos.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(localRole).(string)
		if !ok || role == "" {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol",
			})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "rol sin permisos para esta operación",
		})
	}
}

// GetUserID devuelve el id de usuario autenticado.
func GetUserID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(localUserID).(int64)
	return id, ok
}

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) (string, bool) {
	role, ok := c.Locals(localRole).(string)
	return role, ok
}

// userIDPtr versión puntero para los campos opcionales usuario_id.
func userIDPtr(c *fiber.Ctx) *int64 {
	if id, ok := GetUserID(c); ok {
		return &id
	}
	return nil
}
