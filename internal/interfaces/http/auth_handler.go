package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuellar-dev/inventario-pos/internal/application/auth"
	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
)

// AuthHandler endpoints de autenticación.
type AuthHandler struct {
	auth *auth.UseCase
}

func NewAuthHandler(authUC *auth.UseCase) *AuthHandler {
	return &AuthHandler{auth: authUC}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.auth.Login(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegistrarUsuarioRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	usuario, err := h.auth.Registrar(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(usuario)
}
