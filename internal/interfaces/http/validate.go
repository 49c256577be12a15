package http

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/acuellar-dev/inventario-pos/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// bindAndValidate parsea el body JSON y valida los tags del DTO. Los errores
// se envuelven en ErrInvalidInput para que el mapeo a 400 sea uniforme.
func bindAndValidate(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fmt.Errorf("cuerpo de la petición inválido: %w", domain.ErrInvalidInput)
	}
	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%s: %w", err.Error(), domain.ErrInvalidInput)
	}
	return nil
}
