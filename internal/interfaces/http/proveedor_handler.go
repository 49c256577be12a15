package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/application/usecase"
)

// ProveedorHandler endpoints de proveedores.
type ProveedorHandler struct {
	proveedores *usecase.ProveedorUseCase
}

func NewProveedorHandler(proveedores *usecase.ProveedorUseCase) *ProveedorHandler {
	return &ProveedorHandler{proveedores: proveedores}
}

func (h *ProveedorHandler) Crear(c *fiber.Ctx) error {
	var in dto.ProveedorRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	p, err := h.proveedores.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *ProveedorHandler) Listar(c *fiber.Ctx) error {
	soloActivos := c.Query("incluir_inactivos") != "true"
	proveedores, err := h.proveedores.Listar(c.Context(), soloActivos)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(proveedores)
}

func (h *ProveedorHandler) Obtener(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	p, err := h.proveedores.Obtener(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

func (h *ProveedorHandler) Actualizar(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ProveedorRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	p, err := h.proveedores.Actualizar(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

func (h *ProveedorHandler) Desactivar(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.proveedores.Desactivar(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
