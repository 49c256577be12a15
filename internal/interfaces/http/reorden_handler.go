package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/application/replenishment"
)

// ReordenHandler endpoints de niveles de reposición y lista de compra
// sugerida.
type ReordenHandler struct {
	reorden *replenishment.UseCase
}

func NewReordenHandler(reorden *replenishment.UseCase) *ReordenHandler {
	return &ReordenHandler{reorden: reorden}
}

func (h *ReordenHandler) Guardar(c *fiber.Ctx) error {
	var in dto.ParametroReordenRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	p, err := h.reorden.Guardar(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

func (h *ReordenHandler) Listar(c *fiber.Ctx) error {
	items, err := h.reorden.Listar(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

func (h *ReordenHandler) Obtener(c *fiber.Ctx) error {
	productoID, err := paramInt64(c, "productoId")
	if err != nil {
		return respondError(c, err)
	}
	p, err := h.reorden.Obtener(c.Context(), productoID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

func (h *ReordenHandler) Eliminar(c *fiber.Ctx) error {
	productoID, err := paramInt64(c, "productoId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.reorden.Eliminar(c.Context(), productoID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReordenHandler) Sugerencias(c *fiber.Ctx) error {
	items, err := h.reorden.Sugerencias(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}
