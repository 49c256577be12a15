package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/application/usecase"
)

// AlmacenHandler endpoints de almacenes.
type AlmacenHandler struct {
	almacenes *usecase.AlmacenUseCase
}

func NewAlmacenHandler(almacenes *usecase.AlmacenUseCase) *AlmacenHandler {
	return &AlmacenHandler{almacenes: almacenes}
}

func (h *AlmacenHandler) Crear(c *fiber.Ctx) error {
	var in dto.AlmacenRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	a, err := h.almacenes.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

func (h *AlmacenHandler) Listar(c *fiber.Ctx) error {
	almacenes, err := h.almacenes.Listar(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(almacenes)
}

func (h *AlmacenHandler) Obtener(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	a, err := h.almacenes.Obtener(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(a)
}

func (h *AlmacenHandler) Actualizar(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.AlmacenRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	a, err := h.almacenes.Actualizar(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(a)
}
