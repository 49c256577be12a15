package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/application/finance"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

// FinanzasHandler endpoints de ingresos, extracciones y gastos.
type FinanzasHandler struct {
	finanzas *finance.UseCase
}

func NewFinanzasHandler(finanzas *finance.UseCase) *FinanzasHandler {
	return &FinanzasHandler{finanzas: finanzas}
}

func (h *FinanzasHandler) ListarIngresos(c *fiber.Ctx) error {
	desde, err := queryTimePtr(c, "fecha_desde")
	if err != nil {
		return respondError(c, err)
	}
	hasta, err := queryTimePtr(c, "fecha_hasta")
	if err != nil {
		return respondError(c, err)
	}

	f := repository.FiltroIngresos{
		Tipo:       c.Query("tipo"),
		FechaDesde: desde,
		FechaHasta: hasta,
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 50),
	}
	items, total, err := h.finanzas.ListarIngresos(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.PageResponse{Items: items, Total: total, Page: f.Page, Limit: f.Limit})
}

func (h *FinanzasHandler) Saldos(c *fiber.Ctx) error {
	saldos, err := h.finanzas.Saldos(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(saldos)
}

func (h *FinanzasHandler) RegistrarExtraccion(c *fiber.Ctx) error {
	var in dto.ExtraccionRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	e, err := h.finanzas.RegistrarExtraccion(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(e)
}

func (h *FinanzasHandler) ListarExtracciones(c *fiber.Ctx) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 50)
	items, total, err := h.finanzas.ListarExtracciones(c.Context(), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.PageResponse{Items: items, Total: total, Page: page, Limit: limit})
}

func (h *FinanzasHandler) RegistrarGasto(c *fiber.Ctx) error {
	var in dto.GastoRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	g, err := h.finanzas.RegistrarGasto(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(g)
}

func (h *FinanzasHandler) ListarGastos(c *fiber.Ctx) error {
	desde, err := queryTimePtr(c, "fecha_desde")
	if err != nil {
		return respondError(c, err)
	}
	hasta, err := queryTimePtr(c, "fecha_hasta")
	if err != nil {
		return respondError(c, err)
	}

	f := repository.FiltroGastos{
		FechaDesde: desde,
		FechaHasta: hasta,
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 50),
	}
	items, total, err := h.finanzas.ListarGastos(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.PageResponse{Items: items, Total: total, Page: f.Page, Limit: f.Limit})
}

func (h *FinanzasHandler) EliminarGasto(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.finanzas.EliminarGasto(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
