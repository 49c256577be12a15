package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/application/sales"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

// VentaHandler endpoints de punto de venta.
type VentaHandler struct {
	ventas *sales.UseCase
}

func NewVentaHandler(ventas *sales.UseCase) *VentaHandler {
	return &VentaHandler{ventas: ventas}
}

func (h *VentaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarVentaRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	venta, err := h.ventas.RegistrarVenta(c.Context(), in, userIDPtr(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(venta)
}

func (h *VentaHandler) Listar(c *fiber.Ctx) error {
	almacenID, err := queryInt64Ptr(c, "almacen_id")
	if err != nil {
		return respondError(c, err)
	}
	usuarioID, err := queryInt64Ptr(c, "usuario_id")
	if err != nil {
		return respondError(c, err)
	}
	desde, err := queryTimePtr(c, "fecha_desde")
	if err != nil {
		return respondError(c, err)
	}
	hasta, err := queryTimePtr(c, "fecha_hasta")
	if err != nil {
		return respondError(c, err)
	}

	f := repository.FiltroVentas{
		AlmacenID:  almacenID,
		UsuarioID:  usuarioID,
		Estado:     c.Query("estado"),
		FechaDesde: desde,
		FechaHasta: hasta,
		Page:       queryInt(c, "page", 1),
		Limit:      queryInt(c, "limit", 50),
	}
	items, total, err := h.ventas.ListarConFiltros(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.PageResponse{Items: items, Total: total, Page: f.Page, Limit: f.Limit})
}

func (h *VentaHandler) ActualizarEstado(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ActualizarEstadoVentaRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	venta, err := h.ventas.ActualizarEstado(c.Context(), id, in.Estado)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(venta)
}

func (h *VentaHandler) Obtener(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	venta, err := h.ventas.ObtenerDetalle(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(venta)
}
