package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/application/purchasing"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

// OrdenCompraHandler endpoints de órdenes de compra.
type OrdenCompraHandler struct {
	compras *purchasing.UseCase
}

func NewOrdenCompraHandler(compras *purchasing.UseCase) *OrdenCompraHandler {
	return &OrdenCompraHandler{compras: compras}
}

func (h *OrdenCompraHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearOrdenCompraRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	orden, err := h.compras.CrearOrdenConStock(c.Context(), in, userIDPtr(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(orden)
}

func (h *OrdenCompraHandler) Listar(c *fiber.Ctx) error {
	proveedorID, err := queryInt64Ptr(c, "proveedor_id")
	if err != nil {
		return respondError(c, err)
	}
	almacenID, err := queryInt64Ptr(c, "almacen_id")
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

	f := repository.FiltroOrdenes{
		ProveedorID: proveedorID,
		AlmacenID:   almacenID,
		FechaDesde:  desde,
		FechaHasta:  hasta,
		Page:        queryInt(c, "page", 1),
		Limit:       queryInt(c, "limit", 50),
	}
	items, total, err := h.compras.ListarConFiltros(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.PageResponse{Items: items, Total: total, Page: f.Page, Limit: f.Limit})
}

func (h *OrdenCompraHandler) Obtener(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	orden, err := h.compras.ObtenerDetalle(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(orden)
}

func (h *OrdenCompraHandler) PDF(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	pdfBytes, err := h.compras.GenerarPDF(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="orden-compra-%d.pdf"`, id))
	return c.Send(pdfBytes)
}
