package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/application/stock"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

// MovimientoHandler consultas de la bitácora de movimientos.
type MovimientoHandler struct {
	log *stock.MovementLog
}

func NewMovimientoHandler(log *stock.MovementLog) *MovimientoHandler {
	return &MovimientoHandler{log: log}
}

func (h *MovimientoHandler) Listar(c *fiber.Ctx) error {
	productoID, err := queryInt64Ptr(c, "producto_id")
	if err != nil {
		return respondError(c, err)
	}
	almacenID, err := queryInt64Ptr(c, "almacen_id")
	if err != nil {
		return respondError(c, err)
	}
	usuarioID, err := queryInt64Ptr(c, "usuario_id")
	if err != nil {
		return respondError(c, err)
	}
	proveedorID, err := queryInt64Ptr(c, "proveedor_id")
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

	f := repository.FiltroMovimientos{
		ProductoID:  productoID,
		AlmacenID:   almacenID,
		UsuarioID:   usuarioID,
		ProveedorID: proveedorID,
		Tipo:        c.Query("tipo"),
		FechaDesde:  desde,
		FechaHasta:  hasta,
		Page:        queryInt(c, "page", 1),
		Limit:       queryInt(c, "limit", 50),
		Sort:        c.Query("sort"),
		Desc:        c.Query("dir", "desc") != "asc",
	}
	items, total, err := h.log.ListarConFiltros(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.PageResponse{Items: items, Total: total, Page: f.Page, Limit: f.Limit})
}

func (h *MovimientoHandler) Obtener(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	m, err := h.log.Obtener(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(m)
}

func (h *MovimientoHandler) ListarInsumos(c *fiber.Ctx) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 50)
	items, total, err := h.log.ListarInsumos(c.Context(), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.PageResponse{Items: items, Total: total, Page: page, Limit: limit})
}
