package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuellar-dev/inventario-pos/internal/application/catalog"
	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

// ProductoHandler endpoints del catálogo de productos.
type ProductoHandler struct {
	catalog *catalog.UseCase
}

func NewProductoHandler(catalogUC *catalog.UseCase) *ProductoHandler {
	return &ProductoHandler{catalog: catalogUC}
}

func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	p, err := h.catalog.Crear(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (h *ProductoHandler) Buscar(c *fiber.Ctx) error {
	almacenID, err := queryInt64Ptr(c, "almacen_id")
	if err != nil {
		return respondError(c, err)
	}
	f := repository.FiltroProductos{
		Texto:     c.Query("q"),
		Categoria: c.Query("categoria"),
		AlmacenID: almacenID,
		ConStock:  c.Query("con_stock") == "true",
		Page:      queryInt(c, "page", 1),
		Limit:     queryInt(c, "limit", 50),
	}
	// Por defecto solo activos; incluir_inactivos=true los trae todos.
	if c.Query("incluir_inactivos") != "true" {
		activo := true
		f.Activo = &activo
	}
	items, total, err := h.catalog.Buscar(c.Context(), f)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.PageResponse{Items: items, Total: total, Page: f.Page, Limit: f.Limit})
}

func (h *ProductoHandler) Obtener(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	p, err := h.catalog.Obtener(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

func (h *ProductoHandler) PorBarcode(c *fiber.Ctx) error {
	barcode := c.Params("barcode")
	p, err := h.catalog.ObtenerPorBarcode(c.Context(), barcode)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

func (h *ProductoHandler) Actualizar(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ActualizarProductoRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	p, err := h.catalog.Actualizar(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

func (h *ProductoHandler) Desactivar(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.catalog.Desactivar(c.Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProductoHandler) Reactivar(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.ReactivarProductoRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	p, err := h.catalog.Reactivar(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(p)
}

func (h *ProductoHandler) ListarPrecios(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	precios, err := h.catalog.ListarPrecios(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(precios)
}

func (h *ProductoHandler) UpsertPrecio(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	var in dto.PrecioAlmacenRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	precio, err := h.catalog.UpsertPrecio(c.Context(), id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(precio)
}

func (h *ProductoHandler) EliminarPrecio(c *fiber.Ctx) error {
	id, err := paramInt64(c, "id")
	if err != nil {
		return respondError(c, err)
	}
	almacenID, err := paramInt64(c, "almacenId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.catalog.EliminarPrecio(c.Context(), id, almacenID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProductoHandler) ListarUnidades(c *fiber.Ctx) error {
	unidades, err := h.catalog.ListarUnidades(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(unidades)
}
