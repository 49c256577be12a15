package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/application/stock"
)

// StockHandler endpoints de saldos y operaciones de stock.
type StockHandler struct {
	stock *stock.UseCase
}

func NewStockHandler(stockUC *stock.UseCase) *StockHandler {
	return &StockHandler{stock: stockUC}
}

func (h *StockHandler) Listar(c *fiber.Ctx) error {
	almacenID, err := queryInt64Ptr(c, "almacen_id")
	if err != nil {
		return respondError(c, err)
	}
	filas, err := h.stock.Listar(c.Context(), almacenID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(filas)
}

func (h *StockHandler) Obtener(c *fiber.Ctx) error {
	productoID, err := paramInt64(c, "productoId")
	if err != nil {
		return respondError(c, err)
	}
	almacenID, err := paramInt64(c, "almacenId")
	if err != nil {
		return respondError(c, err)
	}
	fila, err := h.stock.Obtener(c.Context(), productoID, almacenID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fila)
}

func (h *StockHandler) Totales(c *fiber.Ctx) error {
	almacenID, err := paramInt64(c, "almacenId")
	if err != nil {
		return respondError(c, err)
	}
	totales, err := h.stock.TotalesPorAlmacen(c.Context(), almacenID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(totales)
}

func (h *StockHandler) CrearFila(c *fiber.Ctx) error {
	var in dto.CrearFilaStockRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	fila, err := h.stock.CrearFila(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fila)
}

func (h *StockHandler) EliminarFila(c *fiber.Ctx) error {
	productoID, err := paramInt64(c, "productoId")
	if err != nil {
		return respondError(c, err)
	}
	almacenID, err := paramInt64(c, "almacenId")
	if err != nil {
		return respondError(c, err)
	}
	if err := h.stock.EliminarFila(c.Context(), productoID, almacenID); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *StockHandler) Entrada(c *fiber.Ctx) error {
	var in dto.EntradaRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	fila, mov, err := h.stock.RegistrarEntrada(c.Context(), in, userIDPtr(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"stock": fila, "movimiento": mov})
}

func (h *StockHandler) Insumo(c *fiber.Ctx) error {
	var in dto.InsumoRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	fila, mov, err := h.stock.RegistrarInsumo(c.Context(), in, userIDPtr(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"stock": fila, "movimiento": mov})
}

func (h *StockHandler) CancelarInsumo(c *fiber.Ctx) error {
	movimientoID, err := paramInt64(c, "movimientoId")
	if err != nil {
		return respondError(c, err)
	}
	fila, err := h.stock.CancelarInsumo(c.Context(), movimientoID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"stock": fila})
}

func (h *StockHandler) Traspaso(c *fiber.Ctx) error {
	var in dto.TraspasoRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	mov, err := h.stock.Traspaso(c.Context(), in, userIDPtr(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(mov)
}

func (h *StockHandler) Ajustar(c *fiber.Ctx) error {
	var in dto.AjusteRequest
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}
	fila, err := h.stock.Ajustar(c.Context(), in, userIDPtr(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fila)
}
