package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovimientoEntrada  = "entrada"
	MovimientoSalida   = "salida"
	MovimientoTraspaso = "traspaso"
	MovimientoInsumo   = "insumo"
)

// MovimientoStock es una fila de la bitácora de inventario. Qué almacenes van
// poblados depende del tipo: entrada solo destino, salida e insumo solo
// origen, traspaso ambos (distintos). Exactamente uno de Cantidad o
// CantidadGramos viene poblado, según la unidad del producto.
//
// Los movimientos tipo insumo son los únicos reversibles: cancelar uno
// devuelve el stock al almacén de origen y borra la fila.
type MovimientoStock struct {
	ID             int64            `json:"id"`
	ProductoID     int64            `json:"producto_id"`
	OrigenAlmacen  *int64           `json:"origen_almacen,omitempty"`
	DestinoAlmacen *int64           `json:"destino_almacen,omitempty"`
	Cantidad       *int64           `json:"cantidad,omitempty"`
	CantidadGramos *decimal.Decimal `json:"cantidad_gramos,omitempty"`
	Tipo           string           `json:"tipo"`
	Fecha          time.Time        `json:"fecha"`
	UsuarioID      *int64           `json:"usuario_id,omitempty"`
	Motivo         string           `json:"motivo,omitempty"`
	ProveedorID    *int64           `json:"proveedor_id,omitempty"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
	PrecioTotal    *decimal.Decimal `json:"precio_total,omitempty"`
	// LoteID agrupa los movimientos generados por una misma operación
	// (por ejemplo todas las entradas de una orden de compra).
	LoteID *string `json:"lote_id,omitempty"`

	ProductoNombre string `json:"producto_nombre,omitempty"`
	ProductoSKU    string `json:"producto_sku,omitempty"`
}
