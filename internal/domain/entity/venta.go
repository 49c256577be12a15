package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. Toda venta nace confirmada; la cancelación es un
// cambio de etiqueta, no repone stock.
const (
	VentaConfirmada = "CONFIRMADA"
	VentaCancelada  = "CANCELADA"
)

// Venta cabecera de una venta en punto de venta. Cada ítem descuenta stock del
// almacén indicado y deja un movimiento de salida.
type Venta struct {
	ID        int64           `json:"id"`
	AlmacenID int64           `json:"almacen_id"`
	UsuarioID *int64          `json:"usuario_id,omitempty"`
	Fecha     time.Time       `json:"fecha"`
	Total     decimal.Decimal `json:"total"`
	Estado    string          `json:"estado"`

	AlmacenNombre string       `json:"almacen_nombre,omitempty"`
	Items         []*VentaItem `json:"items,omitempty"`
}

// VentaItem línea de venta. El precio unitario aplicado ya resuelve el
// override por almacén cuando existe.
type VentaItem struct {
	ID             int64            `json:"id"`
	VentaID        int64            `json:"venta_id"`
	ProductoID     int64            `json:"producto_id"`
	Cantidad       *int64           `json:"cantidad,omitempty"`
	CantidadGramos *decimal.Decimal `json:"cantidad_gramos,omitempty"`
	PrecioUnitario decimal.Decimal  `json:"precio_unitario"`
	Subtotal       decimal.Decimal  `json:"subtotal"`

	ProductoNombre string `json:"producto_nombre,omitempty"`
}
