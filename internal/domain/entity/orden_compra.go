package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrdenCompra cabecera de una compra a proveedor. Al registrarse, cada ítem
// genera un movimiento de entrada y suma al stock del almacén destino.
type OrdenCompra struct {
	ID          int64           `json:"id"`
	ProveedorID int64           `json:"proveedor_id"`
	AlmacenID   int64           `json:"almacen_id"`
	UsuarioID   *int64          `json:"usuario_id,omitempty"`
	Fecha       time.Time       `json:"fecha"`
	Total       decimal.Decimal `json:"total"`
	Observacion string          `json:"observacion,omitempty"`

	ProveedorNombre string             `json:"proveedor_nombre,omitempty"`
	AlmacenNombre   string             `json:"almacen_nombre,omitempty"`
	Items           []*OrdenCompraItem `json:"items,omitempty"`
}

// OrdenCompraItem línea de una orden de compra. Exactamente uno de Cantidad o
// CantidadGramos viene poblado según la unidad del producto.
type OrdenCompraItem struct {
	ID             int64            `json:"id"`
	OrdenID        int64            `json:"orden_id"`
	ProductoID     int64            `json:"producto_id"`
	Cantidad       *int64           `json:"cantidad,omitempty"`
	CantidadGramos *decimal.Decimal `json:"cantidad_gramos,omitempty"`
	PrecioUnitario decimal.Decimal  `json:"precio_unitario"`
	Subtotal       decimal.Decimal  `json:"subtotal"`

	ProductoNombre string `json:"producto_nombre,omitempty"`
	ProductoSKU    string `json:"producto_sku,omitempty"`
}
