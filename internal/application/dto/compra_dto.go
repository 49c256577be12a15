package dto

import "github.com/shopspring/decimal"

// OrdenCompraItemRequest línea de una orden de compra.
type OrdenCompraItemRequest struct {
	ProductoID     int64            `json:"producto_id" validate:"required,gt=0"`
	Cantidad       *int64           `json:"cantidad,omitempty" validate:"omitempty,gt=0"`
	CantidadGramos *decimal.Decimal `json:"cantidad_gramos,omitempty"`
	PrecioUnitario decimal.Decimal  `json:"precio_unitario" validate:"required"`
}

// CrearOrdenCompraRequest registra una compra: cabecera, ítems, entradas de
// stock y movimientos en una sola transacción.
type CrearOrdenCompraRequest struct {
	ProveedorID int64                    `json:"proveedor_id" validate:"required,gt=0"`
	AlmacenID   int64                    `json:"almacen_id" validate:"required,gt=0"`
	Observacion string                   `json:"observacion,omitempty" validate:"omitempty,max=500"`
	Items       []OrdenCompraItemRequest `json:"items" validate:"required,min=1,dive"`
}
