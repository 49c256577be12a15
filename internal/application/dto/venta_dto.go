package dto

import "github.com/shopspring/decimal"

// VentaItemRequest línea de venta. El precio es opcional: si no viene se
// resuelve el override por almacén y en su defecto el precio base.
type VentaItemRequest struct {
	ProductoID     int64            `json:"producto_id" validate:"required,gt=0"`
	Cantidad       *int64           `json:"cantidad,omitempty" validate:"omitempty,gt=0"`
	CantidadGramos *decimal.Decimal `json:"cantidad_gramos,omitempty"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
}

// RegistrarVentaRequest venta en punto de venta; descuenta stock, deja
// movimientos de salida y genera el ingreso de caja del canal indicado.
type RegistrarVentaRequest struct {
	AlmacenID   int64              `json:"almacen_id" validate:"required,gt=0"`
	TipoIngreso string             `json:"tipo_ingreso" validate:"required,oneof=EFECTIVO BANCARIZADO"`
	Items       []VentaItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ActualizarEstadoVentaRequest cambio de estado de una venta.
type ActualizarEstadoVentaRequest struct {
	Estado string `json:"estado" validate:"required,oneof=CONFIRMADA CANCELADA"`
}
