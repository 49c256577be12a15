package dto

import "github.com/shopspring/decimal"

// EntradaRequest alta de stock en un almacén destino. Exactamente uno de
// Cantidad o CantidadGramos debe venir, según la unidad del producto.
type EntradaRequest struct {
	ProductoID     int64            `json:"producto_id" validate:"required,gt=0"`
	DestinoAlmacen int64            `json:"destino_almacen" validate:"required,gt=0"`
	Cantidad       *int64           `json:"cantidad,omitempty" validate:"omitempty,gt=0"`
	CantidadGramos *decimal.Decimal `json:"cantidad_gramos,omitempty"`
	Motivo         string           `json:"motivo,omitempty" validate:"omitempty,max=255"`
	ProveedorID    *int64           `json:"proveedor_id,omitempty" validate:"omitempty,gt=0"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
}

// InsumoRequest consumo interno desde un almacén origen. Es el único tipo de
// movimiento que luego puede cancelarse.
type InsumoRequest struct {
	ProductoID     int64            `json:"producto_id" validate:"required,gt=0"`
	OrigenAlmacen  int64            `json:"origen_almacen" validate:"required,gt=0"`
	Cantidad       *int64           `json:"cantidad,omitempty" validate:"omitempty,gt=0"`
	CantidadGramos *decimal.Decimal `json:"cantidad_gramos,omitempty"`
	Motivo         string           `json:"motivo,omitempty" validate:"omitempty,max=255"`
}

// TraspasoRequest mueve stock entre dos almacenes distintos.
type TraspasoRequest struct {
	ProductoID     int64            `json:"producto_id" validate:"required,gt=0"`
	OrigenAlmacen  int64            `json:"origen_almacen" validate:"required,gt=0"`
	DestinoAlmacen int64            `json:"destino_almacen" validate:"required,gt=0"`
	Cantidad       *int64           `json:"cantidad,omitempty" validate:"omitempty,gt=0"`
	CantidadGramos *decimal.Decimal `json:"cantidad_gramos,omitempty"`
	Motivo         string           `json:"motivo,omitempty" validate:"omitempty,max=255"`
}

// AjusteRequest ajuste manual de saldo, positivo o negativo.
type AjusteRequest struct {
	ProductoID  int64            `json:"producto_id" validate:"required,gt=0"`
	AlmacenID   int64            `json:"almacen_id" validate:"required,gt=0"`
	Delta       *int64           `json:"delta,omitempty"`
	DeltaGramos *decimal.Decimal `json:"delta_gramos,omitempty"`
	Motivo      string           `json:"motivo,omitempty" validate:"omitempty,max=255"`
}

// CrearFilaStockRequest alta manual de una fila de stock con saldo inicial.
type CrearFilaStockRequest struct {
	ProductoID     int64            `json:"producto_id" validate:"required,gt=0"`
	AlmacenID      int64            `json:"almacen_id" validate:"required,gt=0"`
	Cantidad       *int64           `json:"cantidad,omitempty" validate:"omitempty,gte=0"`
	CantidadGramos *decimal.Decimal `json:"cantidad_gramos,omitempty"`
}
