package dto

import "github.com/shopspring/decimal"

// CrearProductoRequest alta de producto. Si SKU viene vacío se genera a partir
// del nombre. Si el barcode colisiona con un producto inactivo la respuesta es
// 409 con código BARCODE_INACTIVE para que el cliente ofrezca reactivar.
type CrearProductoRequest struct {
	SKU         string          `json:"sku,omitempty" validate:"omitempty,max=40"`
	Nombre      string          `json:"nombre" validate:"required,max=150"`
	Descripcion string          `json:"descripcion,omitempty" validate:"omitempty,max=500"`
	Categoria   string          `json:"categoria,omitempty" validate:"omitempty,max=100"`
	Barcode     *string         `json:"barcode,omitempty" validate:"omitempty,max=64"`
	UnidadID    int64           `json:"unidad_id" validate:"required,gt=0"`
	PrecioBase  decimal.Decimal `json:"precio_base" validate:"required"`
}

// ActualizarProductoRequest actualización parcial; solo los campos presentes
// se modifican.
type ActualizarProductoRequest struct {
	Nombre      *string          `json:"nombre,omitempty" validate:"omitempty,max=150"`
	Descripcion *string          `json:"descripcion,omitempty" validate:"omitempty,max=500"`
	Categoria   *string          `json:"categoria,omitempty" validate:"omitempty,max=100"`
	Barcode     *string          `json:"barcode,omitempty" validate:"omitempty,max=64"`
	UnidadID    *int64           `json:"unidad_id,omitempty" validate:"omitempty,gt=0"`
	PrecioBase  *decimal.Decimal `json:"precio_base,omitempty"`
}

// ReactivarProductoRequest reactiva un producto inactivo que comparte barcode,
// sobreescribiendo solo los campos enviados.
type ReactivarProductoRequest struct {
	Nombre      string           `json:"nombre" validate:"required,max=150"`
	Descripcion *string          `json:"descripcion,omitempty" validate:"omitempty,max=500"`
	Categoria   *string          `json:"categoria,omitempty" validate:"omitempty,max=100"`
	UnidadID    *int64           `json:"unidad_id,omitempty" validate:"omitempty,gt=0"`
	PrecioBase  *decimal.Decimal `json:"precio_base,omitempty"`
}

// PrecioAlmacenRequest fija el precio de venta de un producto en un almacén.
type PrecioAlmacenRequest struct {
	AlmacenID int64           `json:"almacen_id" validate:"required,gt=0"`
	Precio    decimal.Decimal `json:"precio" validate:"required"`
}
