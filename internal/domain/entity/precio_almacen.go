package entity

import "github.com/shopspring/decimal"

// PrecioAlmacen override de precio de venta de un producto en un almacén
// específico. Si no existe override rige el precio base del producto.
type PrecioAlmacen struct {
	ProductoID int64           `json:"producto_id"`
	AlmacenID  int64           `json:"almacen_id"`
	Precio     decimal.Decimal `json:"precio"`
}
