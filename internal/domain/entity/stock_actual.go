package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockActual es el saldo vigente de un producto en un almacén. Clave primaria
// compuesta (producto_id, almacen_id). Según la unidad del producto, el campo
// autoritativo es Cantidad (piezas) o CantidadGramos; el otro se mantiene en
// cero/null.
type StockActual struct {
	ProductoID     int64            `json:"producto_id"`
	AlmacenID      int64            `json:"almacen_id"`
	Cantidad       int64            `json:"cantidad"`
	CantidadGramos *decimal.Decimal `json:"cantidad_gramos,omitempty"`
	LastUpdated    time.Time        `json:"last_updated"`

	// Poblados por consultas con JOIN para las vistas de stock.
	ProductoNombre string `json:"producto_nombre,omitempty"`
	ProductoSKU    string `json:"producto_sku,omitempty"`
	AlmacenNombre  string `json:"almacen_nombre,omitempty"`
}
