package entity

import "github.com/shopspring/decimal"

// ParametroReorden niveles de reposición de un producto: por debajo del nivel
// mínimo el producto entra a la lista de sugerencias, y la compra sugerida
// apunta al nivel óptimo. Los niveles se expresan en la unidad autoritativa
// del producto (piezas o gramos).
type ParametroReorden struct {
	ID          int64           `json:"id"`
	ProductoID  int64           `json:"producto_id"`
	NivelMinimo decimal.Decimal `json:"nivel_minimo"`
	NivelOptimo decimal.Decimal `json:"nivel_optimo"`

	ProductoNombre string `json:"producto_nombre,omitempty"`
	ProductoSKU    string `json:"producto_sku,omitempty"`
}
