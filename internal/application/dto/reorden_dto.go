package dto

import "github.com/shopspring/decimal"

// ParametroReordenRequest alta o actualización de los niveles de reposición
// de un producto. Los niveles se expresan en la unidad autoritativa del
// producto.
type ParametroReordenRequest struct {
	ProductoID  int64           `json:"producto_id" validate:"required,gt=0"`
	NivelMinimo decimal.Decimal `json:"nivel_minimo" validate:"required"`
	NivelOptimo decimal.Decimal `json:"nivel_optimo" validate:"required"`
}

// SugerenciaReposicion producto por debajo de su nivel mínimo. La cantidad
// sugerida lleva el saldo actual hasta el nivel óptimo.
type SugerenciaReposicion struct {
	Prioridad      int             `json:"prioridad"`
	ProductoID     int64           `json:"producto_id"`
	ProductoNombre string          `json:"producto_nombre"`
	ProductoSKU    string          `json:"producto_sku"`
	Unidad         string          `json:"unidad"`
	Actual         decimal.Decimal `json:"actual"`
	NivelMinimo    decimal.Decimal `json:"nivel_minimo"`
	NivelOptimo    decimal.Decimal `json:"nivel_optimo"`
	Deficit        decimal.Decimal `json:"deficit"`
	Sugerido       decimal.Decimal `json:"sugerido"`
}
