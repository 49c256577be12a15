package dto

import "github.com/shopspring/decimal"

// ExtraccionRequest retiro de dinero de un origen de ingreso.
type ExtraccionRequest struct {
	Origen string          `json:"origen" validate:"required,oneof=EFECTIVO BANCARIZADO"`
	Monto  decimal.Decimal `json:"monto" validate:"required"`
	Motivo string          `json:"motivo" validate:"max=500"`
}

// GastoRequest alta de un gasto operativo. La fecha viene en formato
// YYYY-MM-DD; si se omite se usa el día actual.
type GastoRequest struct {
	Fecha       string          `json:"fecha,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Monto       decimal.Decimal `json:"monto" validate:"required"`
	Descripcion string          `json:"descripcion" validate:"required,max=255"`
	Notas       *string         `json:"notas,omitempty"`
}
