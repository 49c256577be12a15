package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Orígenes de dinero. Cada venta declara por cuál canal entró su pago y las
// extracciones descuentan del saldo de ese mismo canal.
const (
	IngresoEfectivo    = "EFECTIVO"
	IngresoBancarizado = "BANCARIZADO"
)

// IngresoVenta registro de caja generado automáticamente al confirmar una
// venta. El monto replica el total de la venta.
type IngresoVenta struct {
	ID      int64           `json:"id"`
	VentaID int64           `json:"venta_id"`
	Tipo    string          `json:"tipo"`
	Monto   decimal.Decimal `json:"monto"`
	Fecha   time.Time       `json:"fecha"`
}

// ExtraccionIngreso retiro de dinero de uno de los orígenes. Nunca puede dejar
// el saldo del origen en negativo.
type ExtraccionIngreso struct {
	ID     int64           `json:"id"`
	Origen string          `json:"origen"`
	Monto  decimal.Decimal `json:"monto"`
	Motivo string          `json:"motivo"`
	Fecha  time.Time       `json:"fecha"`
}

// Gasto egreso operativo registrado a mano, independiente de las ventas.
type Gasto struct {
	ID          int64           `json:"id"`
	Fecha       time.Time       `json:"fecha"`
	Monto       decimal.Decimal `json:"monto"`
	Descripcion string          `json:"descripcion"`
	Notas       *string         `json:"notas,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SaldoOrigen saldo disponible de un origen: ingresos menos extracciones.
type SaldoOrigen struct {
	Origen       string          `json:"origen"`
	Ingresos     decimal.Decimal `json:"ingresos"`
	Extracciones decimal.Decimal `json:"extracciones"`
	Saldo        decimal.Decimal `json:"saldo"`
}
