package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError detalla un rechazo por stock insuficiente: qué producto,
// en qué almacén, en qué unidad se mide y cuánto faltó. Los handlers lo usan para
// armar un mensaje accionable para el operador.
type InsufficientStockError struct {
	ProductoID int64
	AlmacenID  int64
	Unidad     string // "piezas" | "gramos"
	Deficit    decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente (%s) para producto %d en almacén %d: faltan %s",
		e.Unidad, e.ProductoID, e.AlmacenID, e.Deficit.String())
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
