package inventory

import (
	"github.com/shopspring/decimal"
)

// Cantidad es una suma de tipos: o bien piezas (enteras) o bien gramos
// (decimal 18,3), nunca ambas. Los constructores hacen imposible representar
// el estado "ambos campos" que el viejo validador cross-field tenía que
// rechazar en runtime.
type Cantidad struct {
	gramos decimal.Decimal
	piezas int64
	kind   uint8
}

const (
	kindInvalida = iota
	kindPiezas
	kindGramos
)

// EnPiezas construye una cantidad discreta.
func EnPiezas(n int64) Cantidad {
	return Cantidad{piezas: n, kind: kindPiezas}
}

// EnGramos construye una cantidad continua.
func EnGramos(g decimal.Decimal) Cantidad {
	return Cantidad{gramos: g, kind: kindGramos}
}

// Valida indica si la cantidad fue construida por EnPiezas o EnGramos.
func (c Cantidad) Valida() bool { return c.kind != kindInvalida }

// EsGramos indica si la cantidad está expresada en gramos.
func (c Cantidad) EsGramos() bool { return c.kind == kindGramos }

// Piezas devuelve el componente en piezas (0 si la cantidad es en gramos).
func (c Cantidad) Piezas() int64 {
	if c.kind != kindPiezas {
		return 0
	}
	return c.piezas
}

// Gramos devuelve el componente en gramos (cero si la cantidad es en piezas).
func (c Cantidad) Gramos() decimal.Decimal {
	if c.kind != kindGramos {
		return decimal.Zero
	}
	return c.gramos
}

// Neg devuelve la cantidad con el signo invertido (para salidas y reversas).
func (c Cantidad) Neg() Cantidad {
	switch c.kind {
	case kindPiezas:
		return Cantidad{piezas: -c.piezas, kind: kindPiezas}
	case kindGramos:
		return Cantidad{gramos: c.gramos.Neg(), kind: kindGramos}
	}
	return c
}

// EsPositiva indica si la cantidad es estrictamente mayor que cero.
func (c Cantidad) EsPositiva() bool {
	switch c.kind {
	case kindPiezas:
		return c.piezas > 0
	case kindGramos:
		return c.gramos.GreaterThan(decimal.Zero)
	}
	return false
}

// Base devuelve la magnitud autoritativa como decimal, útil para subtotales
// (piezas × precio o gramos × precio según corresponda).
func (c Cantidad) Base() decimal.Decimal {
	switch c.kind {
	case kindPiezas:
		return decimal.NewFromInt(c.piezas)
	case kindGramos:
		return c.gramos
	}
	return decimal.Zero
}

// CantidadDesdeCampos adapta el par opcional (cantidad, cantidad_gramos) de un
// request a la suma de tipos. Exactamente uno de los dos debe venir.
func CantidadDesdeCampos(piezas *int64, gramos *decimal.Decimal) (Cantidad, bool) {
	if (piezas == nil) == (gramos == nil) {
		return Cantidad{}, false
	}
	if piezas != nil {
		return EnPiezas(*piezas), true
	}
	return EnGramos(*gramos), true
}
