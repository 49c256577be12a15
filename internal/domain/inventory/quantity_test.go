package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCantidadPiezas(t *testing.T) {
	c := EnPiezas(5)

	assert.True(t, c.Valida())
	assert.False(t, c.EsGramos())
	assert.EqualValues(t, 5, c.Piezas())
	assert.True(t, c.Gramos().IsZero())
	assert.True(t, c.EsPositiva())
	assert.True(t, c.Base().Equal(decimal.NewFromInt(5)))

	neg := c.Neg()
	assert.EqualValues(t, -5, neg.Piezas())
	assert.False(t, neg.EsPositiva())
}

func TestCantidadGramos(t *testing.T) {
	c := EnGramos(decimal.RequireFromString("250.500"))

	assert.True(t, c.Valida())
	assert.True(t, c.EsGramos())
	assert.EqualValues(t, 0, c.Piezas())
	assert.True(t, c.Gramos().Equal(decimal.RequireFromString("250.5")))
	assert.True(t, c.EsPositiva())

	neg := c.Neg()
	assert.True(t, neg.Gramos().Equal(decimal.RequireFromString("-250.5")))
	assert.False(t, neg.EsPositiva())
}

func TestCantidadCeroNoEsPositiva(t *testing.T) {
	assert.False(t, EnPiezas(0).EsPositiva())
	assert.False(t, EnGramos(decimal.Zero).EsPositiva())
}

func TestCantidadZeroValueInvalida(t *testing.T) {
	var c Cantidad
	assert.False(t, c.Valida())
	assert.False(t, c.EsPositiva())
	assert.True(t, c.Base().IsZero())
}

func TestCantidadDesdeCampos(t *testing.T) {
	piezas := int64(3)
	gramos := decimal.RequireFromString("10.5")

	c, ok := CantidadDesdeCampos(&piezas, nil)
	require.True(t, ok)
	assert.EqualValues(t, 3, c.Piezas())

	c, ok = CantidadDesdeCampos(nil, &gramos)
	require.True(t, ok)
	assert.True(t, c.EsGramos())

	_, ok = CantidadDesdeCampos(nil, nil)
	assert.False(t, ok)

	_, ok = CantidadDesdeCampos(&piezas, &gramos)
	assert.False(t, ok)
}
