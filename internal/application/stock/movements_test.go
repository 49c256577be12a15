package stock

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/inventory"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

func movBase(tipo string) *entity.MovimientoStock {
	n := int64(1)
	return &entity.MovimientoStock{
		ProductoID: 1,
		Tipo:       tipo,
		Fecha:      time.Now(),
		Cantidad:   &n,
	}
}

func TestValidarMovimiento(t *testing.T) {
	uno, dos := int64(1), int64(2)
	cero := int64(0)
	gramos := decimal.RequireFromString("10.5")

	tests := []struct {
		name    string
		mutar   func(m *entity.MovimientoStock)
		tipo    string
		wantErr bool
	}{
		{"entrada con destino", func(m *entity.MovimientoStock) { m.DestinoAlmacen = &uno }, entity.MovimientoEntrada, false},
		{"entrada sin destino", func(m *entity.MovimientoStock) {}, entity.MovimientoEntrada, true},
		{"entrada con origen", func(m *entity.MovimientoStock) { m.DestinoAlmacen = &uno; m.OrigenAlmacen = &dos }, entity.MovimientoEntrada, true},
		{"salida con origen", func(m *entity.MovimientoStock) { m.OrigenAlmacen = &uno }, entity.MovimientoSalida, false},
		{"salida sin origen", func(m *entity.MovimientoStock) {}, entity.MovimientoSalida, true},
		{"salida con destino", func(m *entity.MovimientoStock) { m.OrigenAlmacen = &uno; m.DestinoAlmacen = &dos }, entity.MovimientoSalida, true},
		{"insumo con origen", func(m *entity.MovimientoStock) { m.OrigenAlmacen = &uno }, entity.MovimientoInsumo, false},
		{"insumo sin origen", func(m *entity.MovimientoStock) {}, entity.MovimientoInsumo, true},
		{"traspaso completo", func(m *entity.MovimientoStock) { m.OrigenAlmacen = &uno; m.DestinoAlmacen = &dos }, entity.MovimientoTraspaso, false},
		{"traspaso sin destino", func(m *entity.MovimientoStock) { m.OrigenAlmacen = &uno }, entity.MovimientoTraspaso, true},
		{"traspaso mismo almacén", func(m *entity.MovimientoStock) { m.OrigenAlmacen = &uno; m.DestinoAlmacen = &uno }, entity.MovimientoTraspaso, true},
		{"tipo desconocido", func(m *entity.MovimientoStock) { m.DestinoAlmacen = &uno }, "merma", true},
		{"ambas cantidades", func(m *entity.MovimientoStock) { m.DestinoAlmacen = &uno; m.CantidadGramos = &gramos }, entity.MovimientoEntrada, true},
		{"sin cantidad", func(m *entity.MovimientoStock) { m.DestinoAlmacen = &uno; m.Cantidad = nil }, entity.MovimientoEntrada, true},
		{"cantidad cero", func(m *entity.MovimientoStock) { m.DestinoAlmacen = &uno; m.Cantidad = &cero }, entity.MovimientoEntrada, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := movBase(tt.tipo)
			tt.mutar(m)
			err := validarMovimiento(m)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegistrarMovimientoEnTx(t *testing.T) {
	ctx := context.Background()
	uno := int64(1)

	movimientos := &stubMovimientos{}
	r := Repos{Movimientos: movimientos}

	// una fila mal formada nunca llega al repositorio
	err := RegistrarMovimientoEnTx(ctx, r, movBase(entity.MovimientoEntrada))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, movimientos.items)

	// con precio unitario y sin total, el total se deriva
	m := movBase(entity.MovimientoEntrada)
	m.DestinoAlmacen = &uno
	n := int64(4)
	m.Cantidad = &n
	m.PrecioUnitario = decPtr("12.50")
	require.NoError(t, RegistrarMovimientoEnTx(ctx, r, m))
	require.Len(t, movimientos.items, 1)
	require.NotNil(t, m.PrecioTotal)
	assert.True(t, m.PrecioTotal.Equal(decimal.RequireFromString("50.00")))

	// un total ya calculado se respeta
	m2 := movBase(entity.MovimientoEntrada)
	m2.DestinoAlmacen = &uno
	m2.PrecioUnitario = decPtr("12.50")
	m2.PrecioTotal = decPtr("99.99")
	require.NoError(t, RegistrarMovimientoEnTx(ctx, r, m2))
	assert.True(t, m2.PrecioTotal.Equal(decimal.RequireFromString("99.99")))
}

func TestCalcularPrecioTotal(t *testing.T) {
	assert.Nil(t, calcularPrecioTotal(inventory.EnPiezas(3), nil))

	unitario := decimal.RequireFromString("12.345")
	total := calcularPrecioTotal(inventory.EnPiezas(3), &unitario)
	require.NotNil(t, total)
	assert.True(t, total.Equal(decimal.RequireFromString("37.04")))

	gr := inventory.EnGramos(decimal.RequireFromString("250.5"))
	porGramo := decimal.RequireFromString("0.08")
	total = calcularPrecioTotal(gr, &porGramo)
	require.NotNil(t, total)
	assert.True(t, total.Equal(decimal.RequireFromString("20.04")))
}

func TestMovementLogListarConFiltros(t *testing.T) {
	movimientos := &stubMovimientos{}
	log := NewMovementLog(movimientos)
	ctx := context.Background()

	_, _, err := log.ListarConFiltros(ctx, repository.FiltroMovimientos{Tipo: "merma"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = log.ListarConFiltros(ctx, repository.FiltroMovimientos{})
	require.NoError(t, err)
	assert.Equal(t, "fecha", movimientos.lastFiltro.Sort)
	assert.True(t, movimientos.lastFiltro.Desc)
	assert.Equal(t, 1, movimientos.lastFiltro.Page)
	assert.Equal(t, 50, movimientos.lastFiltro.Limit)

	_, _, err = log.ListarConFiltros(ctx, repository.FiltroMovimientos{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 200, movimientos.lastFiltro.Limit)
}

func TestMovementLogObtener(t *testing.T) {
	movimientos := &stubMovimientos{}
	log := NewMovementLog(movimientos)
	ctx := context.Background()

	_, err := log.Obtener(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	uno := int64(1)
	m := movBase(entity.MovimientoEntrada)
	m.DestinoAlmacen = &uno
	require.NoError(t, movimientos.Create(ctx, m))

	got, err := log.Obtener(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)
}
