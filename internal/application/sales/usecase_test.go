package sales

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

func int64Ptr(n int64) *int64 { return &n }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestRegistrarVentaGeneraIngreso(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	venta, err := env.uc.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		AlmacenID:   1,
		TipoIngreso: entity.IngresoEfectivo,
		Items: []dto.VentaItemRequest{
			{ProductoID: 1, Cantidad: int64Ptr(3)},
			{ProductoID: 2, CantidadGramos: decPtr("200")},
		},
	}, int64Ptr(7))
	require.NoError(t, err)

	// 3 piezas a 100 + 200 g a 0.50
	assert.True(t, venta.Total.Equal(decimal.RequireFromString("400.00")))
	assert.Equal(t, entity.VentaConfirmada, venta.Estado)

	// el ingreso de caja nace con la venta, con su mismo monto y canal
	require.Len(t, env.ingresos.items, 1)
	ingreso := env.ingresos.items[0]
	assert.Equal(t, venta.ID, ingreso.VentaID)
	assert.Equal(t, entity.IngresoEfectivo, ingreso.Tipo)
	assert.True(t, ingreso.Monto.Equal(venta.Total))

	// stock descontado y movimientos de salida
	fila, _ := env.stock.Get(ctx, 1, 1)
	assert.EqualValues(t, 7, fila.Cantidad)
	require.Len(t, env.movimientos.items, 2)
	assert.Equal(t, entity.MovimientoSalida, env.movimientos.items[0].Tipo)
}

func TestRegistrarVentaConOverrideDePrecio(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	require.NoError(t, env.precios.Upsert(ctx, &entity.PrecioAlmacen{
		ProductoID: 1, AlmacenID: 1, Precio: decimal.RequireFromString("80"),
	}))

	venta, err := env.uc.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		AlmacenID:   1,
		TipoIngreso: entity.IngresoBancarizado,
		Items:       []dto.VentaItemRequest{{ProductoID: 1, Cantidad: int64Ptr(2)}},
	}, nil)
	require.NoError(t, err)
	assert.True(t, venta.Total.Equal(decimal.RequireFromString("160.00")))
	assert.Equal(t, entity.IngresoBancarizado, env.ingresos.items[0].Tipo)
}

func TestRegistrarVentaSinSaldo(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.RegistrarVenta(context.Background(), dto.RegistrarVentaRequest{
		AlmacenID:   1,
		TipoIngreso: entity.IngresoEfectivo,
		Items:       []dto.VentaItemRequest{{ProductoID: 1, Cantidad: int64Ptr(50)}},
	}, nil)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestActualizarEstadoVenta(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	venta, err := env.uc.RegistrarVenta(ctx, dto.RegistrarVentaRequest{
		AlmacenID:   1,
		TipoIngreso: entity.IngresoEfectivo,
		Items:       []dto.VentaItemRequest{{ProductoID: 1, Cantidad: int64Ptr(1)}},
	}, nil)
	require.NoError(t, err)

	actualizada, err := env.uc.ActualizarEstado(ctx, venta.ID, entity.VentaCancelada)
	require.NoError(t, err)
	assert.Equal(t, entity.VentaCancelada, actualizada.Estado)

	// la cancelación no repone stock
	fila, _ := env.stock.Get(ctx, 1, 1)
	assert.EqualValues(t, 9, fila.Cantidad)

	_, err = env.uc.ActualizarEstado(ctx, venta.ID, "DEVUELTA")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.uc.ActualizarEstado(ctx, 999, entity.VentaConfirmada)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListarVentasFiltraPorEstado(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, _, err := env.uc.ListarConFiltros(ctx, repository.FiltroVentas{Estado: "DEVUELTA"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = env.uc.ListarConFiltros(ctx, repository.FiltroVentas{Estado: entity.VentaCancelada})
	require.NoError(t, err)
	assert.Equal(t, entity.VentaCancelada, env.ventas.lastFiltro.Estado)
}
