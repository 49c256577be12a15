package replenishment

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
	"github.com/acuellar-dev/inventario-pos/pkg/logger"
)

type stubParametros struct {
	porProducto map[int64]*entity.ParametroReorden
	conStock    []*repository.ReordenConStock
}

func (s *stubParametros) Upsert(_ context.Context, p *entity.ParametroReorden) error {
	if previo, ok := s.porProducto[p.ProductoID]; ok {
		p.ID = previo.ID
	} else {
		p.ID = int64(len(s.porProducto) + 1)
	}
	s.porProducto[p.ProductoID] = p
	return nil
}

func (s *stubParametros) GetByProducto(_ context.Context, productoID int64) (*entity.ParametroReorden, error) {
	return s.porProducto[productoID], nil
}

func (s *stubParametros) List(_ context.Context) ([]*entity.ParametroReorden, error) {
	var out []*entity.ParametroReorden
	for _, p := range s.porProducto {
		out = append(out, p)
	}
	return out, nil
}

func (s *stubParametros) Delete(_ context.Context, productoID int64) error {
	if _, ok := s.porProducto[productoID]; !ok {
		return domain.ErrNotFound
	}
	delete(s.porProducto, productoID)
	return nil
}

func (s *stubParametros) ListConStock(_ context.Context) ([]*repository.ReordenConStock, error) {
	return s.conStock, nil
}

type stubProductos struct {
	items map[int64]*entity.Producto
}

func (s *stubProductos) Create(_ context.Context, p *entity.Producto) error {
	s.items[p.ID] = p
	return nil
}

func (s *stubProductos) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	return s.items[id], nil
}

func (s *stubProductos) GetBySKU(_ context.Context, _ string) (*entity.Producto, error) {
	return nil, nil
}

func (s *stubProductos) GetByBarcode(_ context.Context, _ string) (*entity.Producto, error) {
	return nil, nil
}

func (s *stubProductos) Update(_ context.Context, p *entity.Producto) error {
	s.items[p.ID] = p
	return nil
}

func (s *stubProductos) Search(_ context.Context, _ repository.FiltroProductos) ([]*entity.Producto, int64, error) {
	return nil, 0, nil
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newUseCase() (*UseCase, *stubParametros) {
	parametros := &stubParametros{porProducto: map[int64]*entity.ParametroReorden{}}
	productos := &stubProductos{items: map[int64]*entity.Producto{
		1: {ID: 1, SKU: "COCA-000001", Nombre: "Coca Cola 600ml", Activo: true},
	}}
	uc := NewUseCase(parametros, productos,
		logger.New(logger.Config{Env: "development", Level: "error"}))
	return uc, parametros
}

func TestGuardarValidaNiveles(t *testing.T) {
	uc, parametros := newUseCase()
	ctx := context.Background()

	_, err := uc.Guardar(ctx, dto.ParametroReordenRequest{
		ProductoID: 1, NivelMinimo: dec("-1"), NivelOptimo: dec("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Guardar(ctx, dto.ParametroReordenRequest{
		ProductoID: 1, NivelMinimo: dec("10"), NivelOptimo: dec("5"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Guardar(ctx, dto.ParametroReordenRequest{
		ProductoID: 404, NivelMinimo: dec("1"), NivelOptimo: dec("2"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	p, err := uc.Guardar(ctx, dto.ParametroReordenRequest{
		ProductoID: 1, NivelMinimo: dec("5"), NivelOptimo: dec("20"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Coca Cola 600ml", p.ProductoNombre)

	// el upsert conserva la identidad del parámetro
	otra, err := uc.Guardar(ctx, dto.ParametroReordenRequest{
		ProductoID: 1, NivelMinimo: dec("8"), NivelOptimo: dec("25"),
	})
	require.NoError(t, err)
	assert.Equal(t, p.ID, otra.ID)
	require.Len(t, parametros.porProducto, 1)
}

func TestSugerencias(t *testing.T) {
	uc, parametros := newUseCase()

	parametros.conStock = []*repository.ReordenConStock{
		{
			// por piezas, justo en el mínimo: no entra
			Parametro: entity.ParametroReorden{
				ProductoID: 1, ProductoNombre: "Coca Cola 600ml",
				NivelMinimo: dec("10"), NivelOptimo: dec("30"),
			},
			UnidadNombre: "Pieza", UnidadAbreviatura: "pz",
			TotalPiezas: 10,
		},
		{
			// por piezas, déficit 6
			Parametro: entity.ParametroReorden{
				ProductoID: 2, ProductoNombre: "Agua 1L",
				NivelMinimo: dec("8"), NivelOptimo: dec("24"),
			},
			UnidadNombre: "Pieza", UnidadAbreviatura: "pz",
			TotalPiezas: 2,
		},
		{
			// por gramos, déficit 150.5
			Parametro: entity.ParametroReorden{
				ProductoID: 3, ProductoNombre: "Café molido",
				NivelMinimo: dec("500"), NivelOptimo: dec("2000"),
			},
			UnidadNombre: "Gramo", UnidadAbreviatura: "g",
			TotalPiezas: 0, TotalGramos: dec("349.5"),
		},
	}

	sugerencias, err := uc.Sugerencias(context.Background())
	require.NoError(t, err)
	require.Len(t, sugerencias, 2)

	// ordenadas por déficit descendente, con prioridad secuencial
	primero := sugerencias[0]
	assert.Equal(t, 1, primero.Prioridad)
	assert.EqualValues(t, 3, primero.ProductoID)
	assert.Equal(t, "gramos", primero.Unidad)
	assert.True(t, primero.Deficit.Equal(dec("150.5")))
	assert.True(t, primero.Sugerido.Equal(dec("1650.5")))

	segundo := sugerencias[1]
	assert.Equal(t, 2, segundo.Prioridad)
	assert.EqualValues(t, 2, segundo.ProductoID)
	assert.Equal(t, "piezas", segundo.Unidad)
	assert.True(t, segundo.Deficit.Equal(dec("6")))
	assert.True(t, segundo.Sugerido.Equal(dec("22")))
}
