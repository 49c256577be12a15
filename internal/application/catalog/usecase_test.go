package catalog

import (
	"context"
	"regexp"
	"strings"
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

type stubProductos struct {
	items  map[int64]*entity.Producto
	nextID int64
}

func (s *stubProductos) Create(_ context.Context, p *entity.Producto) error {
	s.nextID++
	p.ID = s.nextID
	s.items[p.ID] = p
	return nil
}

func (s *stubProductos) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (s *stubProductos) GetBySKU(_ context.Context, sku string) (*entity.Producto, error) {
	for _, p := range s.items {
		if p.SKU == sku {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (s *stubProductos) GetByBarcode(_ context.Context, barcode string) (*entity.Producto, error) {
	for _, p := range s.items {
		if p.Barcode != nil && *p.Barcode == barcode {
			copia := *p
			return &copia, nil
		}
	}
	return nil, nil
}

func (s *stubProductos) Update(_ context.Context, p *entity.Producto) error {
	copia := *p
	s.items[p.ID] = &copia
	return nil
}

func (s *stubProductos) Search(_ context.Context, _ repository.FiltroProductos) ([]*entity.Producto, int64, error) {
	return nil, 0, nil
}

type stubUnidades struct {
	items map[int64]*entity.Unidad
}

func (s *stubUnidades) GetByID(_ context.Context, id int64) (*entity.Unidad, error) {
	return s.items[id], nil
}

func (s *stubUnidades) List(_ context.Context) ([]*entity.Unidad, error) {
	var out []*entity.Unidad
	for _, u := range s.items {
		out = append(out, u)
	}
	return out, nil
}

type stubPrecios struct {
	items map[[2]int64]*entity.PrecioAlmacen
}

func (s *stubPrecios) Upsert(_ context.Context, p *entity.PrecioAlmacen) error {
	s.items[[2]int64{p.ProductoID, p.AlmacenID}] = p
	return nil
}

func (s *stubPrecios) Get(_ context.Context, productoID, almacenID int64) (*entity.PrecioAlmacen, error) {
	return s.items[[2]int64{productoID, almacenID}], nil
}

func (s *stubPrecios) Delete(_ context.Context, productoID, almacenID int64) error {
	delete(s.items, [2]int64{productoID, almacenID})
	return nil
}

func (s *stubPrecios) ListByProducto(_ context.Context, productoID int64) ([]*entity.PrecioAlmacen, error) {
	var out []*entity.PrecioAlmacen
	for _, p := range s.items {
		if p.ProductoID == productoID {
			out = append(out, p)
		}
	}
	return out, nil
}

func newUseCase() (*UseCase, *stubProductos, *stubPrecios) {
	productos := &stubProductos{items: map[int64]*entity.Producto{}}
	unidades := &stubUnidades{items: map[int64]*entity.Unidad{
		1: {ID: 1, Nombre: "Pieza", Abreviatura: "pz"},
		2: {ID: 2, Nombre: "Gramo", Abreviatura: "g"},
	}}
	precios := &stubPrecios{items: map[[2]int64]*entity.PrecioAlmacen{}}
	log := logger.New(logger.Config{Env: "development", Level: "error"})
	return NewUseCase(productos, unidades, precios, log), productos, precios
}

var skuRe = regexp.MustCompile(`^[A-Z0-9]{1,5}-[0-9A-F]{6}$`)

func TestGenerarSKU(t *testing.T) {
	sku := generarSKU("Café Molido")
	assert.Regexp(t, skuRe, sku)
	assert.True(t, strings.HasPrefix(sku, "CAFEM-"), "sku %q debería plegar los acentos", sku)

	sku = generarSKU("¡¡¡***!!!")
	assert.True(t, strings.HasPrefix(sku, "PROD-"), "sku %q sin caracteres útiles", sku)

	assert.NotEqual(t, generarSKU("Azúcar"), generarSKU("Azúcar"))
}

func TestCrearProductoGeneraSKU(t *testing.T) {
	uc, _, _ := newUseCase()

	p, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:     "Leche entera 1L",
		UnidadID:   1,
		PrecioBase: decimal.RequireFromString("25.50"),
	})
	require.NoError(t, err)
	assert.Regexp(t, skuRe, p.SKU)
	assert.True(t, p.Activo)
	require.NotNil(t, p.Unidad)
	assert.Equal(t, "pz", p.Unidad.Abreviatura)
}

func TestCrearProductoUnidadInexistente(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "X", UnidadID: 99, PrecioBase: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCrearProductoBarcodeEnUso(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()
	barcode := "7501234567890"

	_, err := uc.Crear(ctx, dto.CrearProductoRequest{
		Nombre: "Original", UnidadID: 1, PrecioBase: decimal.NewFromInt(10), Barcode: &barcode,
	})
	require.NoError(t, err)

	_, err = uc.Crear(ctx, dto.CrearProductoRequest{
		Nombre: "Duplicado", UnidadID: 1, PrecioBase: decimal.NewFromInt(10), Barcode: &barcode,
	})
	require.ErrorIs(t, err, domain.ErrConflict)

	var conflicto *BarcodeConflictError
	require.ErrorAs(t, err, &conflicto)
	assert.False(t, conflicto.Inactivo)
}

func TestCrearProductoBarcodeDeInactivo(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()
	barcode := "7501234567890"

	original, err := uc.Crear(ctx, dto.CrearProductoRequest{
		Nombre: "Original", UnidadID: 1, PrecioBase: decimal.NewFromInt(10), Barcode: &barcode,
	})
	require.NoError(t, err)
	require.NoError(t, uc.Desactivar(ctx, original.ID))

	_, err = uc.Crear(ctx, dto.CrearProductoRequest{
		Nombre: "Nuevo", UnidadID: 1, PrecioBase: decimal.NewFromInt(10), Barcode: &barcode,
	})
	var conflicto *BarcodeConflictError
	require.ErrorAs(t, err, &conflicto)
	assert.True(t, conflicto.Inactivo)
	assert.Equal(t, original.ID, conflicto.ProductoID)
}

func TestReactivar(t *testing.T) {
	uc, productos, _ := newUseCase()
	ctx := context.Background()

	original, err := uc.Crear(ctx, dto.CrearProductoRequest{
		Nombre:      "Queso Oaxaca",
		Descripcion: "Queso de hebra",
		Categoria:   "Lácteos",
		UnidadID:    2,
		PrecioBase:  decimal.RequireFromString("120.00"),
	})
	require.NoError(t, err)
	require.NoError(t, uc.Desactivar(ctx, original.ID))

	// solo se sobreescribe el nombre; lo demás se conserva
	p, err := uc.Reactivar(ctx, original.ID, dto.ReactivarProductoRequest{
		Nombre: "Queso Oaxaca 500g",
	})
	require.NoError(t, err)
	assert.True(t, p.Activo)
	assert.Equal(t, "Queso Oaxaca 500g", p.Nombre)
	assert.Equal(t, "Queso de hebra", p.Descripcion)
	assert.Equal(t, "Lácteos", p.Categoria)
	assert.True(t, p.PrecioBase.Equal(decimal.RequireFromString("120.00")))

	guardado, err := productos.GetByID(ctx, original.ID)
	require.NoError(t, err)
	assert.True(t, guardado.Activo)

	// reactivar un producto activo es conflicto
	_, err = uc.Reactivar(ctx, original.ID, dto.ReactivarProductoRequest{Nombre: "Otra vez"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDesactivar(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()

	p, err := uc.Crear(ctx, dto.CrearProductoRequest{
		Nombre: "Temporal", UnidadID: 1, PrecioBase: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Desactivar(ctx, p.ID))
	assert.ErrorIs(t, uc.Desactivar(ctx, p.ID), domain.ErrConflict)
	assert.ErrorIs(t, uc.Desactivar(ctx, 999), domain.ErrNotFound)
}

func TestActualizarParcial(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()

	p, err := uc.Crear(ctx, dto.CrearProductoRequest{
		Nombre: "Refresco", Categoria: "Bebidas", UnidadID: 1, PrecioBase: decimal.NewFromInt(18),
	})
	require.NoError(t, err)

	nombre := "Refresco 600ml"
	actualizado, err := uc.Actualizar(ctx, p.ID, dto.ActualizarProductoRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "Refresco 600ml", actualizado.Nombre)
	assert.Equal(t, "Bebidas", actualizado.Categoria)
	assert.True(t, actualizado.PrecioBase.Equal(decimal.NewFromInt(18)))
}

func TestPrecioFinal(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()

	p, err := uc.Crear(ctx, dto.CrearProductoRequest{
		Nombre: "Galletas", UnidadID: 1, PrecioBase: decimal.RequireFromString("15.00"),
	})
	require.NoError(t, err)

	// sin override rige el precio base
	precio, err := uc.PrecioFinal(ctx, p.ID, 1)
	require.NoError(t, err)
	assert.True(t, precio.Equal(decimal.RequireFromString("15.00")))

	_, err = uc.UpsertPrecio(ctx, p.ID, dto.PrecioAlmacenRequest{
		AlmacenID: 1, Precio: decimal.RequireFromString("17.50"),
	})
	require.NoError(t, err)

	precio, err = uc.PrecioFinal(ctx, p.ID, 1)
	require.NoError(t, err)
	assert.True(t, precio.Equal(decimal.RequireFromString("17.50")))

	// otro almacén sigue en precio base
	precio, err = uc.PrecioFinal(ctx, p.ID, 2)
	require.NoError(t, err)
	assert.True(t, precio.Equal(decimal.RequireFromString("15.00")))

	// al borrar el override vuelve el precio base
	require.NoError(t, uc.EliminarPrecio(ctx, p.ID, 1))
	precio, err = uc.PrecioFinal(ctx, p.ID, 1)
	require.NoError(t, err)
	assert.True(t, precio.Equal(decimal.RequireFromString("15.00")))

	assert.ErrorIs(t, uc.EliminarPrecio(ctx, p.ID, 1), domain.ErrNotFound)
}
