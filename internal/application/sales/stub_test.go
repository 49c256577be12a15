package sales

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acuellar-dev/inventario-pos/internal/application/stock"
	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
	"github.com/acuellar-dev/inventario-pos/pkg/logger"
)

// Stubs en memoria, suficientes para ejercitar el orquestador de ventas sin
// base de datos.

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

type stubStock struct {
	filas map[[2]int64]*entity.StockActual
}

func clave(productoID, almacenID int64) [2]int64 { return [2]int64{productoID, almacenID} }

func (s *stubStock) EnsureFila(_ context.Context, productoID, almacenID int64) error {
	k := clave(productoID, almacenID)
	if _, ok := s.filas[k]; !ok {
		s.filas[k] = &entity.StockActual{ProductoID: productoID, AlmacenID: almacenID, LastUpdated: time.Now()}
	}
	return nil
}

func (s *stubStock) GetForUpdate(_ context.Context, productoID, almacenID int64) (*entity.StockActual, error) {
	fila, ok := s.filas[clave(productoID, almacenID)]
	if !ok {
		return nil, nil
	}
	copia := *fila
	return &copia, nil
}

func (s *stubStock) Update(_ context.Context, fila *entity.StockActual) error {
	copia := *fila
	s.filas[clave(fila.ProductoID, fila.AlmacenID)] = &copia
	return nil
}

func (s *stubStock) Get(_ context.Context, productoID, almacenID int64) (*entity.StockActual, error) {
	return s.GetForUpdate(context.Background(), productoID, almacenID)
}

func (s *stubStock) List(_ context.Context, _ *int64) ([]*entity.StockActual, error) {
	return nil, nil
}

func (s *stubStock) TotalesPorAlmacen(_ context.Context, _ int64) ([]*repository.TotalProducto, error) {
	return nil, nil
}

func (s *stubStock) CrearFila(_ context.Context, fila *entity.StockActual) error {
	copia := *fila
	s.filas[clave(fila.ProductoID, fila.AlmacenID)] = &copia
	return nil
}

func (s *stubStock) EliminarFila(_ context.Context, productoID, almacenID int64) error {
	delete(s.filas, clave(productoID, almacenID))
	return nil
}

type stubMovimientos struct {
	items  []*entity.MovimientoStock
	nextID int64
}

func (s *stubMovimientos) Create(_ context.Context, m *entity.MovimientoStock) error {
	s.nextID++
	m.ID = s.nextID
	copia := *m
	s.items = append(s.items, &copia)
	return nil
}

func (s *stubMovimientos) GetByID(_ context.Context, id int64) (*entity.MovimientoStock, error) {
	for _, m := range s.items {
		if m.ID == id {
			copia := *m
			return &copia, nil
		}
	}
	return nil, nil
}

func (s *stubMovimientos) Delete(_ context.Context, _ int64) error { return nil }

func (s *stubMovimientos) ListConFiltros(_ context.Context, _ repository.FiltroMovimientos) ([]*entity.MovimientoStock, int64, error) {
	return s.items, int64(len(s.items)), nil
}

func (s *stubMovimientos) ListInsumos(_ context.Context, _, _ int) ([]*entity.MovimientoStock, int64, error) {
	return nil, 0, nil
}

type stubAlmacenes struct {
	items map[int64]*entity.Almacen
}

func (s *stubAlmacenes) Create(_ context.Context, a *entity.Almacen) error {
	s.items[a.ID] = a
	return nil
}

func (s *stubAlmacenes) GetByID(_ context.Context, id int64) (*entity.Almacen, error) {
	return s.items[id], nil
}

func (s *stubAlmacenes) List(_ context.Context) ([]*entity.Almacen, error) { return nil, nil }

func (s *stubAlmacenes) Update(_ context.Context, _ *entity.Almacen) error { return nil }

type stubPrecios struct {
	overrides map[[2]int64]*entity.PrecioAlmacen
}

func (s *stubPrecios) Upsert(_ context.Context, p *entity.PrecioAlmacen) error {
	s.overrides[clave(p.ProductoID, p.AlmacenID)] = p
	return nil
}

func (s *stubPrecios) Get(_ context.Context, productoID, almacenID int64) (*entity.PrecioAlmacen, error) {
	return s.overrides[clave(productoID, almacenID)], nil
}

func (s *stubPrecios) Delete(_ context.Context, productoID, almacenID int64) error {
	delete(s.overrides, clave(productoID, almacenID))
	return nil
}

func (s *stubPrecios) ListByProducto(_ context.Context, _ int64) ([]*entity.PrecioAlmacen, error) {
	return nil, nil
}

type stubVentas struct {
	ventas     map[int64]*entity.Venta
	items      []*entity.VentaItem
	nextID     int64
	lastFiltro repository.FiltroVentas
}

func (s *stubVentas) CreateVenta(_ context.Context, v *entity.Venta) error {
	s.nextID++
	v.ID = s.nextID
	copia := *v
	s.ventas[v.ID] = &copia
	return nil
}

func (s *stubVentas) CreateItem(_ context.Context, it *entity.VentaItem) error {
	copia := *it
	s.items = append(s.items, &copia)
	return nil
}

func (s *stubVentas) GetDetalle(_ context.Context, id int64) (*entity.Venta, error) {
	v, ok := s.ventas[id]
	if !ok {
		return nil, nil
	}
	copia := *v
	for _, it := range s.items {
		if it.VentaID == id {
			copia.Items = append(copia.Items, it)
		}
	}
	return &copia, nil
}

func (s *stubVentas) ListConFiltros(_ context.Context, f repository.FiltroVentas) ([]*entity.Venta, int64, error) {
	s.lastFiltro = f
	var out []*entity.Venta
	for _, v := range s.ventas {
		if f.Estado != "" && v.Estado != f.Estado {
			continue
		}
		out = append(out, v)
	}
	return out, int64(len(out)), nil
}

func (s *stubVentas) UpdateEstado(_ context.Context, id int64, estado string) error {
	v, ok := s.ventas[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.Estado = estado
	return nil
}

type stubIngresos struct {
	items []*entity.IngresoVenta
}

func (s *stubIngresos) Create(_ context.Context, i *entity.IngresoVenta) error {
	i.ID = int64(len(s.items) + 1)
	copia := *i
	s.items = append(s.items, &copia)
	return nil
}

func (s *stubIngresos) ListConFiltros(_ context.Context, _ repository.FiltroIngresos) ([]*entity.IngresoVenta, int64, error) {
	return s.items, int64(len(s.items)), nil
}

func (s *stubIngresos) TotalPorTipo(_ context.Context, tipo string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, i := range s.items {
		if i.Tipo == tipo {
			total = total.Add(i.Monto)
		}
	}
	return total, nil
}

// stubTx ejecuta fn directamente sobre los stubs compartidos.
type stubTx struct {
	repos stock.Repos
}

func (t *stubTx) Run(_ context.Context, fn func(r stock.Repos) error) error {
	return fn(t.repos)
}

// entorno con un producto por piezas (1, precio base 100) y uno por gramos
// (2, precio base 0.50 por gramo), stock inicial en el almacén 1.
type testEnv struct {
	productos   *stubProductos
	stock       *stubStock
	movimientos *stubMovimientos
	ventas      *stubVentas
	ingresos    *stubIngresos
	precios     *stubPrecios
	uc          *UseCase
}

func newTestEnv() *testEnv {
	productos := &stubProductos{items: map[int64]*entity.Producto{
		1: {
			ID: 1, SKU: "COCA-000001", Nombre: "Coca Cola 600ml", UnidadID: 1, Activo: true,
			PrecioBase: decimal.RequireFromString("100"),
			Unidad:     &entity.Unidad{ID: 1, Nombre: "Pieza", Abreviatura: "pz"},
		},
		2: {
			ID: 2, SKU: "CAFE-000001", Nombre: "Café molido", UnidadID: 2, Activo: true,
			PrecioBase: decimal.RequireFromString("0.50"),
			Unidad:     &entity.Unidad{ID: 2, Nombre: "Gramo", Abreviatura: "g"},
		},
	}}
	gramos := decimal.RequireFromString("1000")
	stockRepo := &stubStock{filas: map[[2]int64]*entity.StockActual{
		clave(1, 1): {ProductoID: 1, AlmacenID: 1, Cantidad: 10},
		clave(2, 1): {ProductoID: 2, AlmacenID: 1, CantidadGramos: &gramos},
	}}
	movimientos := &stubMovimientos{}
	ventas := &stubVentas{ventas: map[int64]*entity.Venta{}}
	ingresos := &stubIngresos{}
	precios := &stubPrecios{overrides: map[[2]int64]*entity.PrecioAlmacen{}}
	almacenes := &stubAlmacenes{items: map[int64]*entity.Almacen{
		1: {ID: 1, Nombre: "Bodega Central"},
	}}

	tx := &stubTx{repos: stock.Repos{
		Productos:   productos,
		Stock:       stockRepo,
		Movimientos: movimientos,
		Ventas:      ventas,
		Precios:     precios,
		Ingresos:    ingresos,
	}}
	return &testEnv{
		productos:   productos,
		stock:       stockRepo,
		movimientos: movimientos,
		ventas:      ventas,
		ingresos:    ingresos,
		precios:     precios,
		uc:          NewUseCase(tx, ventas, almacenes, logger.New(logger.Config{Env: "development", Level: "error"})),
	}
}
