package stock

import (
	"context"
	"time"

	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

// Stubs en memoria de los repositorios, suficientes para ejercitar los
// orquestadores sin base de datos.

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

func (s *stubProductos) GetBySKU(_ context.Context, sku string) (*entity.Producto, error) {
	for _, p := range s.items {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubProductos) GetByBarcode(_ context.Context, barcode string) (*entity.Producto, error) {
	for _, p := range s.items {
		if p.Barcode != nil && *p.Barcode == barcode {
			return p, nil
		}
	}
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
		s.filas[k] = &entity.StockActual{
			ProductoID:  productoID,
			AlmacenID:   almacenID,
			LastUpdated: time.Now(),
		}
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
	fila, ok := s.filas[clave(productoID, almacenID)]
	if !ok {
		return nil, nil
	}
	copia := *fila
	return &copia, nil
}

func (s *stubStock) List(_ context.Context, almacenID *int64) ([]*entity.StockActual, error) {
	var out []*entity.StockActual
	for _, fila := range s.filas {
		if almacenID == nil || fila.AlmacenID == *almacenID {
			copia := *fila
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (s *stubStock) TotalesPorAlmacen(_ context.Context, _ int64) ([]*repository.TotalProducto, error) {
	return nil, nil
}

func (s *stubStock) CrearFila(_ context.Context, fila *entity.StockActual) error {
	k := clave(fila.ProductoID, fila.AlmacenID)
	if _, ok := s.filas[k]; ok {
		return domain.ErrDuplicate
	}
	copia := *fila
	s.filas[k] = &copia
	return nil
}

func (s *stubStock) EliminarFila(_ context.Context, productoID, almacenID int64) error {
	delete(s.filas, clave(productoID, almacenID))
	return nil
}

type stubMovimientos struct {
	items      []*entity.MovimientoStock
	nextID     int64
	lastFiltro repository.FiltroMovimientos
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

func (s *stubMovimientos) Delete(_ context.Context, id int64) error {
	for i, m := range s.items {
		if m.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *stubMovimientos) ListConFiltros(_ context.Context, f repository.FiltroMovimientos) ([]*entity.MovimientoStock, int64, error) {
	s.lastFiltro = f
	var out []*entity.MovimientoStock
	for _, m := range s.items {
		if f.Tipo != "" && m.Tipo != f.Tipo {
			continue
		}
		out = append(out, m)
	}
	return out, int64(len(out)), nil
}

func (s *stubMovimientos) ListInsumos(_ context.Context, page, limit int) ([]*entity.MovimientoStock, int64, error) {
	return s.ListConFiltros(context.Background(), repository.FiltroMovimientos{
		Tipo: entity.MovimientoInsumo, Page: page, Limit: limit, Sort: "fecha", Desc: true,
	})
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

// stubTx ejecuta fn directamente sobre los stubs compartidos.
type stubTx struct {
	repos Repos
}

func (t *stubTx) Run(_ context.Context, fn func(r Repos) error) error {
	return fn(t.repos)
}

// entorno de prueba con un producto por piezas (1) y uno por gramos (2),
// y dos almacenes (1 y 2).
type testEnv struct {
	productos   *stubProductos
	stock       *stubStock
	movimientos *stubMovimientos
	uc          *UseCase
}

func newTestEnv() *testEnv {
	productos := &stubProductos{items: map[int64]*entity.Producto{
		1: {
			ID: 1, SKU: "COCA-000001", Nombre: "Coca Cola 600ml", UnidadID: 1, Activo: true,
			Unidad: &entity.Unidad{ID: 1, Nombre: "Pieza", Abreviatura: "pz"},
		},
		2: {
			ID: 2, SKU: "CAFE-000001", Nombre: "Café molido", UnidadID: 2, Activo: true,
			Unidad: &entity.Unidad{ID: 2, Nombre: "Gramo", Abreviatura: "g"},
		},
	}}
	stockRepo := &stubStock{filas: map[[2]int64]*entity.StockActual{}}
	movimientos := &stubMovimientos{}
	almacenes := &stubAlmacenes{items: map[int64]*entity.Almacen{
		1: {ID: 1, Nombre: "Bodega Central"},
		2: {ID: 2, Nombre: "Sucursal Norte"},
	}}

	tx := &stubTx{repos: Repos{
		Productos:   productos,
		Stock:       stockRepo,
		Movimientos: movimientos,
	}}
	return &testEnv{
		productos:   productos,
		stock:       stockRepo,
		movimientos: movimientos,
		uc:          NewUseCase(tx, stockRepo, productos, almacenes, testLogger()),
	}
}
