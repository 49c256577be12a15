package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// FiltroIngresos parámetros de consulta de ingresos de venta.
type FiltroIngresos struct {
	Tipo       string
	FechaDesde *time.Time
	FechaHasta *time.Time
	Page       int
	Limit      int
}

// IngresoRepository acceso a los ingresos generados por ventas.
type IngresoRepository interface {
	Create(ctx context.Context, i *entity.IngresoVenta) error
	ListConFiltros(ctx context.Context, f FiltroIngresos) ([]*entity.IngresoVenta, int64, error)
	TotalPorTipo(ctx context.Context, tipo string) (decimal.Decimal, error)
}

// ExtraccionRepository acceso a los retiros de dinero.
type ExtraccionRepository interface {
	Create(ctx context.Context, e *entity.ExtraccionIngreso) error
	List(ctx context.Context, page, limit int) ([]*entity.ExtraccionIngreso, int64, error)
	TotalPorOrigen(ctx context.Context, origen string) (decimal.Decimal, error)
}

// FiltroGastos parámetros de consulta de gastos.
type FiltroGastos struct {
	FechaDesde *time.Time
	FechaHasta *time.Time
	Page       int
	Limit      int
}

// GastoRepository acceso a los gastos operativos. El borrado es lógico: las
// consultas excluyen los gastos eliminados.
type GastoRepository interface {
	Create(ctx context.Context, g *entity.Gasto) error
	GetByID(ctx context.Context, id int64) (*entity.Gasto, error)
	List(ctx context.Context, f FiltroGastos) ([]*entity.Gasto, int64, error)
	Delete(ctx context.Context, id int64) error
}
