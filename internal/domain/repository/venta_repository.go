package repository

import (
	"context"
	"time"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// FiltroVentas parámetros de consulta de ventas.
type FiltroVentas struct {
	AlmacenID  *int64
	UsuarioID  *int64
	Estado     string
	FechaDesde *time.Time
	FechaHasta *time.Time
	Page       int
	Limit      int
}

// VentaRepository acceso a ventas y sus ítems.
type VentaRepository interface {
	CreateVenta(ctx context.Context, v *entity.Venta) error
	CreateItem(ctx context.Context, it *entity.VentaItem) error
	GetDetalle(ctx context.Context, id int64) (*entity.Venta, error)
	ListConFiltros(ctx context.Context, f FiltroVentas) ([]*entity.Venta, int64, error)
	UpdateEstado(ctx context.Context, id int64, estado string) error
}
