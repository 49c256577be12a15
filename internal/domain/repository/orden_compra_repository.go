package repository

import (
	"context"
	"time"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// FiltroOrdenes parámetros de consulta de órdenes de compra.
type FiltroOrdenes struct {
	ProveedorID *int64
	AlmacenID   *int64
	FechaDesde  *time.Time
	FechaHasta  *time.Time
	Page        int
	Limit       int
}

// OrdenCompraRepository acceso a órdenes de compra y sus ítems.
type OrdenCompraRepository interface {
	CreateOrden(ctx context.Context, o *entity.OrdenCompra) error
	CreateItem(ctx context.Context, it *entity.OrdenCompraItem) error
	// GetDetalle devuelve la orden con ítems y nombres de producto poblados.
	GetDetalle(ctx context.Context, id int64) (*entity.OrdenCompra, error)
	ListConFiltros(ctx context.Context, f FiltroOrdenes) ([]*entity.OrdenCompra, int64, error)
}
