package repository

import (
	"context"
	"time"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// FiltroMovimientos parámetros de consulta de la bitácora. Sort solo admite
// los campos de la whitelist del repositorio (fecha, id, tipo).
type FiltroMovimientos struct {
	ProductoID  *int64
	AlmacenID   *int64 // coincide con origen o destino
	UsuarioID   *int64
	ProveedorID *int64
	Tipo        string
	FechaDesde  *time.Time
	FechaHasta  *time.Time
	Page        int
	Limit       int
	Sort        string
	Desc        bool
}

// MovimientoRepository bitácora de movimientos de stock.
type MovimientoRepository interface {
	Create(ctx context.Context, m *entity.MovimientoStock) error
	GetByID(ctx context.Context, id int64) (*entity.MovimientoStock, error)
	Delete(ctx context.Context, id int64) error
	ListConFiltros(ctx context.Context, f FiltroMovimientos) ([]*entity.MovimientoStock, int64, error)
	ListInsumos(ctx context.Context, page, limit int) ([]*entity.MovimientoStock, int64, error)
}
