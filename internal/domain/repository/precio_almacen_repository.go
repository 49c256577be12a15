package repository

import (
	"context"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// PrecioAlmacenRepository overrides de precio por almacén.
type PrecioAlmacenRepository interface {
	Upsert(ctx context.Context, p *entity.PrecioAlmacen) error
	Get(ctx context.Context, productoID, almacenID int64) (*entity.PrecioAlmacen, error)
	Delete(ctx context.Context, productoID, almacenID int64) error
	ListByProducto(ctx context.Context, productoID int64) ([]*entity.PrecioAlmacen, error)
}
