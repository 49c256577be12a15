package repository

import (
	"context"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// AlmacenRepository acceso a almacenes.
type AlmacenRepository interface {
	Create(ctx context.Context, a *entity.Almacen) error
	GetByID(ctx context.Context, id int64) (*entity.Almacen, error)
	List(ctx context.Context) ([]*entity.Almacen, error)
	Update(ctx context.Context, a *entity.Almacen) error
}
