package repository

import (
	"context"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// UnidadRepository catálogo de unidades de medida.
type UnidadRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Unidad, error)
	List(ctx context.Context) ([]*entity.Unidad, error)
}
