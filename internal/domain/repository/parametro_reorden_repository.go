package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// ReordenConStock parámetro de reorden junto con el saldo agregado del
// producto en todos los almacenes. La unidad viaja con la fila para que el
// caso de uso decida cuál total es el autoritativo.
type ReordenConStock struct {
	Parametro         entity.ParametroReorden
	UnidadNombre      string
	UnidadAbreviatura string
	TotalPiezas       int64
	TotalGramos       decimal.Decimal
}

// ParametroReordenRepository acceso a los niveles de reposición. Cada producto
// tiene a lo sumo un parámetro.
type ParametroReordenRepository interface {
	Upsert(ctx context.Context, p *entity.ParametroReorden) error
	GetByProducto(ctx context.Context, productoID int64) (*entity.ParametroReorden, error)
	List(ctx context.Context) ([]*entity.ParametroReorden, error)
	Delete(ctx context.Context, productoID int64) error
	ListConStock(ctx context.Context) ([]*ReordenConStock, error)
}
