package repository

import (
	"context"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// ProveedorRepository acceso a proveedores.
type ProveedorRepository interface {
	Create(ctx context.Context, p *entity.Proveedor) error
	GetByID(ctx context.Context, id int64) (*entity.Proveedor, error)
	List(ctx context.Context, soloActivos bool) ([]*entity.Proveedor, error)
	Update(ctx context.Context, p *entity.Proveedor) error
}
