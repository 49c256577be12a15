package repository

import (
	"context"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// FiltroProductos parámetros de búsqueda del catálogo.
type FiltroProductos struct {
	Texto     string // busca en nombre y sku
	Categoria string
	AlmacenID *int64 // si viene, resuelve precio final con override de ese almacén
	ConStock  bool   // solo productos con saldo positivo (en AlmacenID si viene)
	Activo    *bool
	Page      int
	Limit     int
}

// ProductoRepository acceso al catálogo de productos.
type ProductoRepository interface {
	Create(ctx context.Context, p *entity.Producto) error
	// GetByID devuelve el producto con su unidad poblada, o nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Producto, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Producto, error)
	// GetByBarcode busca por código de barras incluyendo inactivos, para
	// detectar colisiones y ofrecer reactivación.
	GetByBarcode(ctx context.Context, barcode string) (*entity.Producto, error)
	Update(ctx context.Context, p *entity.Producto) error
	Search(ctx context.Context, f FiltroProductos) ([]*entity.Producto, int64, error)
}
