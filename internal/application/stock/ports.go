package stock

import (
	"context"

	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

// Repos agrupa los repositorios ligados a una misma transacción. El TxRunner
// entrega una instancia nueva por transacción; todas las operaciones hechas a
// través de ella comparten la conexión y el commit.
type Repos struct {
	Productos   repository.ProductoRepository
	Stock       repository.StockRepository
	Movimientos repository.MovimientoRepository
	Ordenes     repository.OrdenCompraRepository
	Ventas      repository.VentaRepository
	Precios     repository.PrecioAlmacenRepository
	Ingresos    repository.IngresoRepository
}

// TxRunner ejecuta fn dentro de una transacción de base de datos. Si fn
// devuelve error la transacción se revierte completa; si no, se confirma.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
