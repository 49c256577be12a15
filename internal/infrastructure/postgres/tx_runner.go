package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/acuellar-dev/inventario-pos/internal/application/stock"
)

// TxRunner implementa stock.TxRunner sobre pgx: abre una transacción, liga
// todos los repositorios a ella y confirma solo si fn no devuelve error.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (t *TxRunner) Run(ctx context.Context, fn func(r stock.Repos) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repos := stock.Repos{
		Productos:   NewProductoRepository(tx),
		Stock:       NewStockRepository(tx),
		Movimientos: NewMovimientoRepository(tx),
		Ordenes:     NewOrdenCompraRepository(tx),
		Ventas:      NewVentaRepository(tx),
		Precios:     NewPrecioAlmacenRepository(tx),
		Ingresos:    NewIngresoRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
