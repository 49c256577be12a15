package stock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/inventory"
)

// AjustarEnTx aplica un delta (positivo o negativo) al saldo de un producto en
// un almacén. Debe ejecutarse dentro de una transacción: crea la fila si no
// existe, la bloquea con FOR UPDATE y modifica únicamente el campo
// autoritativo según la unidad del producto. La clasificación se carga aquí
// mismo, nunca se confía en la del caller.
//
// Si el saldo resultante sería negativo devuelve *domain.InsufficientStockError
// y la transacción debe revertirse.
func AjustarEnTx(ctx context.Context, r Repos, productoID, almacenID int64, delta inventory.Cantidad) (*entity.StockActual, error) {
	p, err := r.Productos.GetByID(ctx, productoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	porGramos := p.PorGramos()

	if err := r.Stock.EnsureFila(ctx, productoID, almacenID); err != nil {
		return nil, err
	}
	fila, err := r.Stock.GetForUpdate(ctx, productoID, almacenID)
	if err != nil {
		return nil, err
	}
	if fila == nil {
		return nil, domain.ErrNotFound
	}

	if porGramos {
		actual := decimal.Zero
		if fila.CantidadGramos != nil {
			actual = *fila.CantidadGramos
		}
		nuevo := actual.Add(delta.Gramos())
		if nuevo.IsNegative() {
			return nil, &domain.InsufficientStockError{
				ProductoID: productoID,
				AlmacenID:  almacenID,
				Unidad:     "gramos",
				Deficit:    nuevo.Neg(),
			}
		}
		fila.CantidadGramos = &nuevo
		fila.Cantidad = 0
	} else {
		nuevo := fila.Cantidad + delta.Piezas()
		if nuevo < 0 {
			return nil, &domain.InsufficientStockError{
				ProductoID: productoID,
				AlmacenID:  almacenID,
				Unidad:     "piezas",
				Deficit:    decimal.NewFromInt(-nuevo),
			}
		}
		fila.Cantidad = nuevo
		fila.CantidadGramos = nil
	}
	fila.LastUpdated = time.Now()

	if err := r.Stock.Update(ctx, fila); err != nil {
		return nil, err
	}
	return fila, nil
}
