package stock

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/inventory"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

// validarMovimiento verifica los invariantes de forma de una fila de bitácora
// antes de insertarla: tipo conocido, exactamente una cantidad poblada y
// positiva, y la combinación de almacenes que exige cada tipo.
func validarMovimiento(m *entity.MovimientoStock) error {
	switch m.Tipo {
	case entity.MovimientoEntrada:
		if m.DestinoAlmacen == nil {
			return fmt.Errorf("una entrada requiere destino_almacen: %w", domain.ErrInvalidInput)
		}
		if m.OrigenAlmacen != nil {
			return fmt.Errorf("una entrada no admite origen_almacen: %w", domain.ErrInvalidInput)
		}
	case entity.MovimientoSalida, entity.MovimientoInsumo:
		if m.OrigenAlmacen == nil {
			return fmt.Errorf("un movimiento de tipo %s requiere origen_almacen: %w", m.Tipo, domain.ErrInvalidInput)
		}
		if m.DestinoAlmacen != nil {
			return fmt.Errorf("un movimiento de tipo %s no admite destino_almacen: %w", m.Tipo, domain.ErrInvalidInput)
		}
	case entity.MovimientoTraspaso:
		if m.OrigenAlmacen == nil || m.DestinoAlmacen == nil {
			return fmt.Errorf("un traspaso requiere origen_almacen y destino_almacen: %w", domain.ErrInvalidInput)
		}
		if *m.OrigenAlmacen == *m.DestinoAlmacen {
			return fmt.Errorf("en un traspaso, origen_almacen y destino_almacen deben ser distintos: %w", domain.ErrInvalidInput)
		}
	default:
		return fmt.Errorf("tipo de movimiento desconocido %q: %w", m.Tipo, domain.ErrInvalidInput)
	}

	cant, ok := inventory.CantidadDesdeCampos(m.Cantidad, m.CantidadGramos)
	if !ok {
		return fmt.Errorf("enviar exactamente uno de cantidad o cantidad_gramos: %w", domain.ErrInvalidInput)
	}
	if !cant.EsPositiva() {
		return fmt.Errorf("la cantidad del movimiento debe ser positiva: %w", domain.ErrInvalidInput)
	}
	return nil
}

// RegistrarMovimientoEnTx valida e inserta una fila de bitácora dentro de la
// transacción en curso. Si viene precio unitario sin total, lo deriva de la
// cantidad autoritativa.
func RegistrarMovimientoEnTx(ctx context.Context, r Repos, m *entity.MovimientoStock) error {
	if err := validarMovimiento(m); err != nil {
		return err
	}
	if m.PrecioUnitario != nil && m.PrecioTotal == nil {
		cant, _ := inventory.CantidadDesdeCampos(m.Cantidad, m.CantidadGramos)
		m.PrecioTotal = calcularPrecioTotal(cant, m.PrecioUnitario)
	}
	return r.Movimientos.Create(ctx, m)
}

// calcularPrecioTotal deriva el total como cantidad autoritativa por precio
// unitario, redondeado a dos decimales. Devuelve nil si no hay precio.
func calcularPrecioTotal(cant inventory.Cantidad, unitario *decimal.Decimal) *decimal.Decimal {
	if unitario == nil {
		return nil
	}
	total := cant.Base().Mul(*unitario).Round(2)
	return &total
}

// MovementLog expone las consultas de la bitácora de movimientos.
type MovementLog struct {
	movimientos repository.MovimientoRepository
}

func NewMovementLog(movimientos repository.MovimientoRepository) *MovementLog {
	return &MovementLog{movimientos: movimientos}
}

// ListarConFiltros devuelve movimientos paginados. El orden por defecto es
// fecha descendente; el repositorio rechaza campos de orden fuera de su
// whitelist.
func (l *MovementLog) ListarConFiltros(ctx context.Context, f repository.FiltroMovimientos) ([]*entity.MovimientoStock, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 50
	}
	if f.Limit > 200 {
		f.Limit = 200
	}
	if f.Sort == "" {
		f.Sort = "fecha"
		f.Desc = true
	}
	if f.Tipo != "" {
		switch f.Tipo {
		case entity.MovimientoEntrada, entity.MovimientoSalida, entity.MovimientoTraspaso, entity.MovimientoInsumo:
		default:
			return nil, 0, fmt.Errorf("tipo de movimiento desconocido %q: %w", f.Tipo, domain.ErrInvalidInput)
		}
	}
	return l.movimientos.ListConFiltros(ctx, f)
}

// Obtener devuelve un movimiento por id.
func (l *MovementLog) Obtener(ctx context.Context, id int64) (*entity.MovimientoStock, error) {
	m, err := l.movimientos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

// ListarInsumos lista solo los movimientos de tipo insumo, que son los
// candidatos a cancelación.
func (l *MovementLog) ListarInsumos(ctx context.Context, page, limit int) ([]*entity.MovimientoStock, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	return l.movimientos.ListInsumos(ctx, page, limit)
}
