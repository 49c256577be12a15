package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/application/stock"
	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/inventory"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
	"github.com/acuellar-dev/inventario-pos/pkg/logger"
)

// UseCase registra ventas de punto de venta. Cada ítem descuenta stock del
// almacén y deja un movimiento de salida; si algún ítem no tiene saldo
// suficiente, la venta completa se revierte.
type UseCase struct {
	tx        stock.TxRunner
	ventas    repository.VentaRepository
	almacenes repository.AlmacenRepository
	log       *logger.Logger
}

func NewUseCase(tx stock.TxRunner, ventas repository.VentaRepository, almacenes repository.AlmacenRepository, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, ventas: ventas, almacenes: almacenes, log: log}
}

// RegistrarVenta crea la venta con sus ítems, descuenta stock y registra los
// movimientos de salida, todo en una transacción. El precio unitario de cada
// ítem se resuelve así: precio enviado, override del almacén, o precio base.
func (u *UseCase) RegistrarVenta(ctx context.Context, in dto.RegistrarVentaRequest, usuarioID *int64) (*entity.Venta, error) {
	almacen, err := u.almacenes.GetByID(ctx, in.AlmacenID)
	if err != nil {
		return nil, err
	}
	if almacen == nil {
		return nil, fmt.Errorf("almacén %d: %w", in.AlmacenID, domain.ErrNotFound)
	}

	var venta *entity.Venta
	err = u.tx.Run(ctx, func(r stock.Repos) error {
		lote := uuid.NewString()
		total := decimal.Zero
		items := make([]*entity.VentaItem, 0, len(in.Items))

		for _, it := range in.Items {
			p, err := r.Productos.GetByID(ctx, it.ProductoID)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("producto %d: %w", it.ProductoID, domain.ErrNotFound)
			}
			if !p.Activo {
				return fmt.Errorf("el producto %q está inactivo: %w", p.Nombre, domain.ErrConflict)
			}
			cant, err := stock.CantidadValidada(p, it.Cantidad, it.CantidadGramos)
			if err != nil {
				return err
			}

			unitario, err := u.resolverPrecio(ctx, r, p, in.AlmacenID, it.PrecioUnitario)
			if err != nil {
				return err
			}
			subtotal := cant.Base().Mul(unitario).Round(2)
			total = total.Add(subtotal)
			items = append(items, &entity.VentaItem{
				ProductoID:     it.ProductoID,
				Cantidad:       it.Cantidad,
				CantidadGramos: it.CantidadGramos,
				PrecioUnitario: unitario,
				Subtotal:       subtotal,
				ProductoNombre: p.Nombre,
			})
		}

		venta = &entity.Venta{
			AlmacenID: in.AlmacenID,
			UsuarioID: usuarioID,
			Fecha:     time.Now(),
			Estado:    entity.VentaConfirmada,
			Total:     total,
		}
		if err := r.Ventas.CreateVenta(ctx, venta); err != nil {
			return err
		}

		// El ingreso de caja nace junto con la venta, en la misma transacción.
		ingreso := &entity.IngresoVenta{
			VentaID: venta.ID,
			Tipo:    in.TipoIngreso,
			Monto:   total,
			Fecha:   venta.Fecha,
		}
		if err := r.Ingresos.Create(ctx, ingreso); err != nil {
			return err
		}

		origen := in.AlmacenID
		for _, item := range items {
			item.VentaID = venta.ID
			if err := r.Ventas.CreateItem(ctx, item); err != nil {
				return err
			}

			cant, ok := inventory.CantidadDesdeCampos(item.Cantidad, item.CantidadGramos)
			if !ok {
				return fmt.Errorf("ítem %d con cantidades inconsistentes: %w", item.ProductoID, domain.ErrInvalidInput)
			}
			if _, err := stock.AjustarEnTx(ctx, r, item.ProductoID, origen, cant.Neg()); err != nil {
				return err
			}

			unitario := item.PrecioUnitario
			mov := &entity.MovimientoStock{
				ProductoID:     item.ProductoID,
				OrigenAlmacen:  &origen,
				Cantidad:       item.Cantidad,
				CantidadGramos: item.CantidadGramos,
				Tipo:           entity.MovimientoSalida,
				Fecha:          venta.Fecha,
				UsuarioID:      usuarioID,
				Motivo:         fmt.Sprintf("Venta #%d", venta.ID),
				PrecioUnitario: &unitario,
				PrecioTotal:    &item.Subtotal,
				LoteID:         &lote,
			}
			if err := stock.RegistrarMovimientoEnTx(ctx, r, mov); err != nil {
				return err
			}
		}
		venta.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	venta.AlmacenNombre = almacen.Nombre
	u.log.Info().Int64("venta_id", venta.ID).Int64("almacen_id", in.AlmacenID).
		Str("total", venta.Total.String()).Msg("venta registrada")
	return venta, nil
}

// resolverPrecio aplica la cascada de precios dentro de la transacción.
func (u *UseCase) resolverPrecio(ctx context.Context, r stock.Repos, p *entity.Producto, almacenID int64, enviado *decimal.Decimal) (decimal.Decimal, error) {
	if enviado != nil {
		if enviado.IsNegative() {
			return decimal.Zero, fmt.Errorf("precio_unitario no puede ser negativo: %w", domain.ErrInvalidInput)
		}
		return *enviado, nil
	}
	override, err := r.Precios.Get(ctx, p.ID, almacenID)
	if err != nil {
		return decimal.Zero, err
	}
	if override != nil {
		return override.Precio, nil
	}
	return p.PrecioBase, nil
}

// ObtenerDetalle devuelve una venta con sus ítems.
func (u *UseCase) ObtenerDetalle(ctx context.Context, id int64) (*entity.Venta, error) {
	v, err := u.ventas.GetDetalle(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

// ListarConFiltros devuelve ventas paginadas.
func (u *UseCase) ListarConFiltros(ctx context.Context, f repository.FiltroVentas) ([]*entity.Venta, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 50
	}
	if f.Estado != "" && f.Estado != entity.VentaConfirmada && f.Estado != entity.VentaCancelada {
		return nil, 0, fmt.Errorf("estado de venta desconocido %q: %w", f.Estado, domain.ErrInvalidInput)
	}
	return u.ventas.ListConFiltros(ctx, f)
}

// ActualizarEstado cambia el estado de una venta. El cambio es solo de
// etiqueta: cancelar una venta no repone el stock descontado.
func (u *UseCase) ActualizarEstado(ctx context.Context, id int64, estado string) (*entity.Venta, error) {
	if estado != entity.VentaConfirmada && estado != entity.VentaCancelada {
		return nil, fmt.Errorf("estado de venta desconocido %q: %w", estado, domain.ErrInvalidInput)
	}
	if err := u.ventas.UpdateEstado(ctx, id, estado); err != nil {
		return nil, err
	}
	u.log.Info().Int64("venta_id", id).Str("estado", estado).Msg("estado de venta actualizado")
	return u.ventas.GetDetalle(ctx, id)
}
