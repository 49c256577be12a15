package purchasing

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

// PDFGenerator produce el comprobante imprimible de una orden de compra.
type PDFGenerator interface {
	OrdenCompra(o *entity.OrdenCompra, proveedor *entity.Proveedor, almacen *entity.Almacen) ([]byte, error)
}

// UseCase gestiona órdenes de compra. Registrar una orden crea la cabecera,
// sus ítems, las entradas de stock y los movimientos de bitácora en una sola
// transacción.
type UseCase struct {
	tx          stock.TxRunner
	ordenes     repository.OrdenCompraRepository
	proveedores repository.ProveedorRepository
	almacenes   repository.AlmacenRepository
	pdf         PDFGenerator
	log         *logger.Logger
}

func NewUseCase(tx stock.TxRunner, ordenes repository.OrdenCompraRepository, proveedores repository.ProveedorRepository, almacenes repository.AlmacenRepository, pdf PDFGenerator, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, ordenes: ordenes, proveedores: proveedores, almacenes: almacenes, pdf: pdf, log: log}
}

// CrearOrdenConStock registra la compra completa. Todos los movimientos de
// entrada comparten un mismo lote para poder rastrear la orden en la bitácora.
func (u *UseCase) CrearOrdenConStock(ctx context.Context, in dto.CrearOrdenCompraRequest, usuarioID *int64) (*entity.OrdenCompra, error) {
	proveedor, err := u.proveedores.GetByID(ctx, in.ProveedorID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, fmt.Errorf("proveedor %d: %w", in.ProveedorID, domain.ErrNotFound)
	}
	if !proveedor.Activo {
		return nil, fmt.Errorf("el proveedor %q está inactivo: %w", proveedor.Nombre, domain.ErrConflict)
	}
	almacen, err := u.almacenes.GetByID(ctx, in.AlmacenID)
	if err != nil {
		return nil, err
	}
	if almacen == nil {
		return nil, fmt.Errorf("almacén %d: %w", in.AlmacenID, domain.ErrNotFound)
	}

	var orden *entity.OrdenCompra
	err = u.tx.Run(ctx, func(r stock.Repos) error {
		lote := uuid.NewString()
		total := decimal.Zero
		items := make([]*entity.OrdenCompraItem, 0, len(in.Items))

		// Primera pasada: validar productos y calcular subtotales antes de
		// tocar cabecera o stock.
		for _, it := range in.Items {
			p, err := r.Productos.GetByID(ctx, it.ProductoID)
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("producto %d: %w", it.ProductoID, domain.ErrNotFound)
			}
			cant, err := stock.CantidadValidada(p, it.Cantidad, it.CantidadGramos)
			if err != nil {
				return err
			}
			if it.PrecioUnitario.IsNegative() {
				return fmt.Errorf("precio_unitario no puede ser negativo: %w", domain.ErrInvalidInput)
			}
			subtotal := cant.Base().Mul(it.PrecioUnitario).Round(2)
			total = total.Add(subtotal)
			items = append(items, &entity.OrdenCompraItem{
				ProductoID:     it.ProductoID,
				Cantidad:       it.Cantidad,
				CantidadGramos: it.CantidadGramos,
				PrecioUnitario: it.PrecioUnitario,
				Subtotal:       subtotal,
				ProductoNombre: p.Nombre,
				ProductoSKU:    p.SKU,
			})
		}

		orden = &entity.OrdenCompra{
			ProveedorID: in.ProveedorID,
			AlmacenID:   in.AlmacenID,
			UsuarioID:   usuarioID,
			Fecha:       time.Now(),
			Total:       total,
			Observacion: in.Observacion,
		}
		if err := r.Ordenes.CreateOrden(ctx, orden); err != nil {
			return err
		}

		destino := in.AlmacenID
		for _, item := range items {
			item.OrdenID = orden.ID
			if err := r.Ordenes.CreateItem(ctx, item); err != nil {
				return err
			}

			cant, ok := inventory.CantidadDesdeCampos(item.Cantidad, item.CantidadGramos)
			if !ok {
				return fmt.Errorf("ítem %d con cantidades inconsistentes: %w", item.ProductoID, domain.ErrInvalidInput)
			}
			if _, err := stock.AjustarEnTx(ctx, r, item.ProductoID, destino, cant); err != nil {
				return err
			}

			unitario := item.PrecioUnitario
			mov := &entity.MovimientoStock{
				ProductoID:     item.ProductoID,
				DestinoAlmacen: &destino,
				Cantidad:       item.Cantidad,
				CantidadGramos: item.CantidadGramos,
				Tipo:           entity.MovimientoEntrada,
				Fecha:          orden.Fecha,
				UsuarioID:      usuarioID,
				Motivo:         "Ingreso por orden de compra",
				ProveedorID:    &in.ProveedorID,
				PrecioUnitario: &unitario,
				PrecioTotal:    &item.Subtotal,
				LoteID:         &lote,
			}
			if err := stock.RegistrarMovimientoEnTx(ctx, r, mov); err != nil {
				return err
			}
		}
		orden.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	orden.ProveedorNombre = proveedor.Nombre
	orden.AlmacenNombre = almacen.Nombre
	u.log.Info().Int64("orden_id", orden.ID).Int64("proveedor_id", in.ProveedorID).
		Str("total", orden.Total.String()).Msg("orden de compra registrada")
	return orden, nil
}

// ObtenerDetalle devuelve la orden con ítems y nombres poblados.
func (u *UseCase) ObtenerDetalle(ctx context.Context, id int64) (*entity.OrdenCompra, error) {
	o, err := u.ordenes.GetDetalle(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	return o, nil
}

// ListarConFiltros devuelve órdenes paginadas.
func (u *UseCase) ListarConFiltros(ctx context.Context, f repository.FiltroOrdenes) ([]*entity.OrdenCompra, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 50
	}
	return u.ordenes.ListConFiltros(ctx, f)
}

// GenerarPDF arma el comprobante de la orden.
func (u *UseCase) GenerarPDF(ctx context.Context, id int64) ([]byte, error) {
	o, err := u.ObtenerDetalle(ctx, id)
	if err != nil {
		return nil, err
	}
	proveedor, err := u.proveedores.GetByID(ctx, o.ProveedorID)
	if err != nil {
		return nil, err
	}
	almacen, err := u.almacenes.GetByID(ctx, o.AlmacenID)
	if err != nil {
		return nil, err
	}
	return u.pdf.OrdenCompra(o, proveedor, almacen)
}
