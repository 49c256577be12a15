package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/inventory"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
	"github.com/acuellar-dev/inventario-pos/pkg/logger"
)

// UseCase orquesta las operaciones de stock: entradas, insumos, traspasos,
// ajustes manuales y las consultas de saldo. Toda operación que escribe saldo
// corre dentro de una transacción vía TxRunner; las lecturas usan los
// repositorios ligados al pool.
type UseCase struct {
	tx        TxRunner
	stock     repository.StockRepository
	productos repository.ProductoRepository
	almacenes repository.AlmacenRepository
	log       *logger.Logger
}

func NewUseCase(tx TxRunner, stockRepo repository.StockRepository, productos repository.ProductoRepository, almacenes repository.AlmacenRepository, log *logger.Logger) *UseCase {
	return &UseCase{tx: tx, stock: stockRepo, productos: productos, almacenes: almacenes, log: log}
}

// CantidadValidada arma la cantidad a partir del par opcional del request y
// verifica que coincida con la unidad del producto.
func CantidadValidada(p *entity.Producto, piezas *int64, gramos *decimal.Decimal) (inventory.Cantidad, error) {
	cant, ok := inventory.CantidadDesdeCampos(piezas, gramos)
	if !ok {
		return inventory.Cantidad{}, fmt.Errorf("enviar exactamente uno de cantidad o cantidad_gramos: %w", domain.ErrInvalidInput)
	}
	if !cant.EsPositiva() {
		return inventory.Cantidad{}, fmt.Errorf("la cantidad debe ser positiva: %w", domain.ErrInvalidInput)
	}
	if p.PorGramos() && !cant.EsGramos() {
		return inventory.Cantidad{}, fmt.Errorf("el producto %q se maneja por gramos: enviar cantidad_gramos: %w", p.Nombre, domain.ErrInvalidInput)
	}
	if !p.PorGramos() && cant.EsGramos() {
		return inventory.Cantidad{}, fmt.Errorf("el producto %q se maneja por piezas: enviar cantidad: %w", p.Nombre, domain.ErrInvalidInput)
	}
	return cant, nil
}

// RegistrarEntrada suma stock al almacén destino y deja un movimiento de
// entrada. El motivo por defecto es "Reposición de stock".
func (u *UseCase) RegistrarEntrada(ctx context.Context, in dto.EntradaRequest, usuarioID *int64) (*entity.StockActual, *entity.MovimientoStock, error) {
	var (
		fila *entity.StockActual
		mov  *entity.MovimientoStock
	)
	err := u.tx.Run(ctx, func(r Repos) error {
		p, err := r.Productos.GetByID(ctx, in.ProductoID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("producto %d: %w", in.ProductoID, domain.ErrNotFound)
		}
		cant, err := CantidadValidada(p, in.Cantidad, in.CantidadGramos)
		if err != nil {
			return err
		}

		fila, err = AjustarEnTx(ctx, r, in.ProductoID, in.DestinoAlmacen, cant)
		if err != nil {
			return err
		}

		motivo := in.Motivo
		if motivo == "" {
			motivo = "Reposición de stock"
		}
		destino := in.DestinoAlmacen
		mov = &entity.MovimientoStock{
			ProductoID:     in.ProductoID,
			DestinoAlmacen: &destino,
			Cantidad:       in.Cantidad,
			CantidadGramos: in.CantidadGramos,
			Tipo:           entity.MovimientoEntrada,
			Fecha:          time.Now(),
			UsuarioID:      usuarioID,
			Motivo:         motivo,
			ProveedorID:    in.ProveedorID,
			PrecioUnitario: in.PrecioUnitario,
			PrecioTotal:    calcularPrecioTotal(cant, in.PrecioUnitario),
		}
		return RegistrarMovimientoEnTx(ctx, r, mov)
	})
	if err != nil {
		return nil, nil, err
	}
	u.log.Info().Int64("producto_id", in.ProductoID).Int64("almacen_id", in.DestinoAlmacen).Msg("entrada registrada")
	return fila, mov, nil
}

// RegistrarInsumo descuenta stock del almacén origen por consumo interno. El
// movimiento resultante es el único tipo que admite cancelación posterior.
func (u *UseCase) RegistrarInsumo(ctx context.Context, in dto.InsumoRequest, usuarioID *int64) (*entity.StockActual, *entity.MovimientoStock, error) {
	var (
		fila *entity.StockActual
		mov  *entity.MovimientoStock
	)
	err := u.tx.Run(ctx, func(r Repos) error {
		p, err := r.Productos.GetByID(ctx, in.ProductoID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("producto %d: %w", in.ProductoID, domain.ErrNotFound)
		}
		cant, err := CantidadValidada(p, in.Cantidad, in.CantidadGramos)
		if err != nil {
			return err
		}

		fila, err = AjustarEnTx(ctx, r, in.ProductoID, in.OrigenAlmacen, cant.Neg())
		if err != nil {
			return err
		}

		motivo := in.Motivo
		if motivo == "" {
			motivo = fmt.Sprintf("El producto %q fue utilizado como insumo", p.Nombre)
		}
		origen := in.OrigenAlmacen
		mov = &entity.MovimientoStock{
			ProductoID:     in.ProductoID,
			OrigenAlmacen:  &origen,
			Cantidad:       in.Cantidad,
			CantidadGramos: in.CantidadGramos,
			Tipo:           entity.MovimientoInsumo,
			Fecha:          time.Now(),
			UsuarioID:      usuarioID,
			Motivo:         motivo,
		}
		return RegistrarMovimientoEnTx(ctx, r, mov)
	})
	if err != nil {
		return nil, nil, err
	}
	return fila, mov, nil
}

// CancelarInsumo revierte un movimiento de insumo: devuelve la cantidad al
// almacén de origen y borra la fila de la bitácora. Solo aplica a movimientos
// de tipo insumo.
func (u *UseCase) CancelarInsumo(ctx context.Context, movimientoID int64) (*entity.StockActual, error) {
	var fila *entity.StockActual
	err := u.tx.Run(ctx, func(r Repos) error {
		m, err := r.Movimientos.GetByID(ctx, movimientoID)
		if err != nil {
			return err
		}
		if m == nil {
			return fmt.Errorf("movimiento %d: %w", movimientoID, domain.ErrNotFound)
		}
		if m.Tipo != entity.MovimientoInsumo {
			return fmt.Errorf("solo los movimientos de insumo pueden cancelarse: %w", domain.ErrInvalidInput)
		}
		if m.OrigenAlmacen == nil {
			return fmt.Errorf("el movimiento no tiene almacén de origen: %w", domain.ErrConflict)
		}
		cant, ok := inventory.CantidadDesdeCampos(m.Cantidad, m.CantidadGramos)
		if !ok {
			return fmt.Errorf("movimiento %d con cantidades inconsistentes: %w", movimientoID, domain.ErrConflict)
		}

		fila, err = AjustarEnTx(ctx, r, m.ProductoID, *m.OrigenAlmacen, cant)
		if err != nil {
			return err
		}
		return r.Movimientos.Delete(ctx, m.ID)
	})
	if err != nil {
		return nil, err
	}
	u.log.Info().Int64("movimiento_id", movimientoID).Msg("insumo cancelado")
	return fila, nil
}

// Traspaso mueve stock entre dos almacenes distintos en una sola transacción:
// descuenta del origen, suma al destino y deja un único movimiento de tipo
// traspaso. Si el origen no alcanza, nada cambia.
func (u *UseCase) Traspaso(ctx context.Context, in dto.TraspasoRequest, usuarioID *int64) (*entity.MovimientoStock, error) {
	if in.OrigenAlmacen == in.DestinoAlmacen {
		return nil, fmt.Errorf("en un traspaso, origen_almacen y destino_almacen deben ser distintos: %w", domain.ErrInvalidInput)
	}
	var mov *entity.MovimientoStock
	err := u.tx.Run(ctx, func(r Repos) error {
		p, err := r.Productos.GetByID(ctx, in.ProductoID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("producto %d: %w", in.ProductoID, domain.ErrNotFound)
		}
		cant, err := CantidadValidada(p, in.Cantidad, in.CantidadGramos)
		if err != nil {
			return err
		}

		if _, err := AjustarEnTx(ctx, r, in.ProductoID, in.OrigenAlmacen, cant.Neg()); err != nil {
			return err
		}
		if _, err := AjustarEnTx(ctx, r, in.ProductoID, in.DestinoAlmacen, cant); err != nil {
			return err
		}

		motivo := in.Motivo
		if motivo == "" {
			motivo = "Traspaso entre almacenes"
		}
		origen, destino := in.OrigenAlmacen, in.DestinoAlmacen
		mov = &entity.MovimientoStock{
			ProductoID:     in.ProductoID,
			OrigenAlmacen:  &origen,
			DestinoAlmacen: &destino,
			Cantidad:       in.Cantidad,
			CantidadGramos: in.CantidadGramos,
			Tipo:           entity.MovimientoTraspaso,
			Fecha:          time.Now(),
			UsuarioID:      usuarioID,
			Motivo:         motivo,
		}
		return RegistrarMovimientoEnTx(ctx, r, mov)
	})
	if err != nil {
		return nil, err
	}
	u.log.Info().Int64("producto_id", in.ProductoID).
		Int64("origen", in.OrigenAlmacen).Int64("destino", in.DestinoAlmacen).
		Msg("traspaso registrado")
	return mov, nil
}

// Ajustar aplica un delta manual (positivo o negativo) y deja el movimiento
// correspondiente en la bitácora: entrada si suma, salida si resta. Igual que
// el resto de escrituras, el campo del delta debe coincidir con la unidad del
// producto.
func (u *UseCase) Ajustar(ctx context.Context, in dto.AjusteRequest, usuarioID *int64) (*entity.StockActual, error) {
	delta, ok := inventory.CantidadDesdeCampos(in.Delta, in.DeltaGramos)
	if !ok {
		return nil, fmt.Errorf("enviar exactamente uno de delta o delta_gramos: %w", domain.ErrInvalidInput)
	}
	if delta.EsGramos() {
		if delta.Gramos().IsZero() {
			return nil, fmt.Errorf("delta_gramos no puede ser cero: %w", domain.ErrInvalidInput)
		}
	} else if delta.Piezas() == 0 {
		return nil, fmt.Errorf("delta no puede ser cero: %w", domain.ErrInvalidInput)
	}
	var fila *entity.StockActual
	err := u.tx.Run(ctx, func(r Repos) error {
		p, err := r.Productos.GetByID(ctx, in.ProductoID)
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("producto %d: %w", in.ProductoID, domain.ErrNotFound)
		}
		if p.PorGramos() && !delta.EsGramos() {
			return fmt.Errorf("el producto %q se maneja por gramos: enviar delta_gramos: %w", p.Nombre, domain.ErrInvalidInput)
		}
		if !p.PorGramos() && delta.EsGramos() {
			return fmt.Errorf("el producto %q se maneja por piezas: enviar delta: %w", p.Nombre, domain.ErrInvalidInput)
		}

		fila, err = AjustarEnTx(ctx, r, in.ProductoID, in.AlmacenID, delta)
		if err != nil {
			return err
		}

		motivo := in.Motivo
		if motivo == "" {
			motivo = "Ajuste manual"
		}
		almacen := in.AlmacenID
		mov := &entity.MovimientoStock{
			ProductoID: in.ProductoID,
			Tipo:       entity.MovimientoEntrada,
			Fecha:      time.Now(),
			UsuarioID:  usuarioID,
			Motivo:     motivo,
		}
		abs := delta
		if !delta.EsPositiva() {
			mov.Tipo = entity.MovimientoSalida
			mov.OrigenAlmacen = &almacen
			abs = delta.Neg()
		} else {
			mov.DestinoAlmacen = &almacen
		}
		if abs.EsGramos() {
			g := abs.Gramos()
			mov.CantidadGramos = &g
		} else {
			n := abs.Piezas()
			mov.Cantidad = &n
		}
		return RegistrarMovimientoEnTx(ctx, r, mov)
	})
	if err != nil {
		return nil, err
	}
	return fila, nil
}

// Obtener devuelve el saldo de un producto en un almacén.
func (u *UseCase) Obtener(ctx context.Context, productoID, almacenID int64) (*entity.StockActual, error) {
	fila, err := u.stock.Get(ctx, productoID, almacenID)
	if err != nil {
		return nil, err
	}
	if fila == nil {
		return nil, domain.ErrNotFound
	}
	return fila, nil
}

// Listar devuelve los saldos, opcionalmente filtrados por almacén.
func (u *UseCase) Listar(ctx context.Context, almacenID *int64) ([]*entity.StockActual, error) {
	return u.stock.List(ctx, almacenID)
}

// TotalesPorAlmacen agrega los saldos de un almacén por producto, separando
// piezas de gramos.
func (u *UseCase) TotalesPorAlmacen(ctx context.Context, almacenID int64) ([]*repository.TotalProducto, error) {
	a, err := u.almacenes.GetByID(ctx, almacenID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("almacén %d: %w", almacenID, domain.ErrNotFound)
	}
	return u.stock.TotalesPorAlmacen(ctx, almacenID)
}

// CrearFila da de alta una fila de stock con saldo inicial explícito. El campo
// poblado debe coincidir con la unidad del producto.
func (u *UseCase) CrearFila(ctx context.Context, in dto.CrearFilaStockRequest) (*entity.StockActual, error) {
	p, err := u.productos.GetByID(ctx, in.ProductoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("producto %d: %w", in.ProductoID, domain.ErrNotFound)
	}
	fila := &entity.StockActual{
		ProductoID:  in.ProductoID,
		AlmacenID:   in.AlmacenID,
		LastUpdated: time.Now(),
	}
	if p.PorGramos() {
		if in.CantidadGramos == nil {
			return nil, fmt.Errorf("el producto %q se maneja por gramos: enviar cantidad_gramos: %w", p.Nombre, domain.ErrInvalidInput)
		}
		if in.CantidadGramos.IsNegative() {
			return nil, fmt.Errorf("el saldo inicial no puede ser negativo: %w", domain.ErrInvalidInput)
		}
		fila.CantidadGramos = in.CantidadGramos
	} else {
		if in.Cantidad == nil {
			return nil, fmt.Errorf("el producto %q se maneja por piezas: enviar cantidad: %w", p.Nombre, domain.ErrInvalidInput)
		}
		if *in.Cantidad < 0 {
			return nil, fmt.Errorf("el saldo inicial no puede ser negativo: %w", domain.ErrInvalidInput)
		}
		fila.Cantidad = *in.Cantidad
	}
	if err := u.stock.CrearFila(ctx, fila); err != nil {
		return nil, err
	}
	return fila, nil
}

// EliminarFila borra la fila de saldo de un producto en un almacén. El
// historial de movimientos se conserva.
func (u *UseCase) EliminarFila(ctx context.Context, productoID, almacenID int64) error {
	fila, err := u.stock.Get(ctx, productoID, almacenID)
	if err != nil {
		return err
	}
	if fila == nil {
		return domain.ErrNotFound
	}
	return u.stock.EliminarFila(ctx, productoID, almacenID)
}
