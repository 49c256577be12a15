package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
	"github.com/acuellar-dev/inventario-pos/pkg/logger"
)

// BarcodeConflictError señala que el código de barras ya pertenece a otro
// producto. Si ese producto está inactivo, el cliente puede ofrecer
// reactivarlo en lugar de crear uno nuevo.
type BarcodeConflictError struct {
	ProductoID int64
	Inactivo   bool
}

func (e *BarcodeConflictError) Error() string {
	if e.Inactivo {
		return fmt.Sprintf("el código de barras pertenece al producto inactivo %d", e.ProductoID)
	}
	return fmt.Sprintf("el código de barras ya está en uso por el producto %d", e.ProductoID)
}

func (e *BarcodeConflictError) Unwrap() error { return domain.ErrConflict }

// UseCase gestiona el catálogo de productos, unidades y precios por almacén.
type UseCase struct {
	productos repository.ProductoRepository
	unidades  repository.UnidadRepository
	precios   repository.PrecioAlmacenRepository
	log       *logger.Logger
}

func NewUseCase(productos repository.ProductoRepository, unidades repository.UnidadRepository, precios repository.PrecioAlmacenRepository, log *logger.Logger) *UseCase {
	return &UseCase{productos: productos, unidades: unidades, precios: precios, log: log}
}

var quitarAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// generarSKU deriva un SKU a partir del nombre: prefijo de hasta cinco
// caracteres alfanuméricos (sin acentos) más un sufijo aleatorio de seis.
func generarSKU(nombre string) string {
	folded, _, err := transform.String(quitarAcentos, nombre)
	if err != nil {
		folded = nombre
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(folded) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() >= 5 {
				break
			}
		}
	}
	prefix := b.String()
	if prefix == "" {
		prefix = "PROD"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return prefix + "-" + suffix
}

// Crear da de alta un producto. Genera SKU si no viene y detecta colisiones de
// barcode contra productos activos e inactivos.
func (u *UseCase) Crear(ctx context.Context, in dto.CrearProductoRequest) (*entity.Producto, error) {
	unidad, err := u.unidades.GetByID(ctx, in.UnidadID)
	if err != nil {
		return nil, err
	}
	if unidad == nil {
		return nil, fmt.Errorf("unidad %d: %w", in.UnidadID, domain.ErrNotFound)
	}
	if in.PrecioBase.IsNegative() {
		return nil, fmt.Errorf("precio_base no puede ser negativo: %w", domain.ErrInvalidInput)
	}

	if in.Barcode != nil && *in.Barcode != "" {
		existente, err := u.productos.GetByBarcode(ctx, *in.Barcode)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, &BarcodeConflictError{ProductoID: existente.ID, Inactivo: !existente.Activo}
		}
	}

	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		sku = generarSKU(in.Nombre)
	}
	p := &entity.Producto{
		SKU:         sku,
		Nombre:      strings.TrimSpace(in.Nombre),
		Descripcion: in.Descripcion,
		Categoria:   in.Categoria,
		Barcode:     in.Barcode,
		UnidadID:    in.UnidadID,
		PrecioBase:  in.PrecioBase,
		Activo:      true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		Unidad:      unidad,
	}
	if err := u.productos.Create(ctx, p); err != nil {
		return nil, err
	}
	u.log.Info().Int64("producto_id", p.ID).Str("sku", p.SKU).Msg("producto creado")
	return p, nil
}

// Reactivar vuelve a activar un producto inactivo sobreescribiendo el nombre y
// solo los demás campos que vengan en el request. Pensado para el flujo de
// colisión de barcode con un producto dado de baja.
func (u *UseCase) Reactivar(ctx context.Context, id int64, in dto.ReactivarProductoRequest) (*entity.Producto, error) {
	p, err := u.productos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	if p.Activo {
		return nil, fmt.Errorf("el producto %d ya está activo: %w", id, domain.ErrConflict)
	}

	p.Nombre = strings.TrimSpace(in.Nombre)
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Categoria != nil {
		p.Categoria = *in.Categoria
	}
	if in.UnidadID != nil {
		unidad, err := u.unidades.GetByID(ctx, *in.UnidadID)
		if err != nil {
			return nil, err
		}
		if unidad == nil {
			return nil, fmt.Errorf("unidad %d: %w", *in.UnidadID, domain.ErrNotFound)
		}
		p.UnidadID = *in.UnidadID
		p.Unidad = unidad
	}
	if in.PrecioBase != nil {
		if in.PrecioBase.IsNegative() {
			return nil, fmt.Errorf("precio_base no puede ser negativo: %w", domain.ErrInvalidInput)
		}
		p.PrecioBase = *in.PrecioBase
	}
	p.Activo = true
	p.UpdatedAt = time.Now()

	if err := u.productos.Update(ctx, p); err != nil {
		return nil, err
	}
	u.log.Info().Int64("producto_id", p.ID).Msg("producto reactivado")
	return p, nil
}

// Obtener devuelve un producto por id, con su unidad poblada.
func (u *UseCase) Obtener(ctx context.Context, id int64) (*entity.Producto, error) {
	p, err := u.productos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// ObtenerPorBarcode busca por código de barras, incluyendo inactivos.
func (u *UseCase) ObtenerPorBarcode(ctx context.Context, barcode string) (*entity.Producto, error) {
	p, err := u.productos.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Actualizar aplica una edición parcial.
func (u *UseCase) Actualizar(ctx context.Context, id int64, in dto.ActualizarProductoRequest) (*entity.Producto, error) {
	p, err := u.productos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}

	if in.Barcode != nil && *in.Barcode != "" && (p.Barcode == nil || *p.Barcode != *in.Barcode) {
		existente, err := u.productos.GetByBarcode(ctx, *in.Barcode)
		if err != nil {
			return nil, err
		}
		if existente != nil && existente.ID != id {
			return nil, &BarcodeConflictError{ProductoID: existente.ID, Inactivo: !existente.Activo}
		}
	}

	if in.Nombre != nil {
		p.Nombre = strings.TrimSpace(*in.Nombre)
	}
	if in.Descripcion != nil {
		p.Descripcion = *in.Descripcion
	}
	if in.Categoria != nil {
		p.Categoria = *in.Categoria
	}
	if in.Barcode != nil {
		p.Barcode = in.Barcode
	}
	if in.UnidadID != nil {
		unidad, err := u.unidades.GetByID(ctx, *in.UnidadID)
		if err != nil {
			return nil, err
		}
		if unidad == nil {
			return nil, fmt.Errorf("unidad %d: %w", *in.UnidadID, domain.ErrNotFound)
		}
		p.UnidadID = *in.UnidadID
		p.Unidad = unidad
	}
	if in.PrecioBase != nil {
		if in.PrecioBase.IsNegative() {
			return nil, fmt.Errorf("precio_base no puede ser negativo: %w", domain.ErrInvalidInput)
		}
		p.PrecioBase = *in.PrecioBase
	}
	p.UpdatedAt = time.Now()

	if err := u.productos.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Desactivar hace el borrado lógico del producto. El historial de movimientos
// y los saldos existentes se conservan.
func (u *UseCase) Desactivar(ctx context.Context, id int64) error {
	p, err := u.productos.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	if !p.Activo {
		return fmt.Errorf("el producto %d ya está inactivo: %w", id, domain.ErrConflict)
	}
	p.Activo = false
	p.UpdatedAt = time.Now()
	return u.productos.Update(ctx, p)
}

// Buscar consulta el catálogo con filtros y paginación. Si viene almacén, el
// repositorio resuelve el precio final con el override de ese almacén.
func (u *UseCase) Buscar(ctx context.Context, f repository.FiltroProductos) ([]*entity.Producto, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 50
	}
	if f.Limit > 200 {
		f.Limit = 200
	}
	return u.productos.Search(ctx, f)
}

// PrecioFinal resuelve el precio de venta de un producto en un almacén:
// override si existe, precio base si no.
func (u *UseCase) PrecioFinal(ctx context.Context, productoID, almacenID int64) (decimal.Decimal, error) {
	override, err := u.precios.Get(ctx, productoID, almacenID)
	if err != nil {
		return decimal.Zero, err
	}
	if override != nil {
		return override.Precio, nil
	}
	p, err := u.productos.GetByID(ctx, productoID)
	if err != nil {
		return decimal.Zero, err
	}
	if p == nil {
		return decimal.Zero, fmt.Errorf("producto %d: %w", productoID, domain.ErrNotFound)
	}
	return p.PrecioBase, nil
}

// UpsertPrecio fija o actualiza el override de precio por almacén.
func (u *UseCase) UpsertPrecio(ctx context.Context, productoID int64, in dto.PrecioAlmacenRequest) (*entity.PrecioAlmacen, error) {
	if in.Precio.IsNegative() {
		return nil, fmt.Errorf("el precio no puede ser negativo: %w", domain.ErrInvalidInput)
	}
	p, err := u.productos.GetByID(ctx, productoID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("producto %d: %w", productoID, domain.ErrNotFound)
	}
	precio := &entity.PrecioAlmacen{ProductoID: productoID, AlmacenID: in.AlmacenID, Precio: in.Precio}
	if err := u.precios.Upsert(ctx, precio); err != nil {
		return nil, err
	}
	return precio, nil
}

// EliminarPrecio borra el override; el producto vuelve al precio base.
func (u *UseCase) EliminarPrecio(ctx context.Context, productoID, almacenID int64) error {
	existente, err := u.precios.Get(ctx, productoID, almacenID)
	if err != nil {
		return err
	}
	if existente == nil {
		return domain.ErrNotFound
	}
	return u.precios.Delete(ctx, productoID, almacenID)
}

// ListarPrecios devuelve los overrides de un producto.
func (u *UseCase) ListarPrecios(ctx context.Context, productoID int64) ([]*entity.PrecioAlmacen, error) {
	return u.precios.ListByProducto(ctx, productoID)
}

// ListarUnidades devuelve el catálogo de unidades de medida.
func (u *UseCase) ListarUnidades(ctx context.Context) ([]*entity.Unidad, error) {
	return u.unidades.List(ctx)
}
