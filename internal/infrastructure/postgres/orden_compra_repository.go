package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

// OrdenCompraRepository acceso a órdenes de compra y sus ítems.
type OrdenCompraRepository struct {
	db Querier
}

func NewOrdenCompraRepository(db Querier) *OrdenCompraRepository {
	return &OrdenCompraRepository{db: db}
}

func (r *OrdenCompraRepository) CreateOrden(ctx context.Context, o *entity.OrdenCompra) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO ordenes_compra (proveedor_id, almacen_id, usuario_id, fecha, total, observacion)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		o.ProveedorID, o.AlmacenID, o.UsuarioID, o.Fecha, o.Total, o.Observacion,
	).Scan(&o.ID)
}

func (r *OrdenCompraRepository) CreateItem(ctx context.Context, it *entity.OrdenCompraItem) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO orden_compra_items (orden_id, producto_id, cantidad, cantidad_gramos, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		it.OrdenID, it.ProductoID, it.Cantidad, it.CantidadGramos, it.PrecioUnitario, it.Subtotal,
	).Scan(&it.ID)
}

func (r *OrdenCompraRepository) GetDetalle(ctx context.Context, id int64) (*entity.OrdenCompra, error) {
	var o entity.OrdenCompra
	err := r.db.QueryRow(ctx, `
		SELECT o.id, o.proveedor_id, o.almacen_id, o.usuario_id, o.fecha, o.total, o.observacion,
		       pr.nombre, a.nombre
		FROM ordenes_compra o
		JOIN proveedores pr ON pr.id = o.proveedor_id
		JOIN almacenes a ON a.id = o.almacen_id
		WHERE o.id = $1`, id,
	).Scan(&o.ID, &o.ProveedorID, &o.AlmacenID, &o.UsuarioID, &o.Fecha, &o.Total, &o.Observacion,
		&o.ProveedorNombre, &o.AlmacenNombre)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.orden_id, i.producto_id, i.cantidad, i.cantidad_gramos,
		       i.precio_unitario, i.subtotal, p.nombre, p.sku
		FROM orden_compra_items i
		JOIN productos p ON p.id = i.producto_id
		WHERE i.orden_id = $1
		ORDER BY i.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it entity.OrdenCompraItem
		if err := rows.Scan(&it.ID, &it.OrdenID, &it.ProductoID, &it.Cantidad, &it.CantidadGramos,
			&it.PrecioUnitario, &it.Subtotal, &it.ProductoNombre, &it.ProductoSKU); err != nil {
			return nil, err
		}
		o.Items = append(o.Items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrdenCompraRepository) ListConFiltros(ctx context.Context, f repository.FiltroOrdenes) ([]*entity.OrdenCompra, int64, error) {
	where := []string{"1=1"}
	args := []any{}

	if f.ProveedorID != nil {
		args = append(args, *f.ProveedorID)
		where = append(where, fmt.Sprintf("o.proveedor_id = $%d", len(args)))
	}
	if f.AlmacenID != nil {
		args = append(args, *f.AlmacenID)
		where = append(where, fmt.Sprintf("o.almacen_id = $%d", len(args)))
	}
	if f.FechaDesde != nil {
		args = append(args, *f.FechaDesde)
		where = append(where, fmt.Sprintf("o.fecha >= $%d", len(args)))
	}
	if f.FechaHasta != nil {
		args = append(args, *f.FechaHasta)
		where = append(where, fmt.Sprintf("o.fecha <= $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM ordenes_compra o WHERE `+cond, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	query := fmt.Sprintf(`
		SELECT o.id, o.proveedor_id, o.almacen_id, o.usuario_id, o.fecha, o.total, o.observacion,
		       pr.nombre, a.nombre
		FROM ordenes_compra o
		JOIN proveedores pr ON pr.id = o.proveedor_id
		JOIN almacenes a ON a.id = o.almacen_id
		WHERE %s
		ORDER BY o.fecha DESC, o.id DESC
		LIMIT $%d OFFSET $%d`,
		cond, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*entity.OrdenCompra
	for rows.Next() {
		var o entity.OrdenCompra
		if err := rows.Scan(&o.ID, &o.ProveedorID, &o.AlmacenID, &o.UsuarioID, &o.Fecha, &o.Total,
			&o.Observacion, &o.ProveedorNombre, &o.AlmacenNombre); err != nil {
			return nil, 0, err
		}
		out = append(out, &o)
	}
	return out, total, rows.Err()
}
