package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

// VentaRepository acceso a ventas y sus ítems.
type VentaRepository struct {
	db Querier
}

func NewVentaRepository(db Querier) *VentaRepository {
	return &VentaRepository{db: db}
}

func (r *VentaRepository) CreateVenta(ctx context.Context, v *entity.Venta) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO ventas (almacen_id, usuario_id, fecha, total, estado)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		v.AlmacenID, v.UsuarioID, v.Fecha, v.Total, v.Estado,
	).Scan(&v.ID)
}

func (r *VentaRepository) CreateItem(ctx context.Context, it *entity.VentaItem) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO venta_items (venta_id, producto_id, cantidad, cantidad_gramos, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		it.VentaID, it.ProductoID, it.Cantidad, it.CantidadGramos, it.PrecioUnitario, it.Subtotal,
	).Scan(&it.ID)
}

func (r *VentaRepository) GetDetalle(ctx context.Context, id int64) (*entity.Venta, error) {
	var v entity.Venta
	err := r.db.QueryRow(ctx, `
		SELECT v.id, v.almacen_id, v.usuario_id, v.fecha, v.total, v.estado, a.nombre
		FROM ventas v
		JOIN almacenes a ON a.id = v.almacen_id
		WHERE v.id = $1`, id,
	).Scan(&v.ID, &v.AlmacenID, &v.UsuarioID, &v.Fecha, &v.Total, &v.Estado, &v.AlmacenNombre)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.venta_id, i.producto_id, i.cantidad, i.cantidad_gramos,
		       i.precio_unitario, i.subtotal, p.nombre
		FROM venta_items i
		JOIN productos p ON p.id = i.producto_id
		WHERE i.venta_id = $1
		ORDER BY i.id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var it entity.VentaItem
		if err := rows.Scan(&it.ID, &it.VentaID, &it.ProductoID, &it.Cantidad, &it.CantidadGramos,
			&it.PrecioUnitario, &it.Subtotal, &it.ProductoNombre); err != nil {
			return nil, err
		}
		v.Items = append(v.Items, &it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VentaRepository) ListConFiltros(ctx context.Context, f repository.FiltroVentas) ([]*entity.Venta, int64, error) {
	where := []string{"1=1"}
	args := []any{}

	if f.AlmacenID != nil {
		args = append(args, *f.AlmacenID)
		where = append(where, fmt.Sprintf("v.almacen_id = $%d", len(args)))
	}
	if f.UsuarioID != nil {
		args = append(args, *f.UsuarioID)
		where = append(where, fmt.Sprintf("v.usuario_id = $%d", len(args)))
	}
	if f.Estado != "" {
		args = append(args, f.Estado)
		where = append(where, fmt.Sprintf("v.estado = $%d", len(args)))
	}
	if f.FechaDesde != nil {
		args = append(args, *f.FechaDesde)
		where = append(where, fmt.Sprintf("v.fecha >= $%d", len(args)))
	}
	if f.FechaHasta != nil {
		args = append(args, *f.FechaHasta)
		where = append(where, fmt.Sprintf("v.fecha <= $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM ventas v WHERE `+cond, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	query := fmt.Sprintf(`
		SELECT v.id, v.almacen_id, v.usuario_id, v.fecha, v.total, v.estado, a.nombre
		FROM ventas v
		JOIN almacenes a ON a.id = v.almacen_id
		WHERE %s
		ORDER BY v.fecha DESC, v.id DESC
		LIMIT $%d OFFSET $%d`,
		cond, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*entity.Venta
	for rows.Next() {
		var v entity.Venta
		if err := rows.Scan(&v.ID, &v.AlmacenID, &v.UsuarioID, &v.Fecha, &v.Total, &v.Estado, &v.AlmacenNombre); err != nil {
			return nil, 0, err
		}
		out = append(out, &v)
	}
	return out, total, rows.Err()
}

func (r *VentaRepository) UpdateEstado(ctx context.Context, id int64, estado string) error {
	tag, err := r.db.Exec(ctx, `UPDATE ventas SET estado = $1 WHERE id = $2`, estado, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
