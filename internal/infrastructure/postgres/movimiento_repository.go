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

// MovimientoRepository acceso a la bitácora movimientos_stock.
type MovimientoRepository struct {
	db Querier
}

func NewMovimientoRepository(db Querier) *MovimientoRepository {
	return &MovimientoRepository{db: db}
}

const movimientoCols = `m.id, m.producto_id, m.origen_almacen, m.destino_almacen,
	m.cantidad, m.cantidad_gramos, m.tipo, m.fecha, m.usuario_id, m.motivo,
	m.proveedor_id, m.precio_unitario, m.precio_total, m.lote_id, p.nombre, p.sku`

func (r *MovimientoRepository) Create(ctx context.Context, m *entity.MovimientoStock) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO movimientos_stock
			(producto_id, origen_almacen, destino_almacen, cantidad, cantidad_gramos,
			 tipo, fecha, usuario_id, motivo, proveedor_id, precio_unitario, precio_total, lote_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`,
		m.ProductoID, m.OrigenAlmacen, m.DestinoAlmacen, m.Cantidad, m.CantidadGramos,
		m.Tipo, m.Fecha, m.UsuarioID, m.Motivo, m.ProveedorID, m.PrecioUnitario, m.PrecioTotal, m.LoteID,
	).Scan(&m.ID)
}

func scanMovimiento(row pgx.Row) (*entity.MovimientoStock, error) {
	var m entity.MovimientoStock
	err := row.Scan(&m.ID, &m.ProductoID, &m.OrigenAlmacen, &m.DestinoAlmacen,
		&m.Cantidad, &m.CantidadGramos, &m.Tipo, &m.Fecha, &m.UsuarioID, &m.Motivo,
		&m.ProveedorID, &m.PrecioUnitario, &m.PrecioTotal, &m.LoteID,
		&m.ProductoNombre, &m.ProductoSKU)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovimientoRepository) GetByID(ctx context.Context, id int64) (*entity.MovimientoStock, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+movimientoCols+`
		FROM movimientos_stock m
		JOIN productos p ON p.id = m.producto_id
		WHERE m.id = $1`, id)

	m, err := scanMovimiento(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return m, err
}

func (r *MovimientoRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM movimientos_stock WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// sortWhitelist campos admitidos para ordenar listados.
var sortWhitelist = map[string]string{
	"fecha": "m.fecha",
	"id":    "m.id",
	"tipo":  "m.tipo",
}

func (r *MovimientoRepository) ListConFiltros(ctx context.Context, f repository.FiltroMovimientos) ([]*entity.MovimientoStock, int64, error) {
	where := []string{"1=1"}
	args := []any{}

	if f.ProductoID != nil {
		args = append(args, *f.ProductoID)
		where = append(where, fmt.Sprintf("m.producto_id = $%d", len(args)))
	}
	if f.AlmacenID != nil {
		args = append(args, *f.AlmacenID)
		where = append(where, fmt.Sprintf("(m.origen_almacen = $%d OR m.destino_almacen = $%d)", len(args), len(args)))
	}
	if f.UsuarioID != nil {
		args = append(args, *f.UsuarioID)
		where = append(where, fmt.Sprintf("m.usuario_id = $%d", len(args)))
	}
	if f.ProveedorID != nil {
		args = append(args, *f.ProveedorID)
		where = append(where, fmt.Sprintf("m.proveedor_id = $%d", len(args)))
	}
	if f.Tipo != "" {
		args = append(args, f.Tipo)
		where = append(where, fmt.Sprintf("m.tipo = $%d", len(args)))
	}
	if f.FechaDesde != nil {
		args = append(args, *f.FechaDesde)
		where = append(where, fmt.Sprintf("m.fecha >= $%d", len(args)))
	}
	if f.FechaHasta != nil {
		args = append(args, *f.FechaHasta)
		where = append(where, fmt.Sprintf("m.fecha <= $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM movimientos_stock m WHERE `+cond, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	sortCol, ok := sortWhitelist[f.Sort]
	if !ok {
		return nil, 0, fmt.Errorf("campo de orden %q no admitido: %w", f.Sort, domain.ErrInvalidInput)
	}
	dir := "ASC"
	if f.Desc {
		dir = "DESC"
	}

	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	query := fmt.Sprintf(`
		SELECT `+movimientoCols+`
		FROM movimientos_stock m
		JOIN productos p ON p.id = m.producto_id
		WHERE %s
		ORDER BY %s %s, m.id %s
		LIMIT $%d OFFSET $%d`,
		cond, sortCol, dir, dir, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*entity.MovimientoStock
	for rows.Next() {
		m, err := scanMovimiento(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, m)
	}
	return out, total, rows.Err()
}

func (r *MovimientoRepository) ListInsumos(ctx context.Context, page, limit int) ([]*entity.MovimientoStock, int64, error) {
	return r.ListConFiltros(ctx, repository.FiltroMovimientos{
		Tipo:  entity.MovimientoInsumo,
		Page:  page,
		Limit: limit,
		Sort:  "fecha",
		Desc:  true,
	})
}
