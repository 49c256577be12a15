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

// ProductoRepository acceso al catálogo de productos. Todas las consultas
// traen la unidad con JOIN porque la clasificación piezas/gramos depende de
// ella.
type ProductoRepository struct {
	db Querier
}

func NewProductoRepository(db Querier) *ProductoRepository {
	return &ProductoRepository{db: db}
}

func (r *ProductoRepository) Create(ctx context.Context, p *entity.Producto) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO productos
			(sku, nombre, descripcion, categoria, barcode, unidad_id, precio_base, activo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		p.SKU, p.Nombre, p.Descripcion, p.Categoria, p.Barcode, p.UnidadID,
		p.PrecioBase, p.Activo, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("sku o barcode ya registrado: %w", domain.ErrDuplicate)
	}
	return err
}

func (r *ProductoRepository) scanOne(row pgx.Row) (*entity.Producto, error) {
	var (
		p entity.Producto
		u entity.Unidad
	)
	err := row.Scan(&p.ID, &p.SKU, &p.Nombre, &p.Descripcion, &p.Categoria, &p.Barcode,
		&p.UnidadID, &p.PrecioBase, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
		&u.ID, &u.Nombre, &u.Abreviatura)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Unidad = &u
	return &p, nil
}

const productoCols = `p.id, p.sku, p.nombre, p.descripcion, p.categoria, p.barcode,
	p.unidad_id, p.precio_base, p.activo, p.created_at, p.updated_at,
	u.id, u.nombre, u.abreviatura`

func (r *ProductoRepository) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT `+productoCols+`
		FROM productos p
		JOIN unidades u ON u.id = p.unidad_id
		WHERE p.id = $1`, id))
}

func (r *ProductoRepository) GetBySKU(ctx context.Context, sku string) (*entity.Producto, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT `+productoCols+`
		FROM productos p
		JOIN unidades u ON u.id = p.unidad_id
		WHERE p.sku = $1`, sku))
}

func (r *ProductoRepository) GetByBarcode(ctx context.Context, barcode string) (*entity.Producto, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT `+productoCols+`
		FROM productos p
		JOIN unidades u ON u.id = p.unidad_id
		WHERE p.barcode = $1`, barcode))
}

func (r *ProductoRepository) Update(ctx context.Context, p *entity.Producto) error {
	_, err := r.db.Exec(ctx, `
		UPDATE productos
		SET sku = $2, nombre = $3, descripcion = $4, categoria = $5, barcode = $6,
		    unidad_id = $7, precio_base = $8, activo = $9, updated_at = $10
		WHERE id = $1`,
		p.ID, p.SKU, p.Nombre, p.Descripcion, p.Categoria, p.Barcode,
		p.UnidadID, p.PrecioBase, p.Activo, p.UpdatedAt)
	if isUniqueViolation(err) {
		return fmt.Errorf("sku o barcode ya registrado: %w", domain.ErrDuplicate)
	}
	return err
}

func (r *ProductoRepository) Search(ctx context.Context, f repository.FiltroProductos) ([]*entity.Producto, int64, error) {
	where := []string{"1=1"}
	args := []any{}

	if f.Activo != nil {
		args = append(args, *f.Activo)
		where = append(where, fmt.Sprintf("p.activo = $%d", len(args)))
	}
	if f.Texto != "" {
		args = append(args, "%"+f.Texto+"%")
		where = append(where, fmt.Sprintf("(p.nombre ILIKE $%d OR p.sku ILIKE $%d)", len(args), len(args)))
	}
	if f.Categoria != "" {
		args = append(args, f.Categoria)
		where = append(where, fmt.Sprintf("p.categoria = $%d", len(args)))
	}
	if f.ConStock {
		sub := `SELECT 1 FROM stock_actual s
			WHERE s.producto_id = p.id
			AND (s.cantidad > 0 OR s.cantidad_gramos > 0)`
		if f.AlmacenID != nil {
			args = append(args, *f.AlmacenID)
			sub += fmt.Sprintf(" AND s.almacen_id = $%d", len(args))
		}
		where = append(where, "EXISTS ("+sub+")")
	}
	cond := strings.Join(where, " AND ")

	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM productos p WHERE `+cond, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	// Con almacén, el precio final resuelve el override sobre el base.
	precioExpr := "NULL::numeric"
	join := ""
	if f.AlmacenID != nil {
		args = append(args, *f.AlmacenID)
		join = fmt.Sprintf(`
		LEFT JOIN producto_precio_almacen pa
			ON pa.producto_id = p.id AND pa.almacen_id = $%d`, len(args))
		precioExpr = "COALESCE(pa.precio, p.precio_base)"
	}

	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	query := fmt.Sprintf(`
		SELECT `+productoCols+`, %s
		FROM productos p
		JOIN unidades u ON u.id = p.unidad_id%s
		WHERE %s
		ORDER BY p.nombre
		LIMIT $%d OFFSET $%d`,
		precioExpr, join, cond, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*entity.Producto
	for rows.Next() {
		var (
			p entity.Producto
			u entity.Unidad
		)
		if err := rows.Scan(&p.ID, &p.SKU, &p.Nombre, &p.Descripcion, &p.Categoria, &p.Barcode,
			&p.UnidadID, &p.PrecioBase, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
			&u.ID, &u.Nombre, &u.Abreviatura, &p.PrecioFinal); err != nil {
			return nil, 0, err
		}
		p.Unidad = &u
		out = append(out, &p)
	}
	return out, total, rows.Err()
}
