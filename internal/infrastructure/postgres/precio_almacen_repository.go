package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// PrecioAlmacenRepository overrides de precio por almacén.
type PrecioAlmacenRepository struct {
	db Querier
}

func NewPrecioAlmacenRepository(db Querier) *PrecioAlmacenRepository {
	return &PrecioAlmacenRepository{db: db}
}

func (r *PrecioAlmacenRepository) Upsert(ctx context.Context, p *entity.PrecioAlmacen) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO producto_precio_almacen (producto_id, almacen_id, precio)
		VALUES ($1, $2, $3)
		ON CONFLICT (producto_id, almacen_id) DO UPDATE SET precio = EXCLUDED.precio`,
		p.ProductoID, p.AlmacenID, p.Precio)
	return err
}

func (r *PrecioAlmacenRepository) Get(ctx context.Context, productoID, almacenID int64) (*entity.PrecioAlmacen, error) {
	var p entity.PrecioAlmacen
	err := r.db.QueryRow(ctx, `
		SELECT producto_id, almacen_id, precio
		FROM producto_precio_almacen
		WHERE producto_id = $1 AND almacen_id = $2`,
		productoID, almacenID,
	).Scan(&p.ProductoID, &p.AlmacenID, &p.Precio)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PrecioAlmacenRepository) Delete(ctx context.Context, productoID, almacenID int64) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM producto_precio_almacen WHERE producto_id = $1 AND almacen_id = $2`,
		productoID, almacenID)
	return err
}

func (r *PrecioAlmacenRepository) ListByProducto(ctx context.Context, productoID int64) ([]*entity.PrecioAlmacen, error) {
	rows, err := r.db.Query(ctx, `
		SELECT producto_id, almacen_id, precio
		FROM producto_precio_almacen
		WHERE producto_id = $1
		ORDER BY almacen_id`, productoID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.PrecioAlmacen
	for rows.Next() {
		var p entity.PrecioAlmacen
		if err := rows.Scan(&p.ProductoID, &p.AlmacenID, &p.Precio); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}
