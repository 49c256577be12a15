package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

// ParametroReordenRepository niveles de reposición por producto.
type ParametroReordenRepository struct {
	db Querier
}

func NewParametroReordenRepository(db Querier) *ParametroReordenRepository {
	return &ParametroReordenRepository{db: db}
}

func (r *ParametroReordenRepository) Upsert(ctx context.Context, p *entity.ParametroReorden) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO parametros_reorden (producto_id, nivel_minimo, nivel_optimo)
		VALUES ($1, $2, $3)
		ON CONFLICT (producto_id) DO UPDATE
		SET nivel_minimo = EXCLUDED.nivel_minimo, nivel_optimo = EXCLUDED.nivel_optimo
		RETURNING id`,
		p.ProductoID, p.NivelMinimo, p.NivelOptimo,
	).Scan(&p.ID)
}

func (r *ParametroReordenRepository) GetByProducto(ctx context.Context, productoID int64) (*entity.ParametroReorden, error) {
	var p entity.ParametroReorden
	err := r.db.QueryRow(ctx, `
		SELECT pr.id, pr.producto_id, pr.nivel_minimo, pr.nivel_optimo, p.nombre, p.sku
		FROM parametros_reorden pr
		JOIN productos p ON p.id = pr.producto_id
		WHERE pr.producto_id = $1`, productoID,
	).Scan(&p.ID, &p.ProductoID, &p.NivelMinimo, &p.NivelOptimo, &p.ProductoNombre, &p.ProductoSKU)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ParametroReordenRepository) List(ctx context.Context) ([]*entity.ParametroReorden, error) {
	rows, err := r.db.Query(ctx, `
		SELECT pr.id, pr.producto_id, pr.nivel_minimo, pr.nivel_optimo, p.nombre, p.sku
		FROM parametros_reorden pr
		JOIN productos p ON p.id = pr.producto_id
		ORDER BY p.nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.ParametroReorden
	for rows.Next() {
		var p entity.ParametroReorden
		if err := rows.Scan(&p.ID, &p.ProductoID, &p.NivelMinimo, &p.NivelOptimo, &p.ProductoNombre, &p.ProductoSKU); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *ParametroReordenRepository) Delete(ctx context.Context, productoID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM parametros_reorden WHERE producto_id = $1`, productoID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ParametroReordenRepository) ListConStock(ctx context.Context) ([]*repository.ReordenConStock, error) {
	rows, err := r.db.Query(ctx, `
		SELECT pr.id, pr.producto_id, pr.nivel_minimo, pr.nivel_optimo,
		       p.nombre, p.sku, u.nombre, u.abreviatura,
		       COALESCE(SUM(s.cantidad), 0),
		       COALESCE(SUM(s.cantidad_gramos), 0)
		FROM parametros_reorden pr
		JOIN productos p ON p.id = pr.producto_id
		JOIN unidades u ON u.id = p.unidad_id
		LEFT JOIN stock_actual s ON s.producto_id = pr.producto_id
		WHERE p.activo
		GROUP BY pr.id, pr.producto_id, pr.nivel_minimo, pr.nivel_optimo,
		         p.nombre, p.sku, u.nombre, u.abreviatura
		ORDER BY p.nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*repository.ReordenConStock
	for rows.Next() {
		var rc repository.ReordenConStock
		if err := rows.Scan(
			&rc.Parametro.ID, &rc.Parametro.ProductoID,
			&rc.Parametro.NivelMinimo, &rc.Parametro.NivelOptimo,
			&rc.Parametro.ProductoNombre, &rc.Parametro.ProductoSKU,
			&rc.UnidadNombre, &rc.UnidadAbreviatura,
			&rc.TotalPiezas, &rc.TotalGramos,
		); err != nil {
			return nil, err
		}
		out = append(out, &rc)
	}
	return out, rows.Err()
}
