package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// UnidadRepository acceso a unidades de medida.
type UnidadRepository struct {
	db Querier
}

func NewUnidadRepository(db Querier) *UnidadRepository {
	return &UnidadRepository{db: db}
}

func (r *UnidadRepository) GetByID(ctx context.Context, id int64) (*entity.Unidad, error) {
	var u entity.Unidad
	err := r.db.QueryRow(ctx,
		`SELECT id, nombre, abreviatura FROM unidades WHERE id = $1`, id,
	).Scan(&u.ID, &u.Nombre, &u.Abreviatura)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UnidadRepository) List(ctx context.Context) ([]*entity.Unidad, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nombre, abreviatura FROM unidades ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Unidad
	for rows.Next() {
		var u entity.Unidad
		if err := rows.Scan(&u.ID, &u.Nombre, &u.Abreviatura); err != nil {
			return nil, err
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}
