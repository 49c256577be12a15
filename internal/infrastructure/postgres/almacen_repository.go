package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// AlmacenRepository acceso a almacenes.
type AlmacenRepository struct {
	db Querier
}

func NewAlmacenRepository(db Querier) *AlmacenRepository {
	return &AlmacenRepository{db: db}
}

func (r *AlmacenRepository) Create(ctx context.Context, a *entity.Almacen) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO almacenes (nombre, ubicacion, capacidad)
		VALUES ($1, $2, $3)
		RETURNING id`,
		a.Nombre, a.Ubicacion, a.Capacidad,
	).Scan(&a.ID)
}

func (r *AlmacenRepository) GetByID(ctx context.Context, id int64) (*entity.Almacen, error) {
	var a entity.Almacen
	err := r.db.QueryRow(ctx,
		`SELECT id, nombre, ubicacion, capacidad FROM almacenes WHERE id = $1`, id,
	).Scan(&a.ID, &a.Nombre, &a.Ubicacion, &a.Capacidad)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AlmacenRepository) List(ctx context.Context) ([]*entity.Almacen, error) {
	rows, err := r.db.Query(ctx, `SELECT id, nombre, ubicacion, capacidad FROM almacenes ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Almacen
	for rows.Next() {
		var a entity.Almacen
		if err := rows.Scan(&a.ID, &a.Nombre, &a.Ubicacion, &a.Capacidad); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *AlmacenRepository) Update(ctx context.Context, a *entity.Almacen) error {
	_, err := r.db.Exec(ctx, `
		UPDATE almacenes SET nombre = $2, ubicacion = $3, capacidad = $4 WHERE id = $1`,
		a.ID, a.Nombre, a.Ubicacion, a.Capacidad)
	return err
}
