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

// GastoRepository gastos operativos con borrado lógico.
type GastoRepository struct {
	db Querier
}

func NewGastoRepository(db Querier) *GastoRepository {
	return &GastoRepository{db: db}
}

func (r *GastoRepository) Create(ctx context.Context, g *entity.Gasto) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO gastos (fecha, monto, descripcion, notas)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		g.Fecha, g.Monto, g.Descripcion, g.Notas,
	).Scan(&g.ID, &g.CreatedAt)
}

func (r *GastoRepository) GetByID(ctx context.Context, id int64) (*entity.Gasto, error) {
	var g entity.Gasto
	err := r.db.QueryRow(ctx, `
		SELECT id, fecha, monto, descripcion, notas, created_at
		FROM gastos
		WHERE id = $1 AND deleted_at IS NULL`, id,
	).Scan(&g.ID, &g.Fecha, &g.Monto, &g.Descripcion, &g.Notas, &g.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *GastoRepository) List(ctx context.Context, f repository.FiltroGastos) ([]*entity.Gasto, int64, error) {
	where := []string{"deleted_at IS NULL"}
	args := []any{}

	if f.FechaDesde != nil {
		args = append(args, *f.FechaDesde)
		where = append(where, fmt.Sprintf("fecha >= $%d", len(args)))
	}
	if f.FechaHasta != nil {
		args = append(args, *f.FechaHasta)
		where = append(where, fmt.Sprintf("fecha <= $%d", len(args)))
	}
	cond := strings.Join(where, " AND ")

	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM gastos WHERE `+cond, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	query := fmt.Sprintf(`
		SELECT id, fecha, monto, descripcion, notas, created_at
		FROM gastos
		WHERE %s
		ORDER BY fecha DESC, id DESC
		LIMIT $%d OFFSET $%d`,
		cond, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*entity.Gasto
	for rows.Next() {
		var g entity.Gasto
		if err := rows.Scan(&g.ID, &g.Fecha, &g.Monto, &g.Descripcion, &g.Notas, &g.CreatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, &g)
	}
	return out, total, rows.Err()
}

func (r *GastoRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE gastos SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
