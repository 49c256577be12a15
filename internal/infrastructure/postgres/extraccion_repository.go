package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// ExtraccionRepository retiros de dinero de los orígenes de ingreso.
type ExtraccionRepository struct {
	db Querier
}

func NewExtraccionRepository(db Querier) *ExtraccionRepository {
	return &ExtraccionRepository{db: db}
}

func (r *ExtraccionRepository) Create(ctx context.Context, e *entity.ExtraccionIngreso) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO extracciones_ingreso (origen, monto, motivo, fecha)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		e.Origen, e.Monto, e.Motivo, e.Fecha,
	).Scan(&e.ID)
}

func (r *ExtraccionRepository) List(ctx context.Context, page, limit int) ([]*entity.ExtraccionIngreso, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM extracciones_ingreso`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, origen, monto, motivo, fecha
		FROM extracciones_ingreso
		ORDER BY fecha DESC, id DESC
		LIMIT $1 OFFSET $2`, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*entity.ExtraccionIngreso
	for rows.Next() {
		var e entity.ExtraccionIngreso
		if err := rows.Scan(&e.ID, &e.Origen, &e.Monto, &e.Motivo, &e.Fecha); err != nil {
			return nil, 0, err
		}
		out = append(out, &e)
	}
	return out, total, rows.Err()
}

func (r *ExtraccionRepository) TotalPorOrigen(ctx context.Context, origen string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(monto), 0) FROM extracciones_ingreso WHERE origen = $1`, origen,
	).Scan(&total)
	return total, err
}
