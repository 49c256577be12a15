package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

// IngresoRepository ingresos de caja generados por ventas.
type IngresoRepository struct {
	db Querier
}

func NewIngresoRepository(db Querier) *IngresoRepository {
	return &IngresoRepository{db: db}
}

func (r *IngresoRepository) Create(ctx context.Context, i *entity.IngresoVenta) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO ingresos_venta (venta_id, tipo, monto, fecha)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		i.VentaID, i.Tipo, i.Monto, i.Fecha,
	).Scan(&i.ID)
}

func (r *IngresoRepository) ListConFiltros(ctx context.Context, f repository.FiltroIngresos) ([]*entity.IngresoVenta, int64, error) {
	where := []string{"1=1"}
	args := []any{}

	if f.Tipo != "" {
		args = append(args, f.Tipo)
		where = append(where, fmt.Sprintf("tipo = $%d", len(args)))
	}
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
		`SELECT COUNT(*) FROM ingresos_venta WHERE `+cond, args...,
	).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	args = append(args, f.Limit, (f.Page-1)*f.Limit)
	query := fmt.Sprintf(`
		SELECT id, venta_id, tipo, monto, fecha
		FROM ingresos_venta
		WHERE %s
		ORDER BY fecha DESC, id DESC
		LIMIT $%d OFFSET $%d`,
		cond, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []*entity.IngresoVenta
	for rows.Next() {
		var i entity.IngresoVenta
		if err := rows.Scan(&i.ID, &i.VentaID, &i.Tipo, &i.Monto, &i.Fecha); err != nil {
			return nil, 0, err
		}
		out = append(out, &i)
	}
	return out, total, rows.Err()
}

func (r *IngresoRepository) TotalPorTipo(ctx context.Context, tipo string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(monto), 0) FROM ingresos_venta WHERE tipo = $1`, tipo,
	).Scan(&total)
	return total, err
}
