package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

// StockRepository acceso a la tabla stock_actual.
type StockRepository struct {
	db Querier
}

func NewStockRepository(db Querier) *StockRepository {
	return &StockRepository{db: db}
}

func (r *StockRepository) EnsureFila(ctx context.Context, productoID, almacenID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO stock_actual (producto_id, almacen_id, cantidad, last_updated)
		VALUES ($1, $2, 0, NOW())
		ON CONFLICT (producto_id, almacen_id) DO NOTHING`,
		productoID, almacenID)
	return err
}

func (r *StockRepository) GetForUpdate(ctx context.Context, productoID, almacenID int64) (*entity.StockActual, error) {
	row := r.db.QueryRow(ctx, `
		SELECT producto_id, almacen_id, cantidad, cantidad_gramos, last_updated
		FROM stock_actual
		WHERE producto_id = $1 AND almacen_id = $2
		FOR UPDATE`,
		productoID, almacenID)

	var s entity.StockActual
	err := row.Scan(&s.ProductoID, &s.AlmacenID, &s.Cantidad, &s.CantidadGramos, &s.LastUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StockRepository) Update(ctx context.Context, s *entity.StockActual) error {
	_, err := r.db.Exec(ctx, `
		UPDATE stock_actual
		SET cantidad = $3, cantidad_gramos = $4, last_updated = $5
		WHERE producto_id = $1 AND almacen_id = $2`,
		s.ProductoID, s.AlmacenID, s.Cantidad, s.CantidadGramos, s.LastUpdated)
	return err
}

func (r *StockRepository) Get(ctx context.Context, productoID, almacenID int64) (*entity.StockActual, error) {
	row := r.db.QueryRow(ctx, `
		SELECT s.producto_id, s.almacen_id, s.cantidad, s.cantidad_gramos, s.last_updated,
		       p.nombre, p.sku, a.nombre
		FROM stock_actual s
		JOIN productos p ON p.id = s.producto_id
		JOIN almacenes a ON a.id = s.almacen_id
		WHERE s.producto_id = $1 AND s.almacen_id = $2`,
		productoID, almacenID)

	var s entity.StockActual
	err := row.Scan(&s.ProductoID, &s.AlmacenID, &s.Cantidad, &s.CantidadGramos, &s.LastUpdated,
		&s.ProductoNombre, &s.ProductoSKU, &s.AlmacenNombre)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StockRepository) List(ctx context.Context, almacenID *int64) ([]*entity.StockActual, error) {
	query := `
		SELECT s.producto_id, s.almacen_id, s.cantidad, s.cantidad_gramos, s.last_updated,
		       p.nombre, p.sku, a.nombre
		FROM stock_actual s
		JOIN productos p ON p.id = s.producto_id
		JOIN almacenes a ON a.id = s.almacen_id`
	args := []any{}
	if almacenID != nil {
		query += ` WHERE s.almacen_id = $1`
		args = append(args, *almacenID)
	}
	query += ` ORDER BY a.nombre, p.nombre`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.StockActual
	for rows.Next() {
		var s entity.StockActual
		if err := rows.Scan(&s.ProductoID, &s.AlmacenID, &s.Cantidad, &s.CantidadGramos, &s.LastUpdated,
			&s.ProductoNombre, &s.ProductoSKU, &s.AlmacenNombre); err != nil {
			return nil, err
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (r *StockRepository) TotalesPorAlmacen(ctx context.Context, almacenID int64) ([]*repository.TotalProducto, error) {
	rows, err := r.db.Query(ctx, `
		SELECT s.producto_id, p.nombre,
		       COALESCE(SUM(s.cantidad), 0),
		       COALESCE(SUM(s.cantidad_gramos), 0),
		       MAX(s.last_updated)
		FROM stock_actual s
		JOIN productos p ON p.id = s.producto_id
		WHERE s.almacen_id = $1
		GROUP BY s.producto_id, p.nombre
		ORDER BY p.nombre`,
		almacenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*repository.TotalProducto
	for rows.Next() {
		var t repository.TotalProducto
		if err := rows.Scan(&t.ProductoID, &t.ProductoNombre, &t.TotalPiezas, &t.TotalGramos, &t.LastUpdated); err != nil {
			return nil, err
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (r *StockRepository) CrearFila(ctx context.Context, s *entity.StockActual) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO stock_actual (producto_id, almacen_id, cantidad, cantidad_gramos, last_updated)
		VALUES ($1, $2, $3, $4, $5)`,
		s.ProductoID, s.AlmacenID, s.Cantidad, s.CantidadGramos, s.LastUpdated)
	if isUniqueViolation(err) {
		return fmt.Errorf("ya existe stock para el producto %d en el almacén %d: %w",
			s.ProductoID, s.AlmacenID, domain.ErrDuplicate)
	}
	return err
}

func (r *StockRepository) EliminarFila(ctx context.Context, productoID, almacenID int64) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM stock_actual WHERE producto_id = $1 AND almacen_id = $2`,
		productoID, almacenID)
	return err
}
