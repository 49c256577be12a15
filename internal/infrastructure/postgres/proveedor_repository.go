package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// ProveedorRepository acceso a proveedores.
type ProveedorRepository struct {
	db Querier
}

func NewProveedorRepository(db Querier) *ProveedorRepository {
	return &ProveedorRepository{db: db}
}

func (r *ProveedorRepository) Create(ctx context.Context, p *entity.Proveedor) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO proveedores (nombre, nit, telefono, email, direccion, activo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		p.Nombre, p.NIT, p.Telefono, p.Email, p.Direccion, p.Activo, p.CreatedAt,
	).Scan(&p.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("proveedor con ese NIT ya registrado: %w", domain.ErrDuplicate)
	}
	return err
}

func (r *ProveedorRepository) GetByID(ctx context.Context, id int64) (*entity.Proveedor, error) {
	var p entity.Proveedor
	err := r.db.QueryRow(ctx, `
		SELECT id, nombre, nit, telefono, email, direccion, activo, created_at
		FROM proveedores WHERE id = $1`, id,
	).Scan(&p.ID, &p.Nombre, &p.NIT, &p.Telefono, &p.Email, &p.Direccion, &p.Activo, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProveedorRepository) List(ctx context.Context, soloActivos bool) ([]*entity.Proveedor, error) {
	query := `
		SELECT id, nombre, nit, telefono, email, direccion, activo, created_at
		FROM proveedores`
	if soloActivos {
		query += ` WHERE activo`
	}
	query += ` ORDER BY nombre`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.Nombre, &p.NIT, &p.Telefono, &p.Email, &p.Direccion, &p.Activo, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *ProveedorRepository) Update(ctx context.Context, p *entity.Proveedor) error {
	_, err := r.db.Exec(ctx, `
		UPDATE proveedores
		SET nombre = $2, nit = $3, telefono = $4, email = $5, direccion = $6, activo = $7
		WHERE id = $1`,
		p.ID, p.Nombre, p.NIT, p.Telefono, p.Email, p.Direccion, p.Activo)
	return err
}
