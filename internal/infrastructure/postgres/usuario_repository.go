package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// UsuarioRepository acceso a usuarios.
type UsuarioRepository struct {
	db Querier
}

func NewUsuarioRepository(db Querier) *UsuarioRepository {
	return &UsuarioRepository{db: db}
}

func (r *UsuarioRepository) Create(ctx context.Context, u *entity.Usuario) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO usuarios (username, nombre, password_hash, rol, activo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		u.Username, u.Nombre, u.PasswordHash, u.Rol, u.Activo, u.CreatedAt,
	).Scan(&u.ID)
	if isUniqueViolation(err) {
		return fmt.Errorf("username ya registrado: %w", domain.ErrDuplicate)
	}
	return err
}

func (r *UsuarioRepository) scanOne(row pgx.Row) (*entity.Usuario, error) {
	var u entity.Usuario
	err := row.Scan(&u.ID, &u.Username, &u.Nombre, &u.PasswordHash, &u.Rol, &u.Activo, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UsuarioRepository) GetByUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, username, nombre, password_hash, rol, activo, created_at
		FROM usuarios WHERE username = $1`, username))
}

func (r *UsuarioRepository) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	return r.scanOne(r.db.QueryRow(ctx, `
		SELECT id, username, nombre, password_hash, rol, activo, created_at
		FROM usuarios WHERE id = $1`, id))
}
