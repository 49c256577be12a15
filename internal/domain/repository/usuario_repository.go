package repository

import (
	"context"

	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
)

// UsuarioRepository acceso a usuarios para autenticación.
type UsuarioRepository interface {
	Create(ctx context.Context, u *entity.Usuario) error
	GetByUsername(ctx context.Context, username string) (*entity.Usuario, error)
	GetByID(ctx context.Context, id int64) (*entity.Usuario, error)
}
