package auth

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
	"github.com/acuellar-dev/inventario-pos/pkg/jwt"
	"github.com/acuellar-dev/inventario-pos/pkg/logger"
)

// UseCase autenticación y alta de usuarios.
type UseCase struct {
	usuarios   repository.UsuarioRepository
	secret     string
	issuer     string
	expMinutes int
	log        *logger.Logger
}

func NewUseCase(usuarios repository.UsuarioRepository, secret, issuer string, expMinutes int, log *logger.Logger) *UseCase {
	return &UseCase{usuarios: usuarios, secret: secret, issuer: issuer, expMinutes: expMinutes, log: log}
}

// Login valida credenciales y emite un token con el rol del usuario. El mismo
// error cubre usuario inexistente y contraseña incorrecta.
func (u *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := u.usuarios.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if usuario == nil || !usuario.Activo {
		return nil, fmt.Errorf("credenciales inválidas: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, fmt.Errorf("credenciales inválidas: %w", domain.ErrUnauthorized)
	}

	token, err := jwt.Generate(u.secret, usuario.ID, usuario.Rol, u.issuer, u.expMinutes)
	if err != nil {
		return nil, err
	}
	u.log.Info().Int64("user_id", usuario.ID).Str("rol", usuario.Rol).Msg("login exitoso")
	return &dto.LoginResponse{
		Token:    token,
		UserID:   usuario.ID,
		Username: usuario.Username,
		Nombre:   usuario.Nombre,
		Rol:      usuario.Rol,
	}, nil
}

// Registrar da de alta un usuario con la contraseña hasheada con bcrypt.
func (u *UseCase) Registrar(ctx context.Context, in dto.RegistrarUsuarioRequest) (*entity.Usuario, error) {
	existente, err := u.usuarios.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("el username %q ya existe: %w", in.Username, domain.ErrDuplicate)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		Username:     in.Username,
		Nombre:       in.Nombre,
		PasswordHash: string(hash),
		Rol:          in.Rol,
		Activo:       true,
		CreatedAt:    time.Now(),
	}
	if err := u.usuarios.Create(ctx, usuario); err != nil {
		return nil, err
	}
	u.log.Info().Int64("user_id", usuario.ID).Str("rol", usuario.Rol).Msg("usuario registrado")
	return usuario, nil
}
