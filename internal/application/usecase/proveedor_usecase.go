package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/acuellar-dev/inventario-pos/internal/application/dto"
	"github.com/acuellar-dev/inventario-pos/internal/domain"
	"github.com/acuellar-dev/inventario-pos/internal/domain/entity"
	"github.com/acuellar-dev/inventario-pos/internal/domain/repository"
)

// ProveedorUseCase gestión de proveedores.
type ProveedorUseCase struct {
	proveedores repository.ProveedorRepository
}

func NewProveedorUseCase(proveedores repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{proveedores: proveedores}
}

func (u *ProveedorUseCase) Crear(ctx context.Context, in dto.ProveedorRequest) (*entity.Proveedor, error) {
	p := &entity.Proveedor{
		Nombre:    strings.TrimSpace(in.Nombre),
		NIT:       in.NIT,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Direccion: in.Direccion,
		Activo:    true,
		CreatedAt: time.Now(),
	}
	if err := u.proveedores.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *ProveedorUseCase) Obtener(ctx context.Context, id int64) (*entity.Proveedor, error) {
	p, err := u.proveedores.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("proveedor %d: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func (u *ProveedorUseCase) Listar(ctx context.Context, soloActivos bool) ([]*entity.Proveedor, error) {
	return u.proveedores.List(ctx, soloActivos)
}

func (u *ProveedorUseCase) Actualizar(ctx context.Context, id int64, in dto.ProveedorRequest) (*entity.Proveedor, error) {
	p, err := u.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}
	p.Nombre = strings.TrimSpace(in.Nombre)
	p.NIT = in.NIT
	p.Telefono = in.Telefono
	p.Email = in.Email
	p.Direccion = in.Direccion
	if err := u.proveedores.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Desactivar baja lógica del proveedor; sus órdenes históricas se conservan.
func (u *ProveedorUseCase) Desactivar(ctx context.Context, id int64) error {
	p, err := u.Obtener(ctx, id)
	if err != nil {
		return err
	}
	p.Activo = false
	return u.proveedores.Update(ctx, p)
}
